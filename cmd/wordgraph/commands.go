package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check WORD...",
		Short: "Report whether each word is in the dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, word := range args {
				ok, err := a.dict.HasWord(word)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%t\n", word, ok)
			}
			return nil
		},
	}
}

func (a *app) prefixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefix PREFIX...",
		Short: "Report whether any word starts with each prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, prefix := range args {
				ok, err := a.dict.HasPrefix(prefix)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%t\n", prefix, ok)
			}
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [PREFIX]",
		Short: "Print every word, or every word starting with PREFIX",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words := a.dict.Words()
			if len(args) == 1 {
				var err error
				if words, err = a.dict.Completions(args[0]); err != nil {
					return err
				}
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for word := range words {
				w.WriteString(word)
				w.WriteByte('\n')
			}
			return w.Flush()
		},
	}
}

func (a *app) prefixesOfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefixes-of INPUT",
		Short: "Print the words that are prefixes of INPUT, shortest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefixes, err := a.dict.PrefixesOf(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, word := range prefixes {
				fmt.Fprintln(out, word)
			}
			return nil
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print word and node counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "words\t%d\nnodes\t%d\n", a.dict.Len(), a.dict.NumNodes())
			return nil
		},
	}
}

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the trie, one node per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := a.dict.Print(w); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}
