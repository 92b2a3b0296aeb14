// Command wordgraph loads word lists into a trie dictionary and answers
// word and prefix queries against it.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/milden6/wordgraph"
	"github.com/milden6/wordgraph/internal/config"
)

type app struct {
	// flags
	configPath  string
	dicts       []string
	verbose     bool
	emptyWord   bool
	skipInvalid bool

	logger *zap.Logger
	dict   wordgraph.Finder
}

func main() {
	if err := newApp().rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *app {
	return &app{}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wordgraph",
		Short: "Query a trie dictionary built from word lists",
		Long: `wordgraph loads one or more word lists, one word per line, into a
trie dictionary and answers word and prefix queries against it.

Word lists are named with --dict or in the config file; several lists are
loaded in parallel and merged.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	flags.StringArrayVarP(&a.dicts, "dict", "d", nil, "word list file (repeatable)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.BoolVar(&a.emptyWord, "empty-word", false, "store the empty word; blank lines insert it")
	flags.BoolVar(&a.skipInvalid, "skip-invalid", false, "skip lines with characters outside a-z")

	root.AddCommand(
		a.checkCmd(),
		a.prefixCmd(),
		a.listCmd(),
		a.prefixesOfCmd(),
		a.statsCmd(),
		a.dumpCmd(),
	)
	return root
}

// setup resolves the configuration, builds the logger and loads the
// dictionary every subcommand works on.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" {
		return nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.Dictionaries = a.dicts
	}
	if flags.Changed("empty-word") {
		cfg.EmptyWord = a.emptyWord
	}
	if flags.Changed("skip-invalid") {
		cfg.SkipInvalid = a.skipInvalid
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if a.logger == nil {
		level, _ := cfg.Logging.ZapLevel()
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		if a.logger, err = zcfg.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	if len(cfg.Dictionaries) == 0 {
		return errors.New("no word lists: use --dict or set dictionaries in the config")
	}

	a.dict, err = loadDictionaries(cmd.Context(), a.logger, cfg.Dictionaries, a.options(cfg))
	return err
}

func (a *app) options(cfg *config.Config) []wordgraph.Option {
	opts := []wordgraph.Option{wordgraph.WithLogger(a.logger)}
	if cfg.EmptyWord {
		opts = append(opts, wordgraph.WithEmptyWord())
	}
	if cfg.SkipInvalid {
		opts = append(opts, wordgraph.WithSkipInvalid())
	}
	return opts
}
