package wordgraph

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/mmap"
)

// maxLineLength bounds a single line of a word list.
const maxLineLength = 1 << 20

// Load reads a word list, one word per line, into a new dictionary.
// Lines are lower cased and trimmed; LF and CRLF line endings are both
// accepted. Blank lines are skipped unless WithEmptyWord is given. On
// error no dictionary is returned.
func Load(r io.Reader, opts ...Option) (*Dictionary, error) {
	return load("", r, opts)
}

// LoadFile loads the word list in the named file. The file is mapped
// into memory for the duration of the load.
func LoadFile(filename string, opts ...Option) (*Dictionary, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, &LoadError{Source: filename, Err: err}
	}
	defer f.Close()

	return load(filename, io.NewSectionReader(f, 0, int64(f.Len())), opts)
}

func load(source string, r io.Reader, opts []Option) (*Dictionary, error) {
	d := New(opts...)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	line, skipped := 0, 0
	for scanner.Scan() {
		line++
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" && !d.emptyWord {
			continue
		}

		if err := d.AddWord(word); err != nil {
			if d.skipInvalid && errors.Is(err, ErrInvalidCharacter) {
				d.logger.Warn("skipping invalid word",
					zap.String("source", source),
					zap.Int("line", line),
					zap.Error(err))
				skipped++
				continue
			}
			return nil, &LoadError{Source: source, Line: line, Err: err}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Source: source, Line: line + 1, Err: err}
	}

	d.logger.Debug("loaded word list",
		zap.String("source", source),
		zap.Int("lines", line),
		zap.Int("skipped", skipped),
		zap.Int("words", d.Len()),
		zap.Int("nodes", d.NumNodes()))

	return d, nil
}
