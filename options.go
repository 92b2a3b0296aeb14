package wordgraph

import "go.uber.org/zap"

// Option configures a Dictionary created by New, Load or LoadFile.
type Option func(*Dictionary)

// WithEmptyWord allows the empty string to be stored. The root node then
// carries the word flag, and blank lines in a word list insert it.
// Without this option AddWord("") fails with ErrEmptyWord and blank
// lines are skipped.
func WithEmptyWord() Option {
	return func(d *Dictionary) {
		d.emptyWord = true
	}
}

// WithSkipInvalid makes Load and LoadFile skip lines containing
// characters outside a-z instead of failing. Skipped lines are logged at
// warn level.
func WithSkipInvalid() Option {
	return func(d *Dictionary) {
		d.skipInvalid = true
	}
}

// WithLogger sets the logger used while loading word lists.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dictionary) {
		if logger != nil {
			d.logger = logger
		}
	}
}
