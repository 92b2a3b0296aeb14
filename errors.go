package wordgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter is matched by every error caused by a character
	// outside a-z (after upper case letters are folded).
	ErrInvalidCharacter = errors.New("wordgraph: invalid character")

	// ErrEmptyWord is returned by AddWord("") unless the dictionary was
	// created WithEmptyWord.
	ErrEmptyWord = errors.New("wordgraph: empty word not enabled")

	// ErrLoad is matched by every error returned from Load and LoadFile.
	ErrLoad = errors.New("wordgraph: load failed")
)

// CharacterError reports the first character of Word that is not a letter.
type CharacterError struct {
	Word  string
	Index int // byte offset into Word
	Char  rune
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("wordgraph: invalid character %q at offset %d in %q", e.Char, e.Index, e.Word)
}

// Is makes errors.Is(err, ErrInvalidCharacter) hold.
func (e *CharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// LoadError is returned when a word list could not be loaded. Line is the
// 1-based line being processed, or 0 if the source could not be opened.
type LoadError struct {
	Source string
	Line   int
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Source == "" && e.Line == 0:
		return fmt.Sprintf("wordgraph: load: %v", e.Err)
	case e.Source == "":
		return fmt.Sprintf("wordgraph: load: line %d: %v", e.Line, e.Err)
	case e.Line == 0:
		return fmt.Sprintf("wordgraph: load %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("wordgraph: load %s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrLoad) hold.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}
