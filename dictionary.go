package wordgraph

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const alphabetSize = 26

// nilNode is the arena index of the sentinel node. A child slot or root
// holding it is absent.
const nilNode int32 = 0

// EnumFn is called by Enumerate for every prefix held in the dictionary.
// final is true when the prefix is itself a word.
type EnumFn = func(prefix string, final bool) EnumerationResult

// EnumerationResult is returned by an EnumFn to say whether Enumerate
// descends below the prefix it was given, skips that branch, or stops.
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

// Finder is the read side of a Dictionary, the part a move search
// consumes.
type Finder interface {
	HasWord(word string) (bool, error)
	HasPrefix(prefix string) (bool, error)
	PrefixesOf(input string) ([]string, error)
	Words() iter.Seq[string]
	Completions(prefix string) (iter.Seq[string], error)
	Enumerate(fn EnumFn)
	Len() int
	NumNodes() int
	Print(w io.Writer) error
}

var _ Finder = (*Dictionary)(nil)

type node struct {
	children     [alphabetSize]int32
	childLetters []byte // letters of non-empty children, first insertion order
	parent       int32
	letter       byte // edge letter from parent
	isWord       bool
	path         string
}

// Dictionary is a trie over the letters a-z. It stays minimal: after
// every call each leaf is a word. Nodes are kept in an arena and refer
// to each other by index.
//
// The zero value is an empty dictionary ready to use. A Dictionary is not
// safe for concurrent use, and it must not be changed while one of its
// enumerations is in progress.
type Dictionary struct {
	nodes    []node
	free     []int32
	root     int32
	numWords int

	emptyWord   bool
	skipInvalid bool
	logger      *zap.Logger
}

// New creates an empty dictionary.
func New(opts ...Option) *Dictionary {
	d := &Dictionary{
		nodes:  make([]node, 1),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// HasWord returns true if word is stored. Upper case letters are folded
// to lower case; any other character outside a-z is an error.
func (d *Dictionary) HasWord(word string) (bool, error) {
	if err := validate(word); err != nil {
		return false, err
	}
	id := d.follow(word)
	return id != nilNode && d.nodes[id].isWord, nil
}

// HasPrefix returns true if some stored word starts with prefix. The
// empty prefix is held by every non-empty dictionary.
func (d *Dictionary) HasPrefix(prefix string) (bool, error) {
	if err := validate(prefix); err != nil {
		return false, err
	}
	return d.follow(prefix) != nilNode, nil
}

// AddWord stores word. Adding a word that is already stored does nothing.
func (d *Dictionary) AddWord(word string) error {
	if err := validate(word); err != nil {
		return err
	}
	if word == "" && !d.emptyWord {
		return ErrEmptyWord
	}

	if d.root == nilNode {
		d.root = d.newNode(nilNode, 0, "")
	}

	id := d.root
	for i := 0; i < len(word); i++ {
		id = d.getOrCreateChild(id, letterIndex(word[i]))
	}

	if n := &d.nodes[id]; !n.isWord {
		n.isWord = true
		d.numWords++
	}
	return nil
}

// RemoveWord removes word, then prunes every node that no longer leads
// to a word. Removing a word that is not stored does nothing.
func (d *Dictionary) RemoveWord(word string) error {
	if err := validate(word); err != nil {
		return err
	}

	id := d.follow(word)
	if id == nilNode || !d.nodes[id].isWord {
		return nil
	}
	d.nodes[id].isWord = false
	d.numWords--

	// walk up from the end of the word until a node is still needed
	for id != d.root {
		n := &d.nodes[id]
		if len(n.childLetters) > 0 || n.isWord {
			return nil
		}
		parent := n.parent
		d.unlink(parent, n.letter)
		d.release(id)
		id = parent
	}

	if root := &d.nodes[d.root]; len(root.childLetters) == 0 && !root.isWord {
		d.reset()
	}
	return nil
}

// Words returns every stored word. Each range over the result starts a
// new traversal: a word is yielded before the words it prefixes, and
// siblings come in the order they were first added.
func (d *Dictionary) Words() iter.Seq[string] {
	return d.wordsBelow(func() int32 { return d.root })
}

// Completions returns the stored words starting with prefix, in the
// same order as Words. The prefix is looked up each time the sequence
// is ranged over; the sequence is empty if no word has the prefix.
func (d *Dictionary) Completions(prefix string) (iter.Seq[string], error) {
	if err := validate(prefix); err != nil {
		return nil, err
	}
	return d.wordsBelow(func() int32 { return d.follow(prefix) }), nil
}

// Enumerate will call the given method, passing it every prefix of words in the dictionary.
// Return Continue to continue enumeration, Skip to skip this branch, or Stop to stop enumeration.
func (d *Dictionary) Enumerate(fn EnumFn) {
	d.walk(d.root, func(n *node) EnumerationResult {
		return fn(n.path, n.isWord)
	})
}

// PrefixesOf returns all words in the dictionary that are a prefix of
// input, shortest first.
func (d *Dictionary) PrefixesOf(input string) ([]string, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	if d.root == nilNode {
		return nil, nil
	}

	var results []string
	id := d.root
	if d.nodes[id].isWord {
		results = append(results, "")
	}
	for i := 0; i < len(input); i++ {
		id = d.nodes[id].children[letterIndex(input[i])]
		if id == nilNode {
			break
		}
		if d.nodes[id].isWord {
			results = append(results, d.nodes[id].path)
		}
	}
	return results, nil
}

// Merge adds every word of other to d.
func (d *Dictionary) Merge(other *Dictionary) error {
	for word := range other.Words() {
		if err := d.AddWord(word); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of words stored.
func (d *Dictionary) Len() int {
	return d.numWords
}

// NumNodes returns the number of nodes in the trie, including the root.
func (d *Dictionary) NumNodes() int {
	if d.root == nilNode {
		return 0
	}
	return len(d.nodes) - 1 - len(d.free)
}

// Empty returns true if no words are stored.
func (d *Dictionary) Empty() bool {
	return d.root == nilNode
}

// Print writes one line per node to w, indented by depth.
func (d *Dictionary) Print(w io.Writer) error {
	var err error
	d.walk(d.root, func(n *node) EnumerationResult {
		final := 0
		if n.isWord {
			final = 1
		}
		_, err = fmt.Fprintf(w, "%s%q final=%d edges=%q\n",
			strings.Repeat("  ", len(n.path)), n.path, final, n.childLetters)
		if err != nil {
			return Stop
		}
		return Continue
	})
	return err
}

// wordsBelow resolves the start node when ranged, not when created, so
// a stored sequence follows later changes to the dictionary.
func (d *Dictionary) wordsBelow(start func() int32) iter.Seq[string] {
	return func(yield func(string) bool) {
		d.walk(start(), func(n *node) EnumerationResult {
			if n.isWord && !yield(n.path) {
				return Stop
			}
			return Continue
		})
	}
}

// walk visits the subtree at start in pre-order with an explicit stack,
// children in childLetters order.
func (d *Dictionary) walk(start int32, visit func(n *node) EnumerationResult) {
	if start == nilNode {
		return
	}

	stack := []int32{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch visit(&d.nodes[id]) {
		case Stop:
			return
		case Skip:
			continue
		}

		n := &d.nodes[id]
		for i := len(n.childLetters) - 1; i >= 0; i-- {
			stack = append(stack, n.children[n.childLetters[i]-'a'])
		}
	}
}

// follow returns the node reached by word, or nilNode. word must be valid.
func (d *Dictionary) follow(word string) int32 {
	id := d.root
	for i := 0; i < len(word) && id != nilNode; i++ {
		id = d.nodes[id].children[letterIndex(word[i])]
	}
	return id
}

func (d *Dictionary) getOrCreateChild(parent int32, i int) int32 {
	if child := d.nodes[parent].children[i]; child != nilNode {
		return child
	}

	letter := byte('a' + i)
	child := d.newNode(parent, letter, d.nodes[parent].path+string(letter))

	// newNode may grow the arena, so take the parent afterwards
	p := &d.nodes[parent]
	p.children[i] = child
	p.childLetters = append(p.childLetters, letter)
	return child
}

func (d *Dictionary) newNode(parent int32, letter byte, path string) int32 {
	if len(d.nodes) == 0 {
		d.nodes = append(d.nodes, node{})
	}

	n := node{parent: parent, letter: letter, path: path}
	if k := len(d.free); k > 0 {
		id := d.free[k-1]
		d.free = d.free[:k-1]
		n.childLetters = d.nodes[id].childLetters[:0]
		d.nodes[id] = n
		return id
	}

	d.nodes = append(d.nodes, n)
	return int32(len(d.nodes) - 1)
}

func (d *Dictionary) unlink(parent int32, letter byte) {
	p := &d.nodes[parent]
	p.children[letter-'a'] = nilNode
	if i := bytes.IndexByte(p.childLetters, letter); i >= 0 {
		p.childLetters = slices.Delete(p.childLetters, i, i+1)
	}
}

func (d *Dictionary) release(id int32) {
	d.nodes[id] = node{childLetters: d.nodes[id].childLetters[:0]}
	d.free = append(d.free, id)
}

// reset discards the root and every node in the arena.
func (d *Dictionary) reset() {
	clear(d.nodes[1:])
	d.nodes = d.nodes[:1]
	d.free = d.free[:0]
	d.root = nilNode
	d.numWords = 0
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// letterIndex maps a letter of either case to its slot. c must be a letter.
func letterIndex(c byte) int {
	if c <= 'Z' {
		return int(c - 'A')
	}
	return int(c - 'a')
}

func validate(word string) error {
	for i := 0; i < len(word); i++ {
		if !isLetter(word[i]) {
			r, _ := utf8.DecodeRuneInString(word[i:])
			return &CharacterError{Word: word, Index: i, Char: r}
		}
	}
	return nil
}
