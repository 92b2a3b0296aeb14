/*
Package wordgraph is a word dictionary stored as a trie over the letters a-z,
built for word games where a move search asks "is this a word?" and "can
anything still be spelled from here?" millions of times.

Unlike a DAWG, the trie can be changed at any time. Words may be added and
removed in any order, and removing a word prunes every branch that no longer
leads to a word, so HasPrefix never answers true for a dead end. Each query
and update takes time proportional to the length of the word.

Nodes are kept in a flat arena and refer to their children and parent by
index. Every node has a dense table of 26 children, and remembers the order
its children were added in, so enumeration never has to scan empty slots.

In general, to use it you create a dictionary with wordgraph.New() and call
AddWord, or load a word list with Load or LoadFile. Upper case letters are
folded to lower case; any other character is rejected with an error
matching ErrInvalidCharacter, and the dictionary is left unchanged.

Words() returns every word as an iterator, and Enumerate walks every prefix,
letting the caller skip branches or stop early.

A Dictionary is not safe for concurrent use. Callers that share one between
goroutines must serialize access themselves, and must not change it while
an enumeration is in progress.
*/
package wordgraph
