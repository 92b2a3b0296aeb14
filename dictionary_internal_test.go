package wordgraph

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// checkInvariants verifies the arena describes a minimal trie.
func checkInvariants(t *testing.T, d *Dictionary) {
	t.Helper()

	if d.root == nilNode {
		require.Zero(t, d.Len())
		require.Zero(t, d.NumNodes())
		return
	}

	seen, words := 0, 0
	d.walk(d.root, func(n *node) EnumerationResult {
		seen++
		if n.isWord {
			words++
		}

		var letters []byte
		for i, child := range n.children {
			if child != nilNode {
				letters = append(letters, byte('a'+i))
			}
		}
		require.ElementsMatch(t, letters, n.childLetters, "children of %q", n.path)
		require.Len(t, n.childLetters, len(letters), "duplicate letters at %q", n.path)

		if len(n.childLetters) == 0 {
			require.True(t, n.isWord, "dead leaf %q", n.path)
		}

		for _, l := range n.childLetters {
			child := &d.nodes[n.children[l-'a']]
			require.Equal(t, n.path+string(l), child.path)
			require.Equal(t, l, child.letter)
			require.Same(t, n, &d.nodes[child.parent])
		}
		return Continue
	})

	require.Equal(t, d.NumNodes(), seen)
	require.Equal(t, d.Len(), words)
}

func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	d := New()
	model := make(map[string]bool)

	randomWord := func() string {
		var b strings.Builder
		for n := 1 + rng.IntN(5); n > 0; n-- {
			b.WriteByte(byte('a' + rng.IntN(3)))
		}
		return b.String()
	}

	for i := 0; i < 3000; i++ {
		word := randomWord()
		if rng.IntN(2) == 0 {
			require.NoError(t, d.AddWord(word))
			model[word] = true
		} else {
			require.NoError(t, d.RemoveWord(word))
			delete(model, word)
		}

		checkInvariants(t, d)
		require.Equal(t, len(model), d.Len())

		probe := randomWord()
		ok, err := d.HasWord(probe)
		require.NoError(t, err)
		require.Equal(t, model[probe], ok, "HasWord(%q)", probe)

		wantPrefix := false
		for w := range model {
			if strings.HasPrefix(w, probe) {
				wantPrefix = true
				break
			}
		}
		ok, err = d.HasPrefix(probe)
		require.NoError(t, err)
		require.Equal(t, wantPrefix, ok, "HasPrefix(%q)", probe)
	}

	for w := range model {
		require.NoError(t, d.RemoveWord(w))
	}
	checkInvariants(t, d)
	require.True(t, d.Empty())
	require.Len(t, d.nodes, 1)
}

func TestFreedNodesAreReused(t *testing.T) {
	d := New()
	require.NoError(t, d.AddWord("cart"))
	require.NoError(t, d.AddWord("ca"))
	arena := len(d.nodes)

	require.NoError(t, d.RemoveWord("cart"))
	require.Len(t, d.free, 2)

	require.NoError(t, d.AddWord("cab"))
	require.NoError(t, d.AddWord("cat"))
	require.Len(t, d.nodes, arena)
	require.Empty(t, d.free)
	checkInvariants(t, d)
}

func TestInvalidCharacterLeavesTreeUnchanged(t *testing.T) {
	d := New()
	require.NoError(t, d.AddWord("cat"))
	before := d.NumNodes()

	require.ErrorIs(t, d.AddWord("cab1"), ErrInvalidCharacter)
	require.ErrorIs(t, d.RemoveWord("ca-t"), ErrInvalidCharacter)

	require.Equal(t, before, d.NumNodes())
	require.Equal(t, 1, d.Len())
	checkInvariants(t, d)
}

func TestZeroValueDictionary(t *testing.T) {
	var d Dictionary
	ok, err := d.HasPrefix("")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, d.AddWord("go"))
	require.NoError(t, d.AddWord("gopher"))
	checkInvariants(t, &d)

	require.NoError(t, d.RemoveWord("go"))
	require.NoError(t, d.RemoveWord("gopher"))
	require.True(t, d.Empty())
	checkInvariants(t, &d)
}

func TestLongWordDoesNotRecurse(t *testing.T) {
	d := New()
	long := strings.Repeat("ab", 2500)
	require.NoError(t, d.AddWord(long))

	var got []string
	for w := range d.Words() {
		got = append(got, w)
	}
	require.Equal(t, []string{long}, got)

	require.NoError(t, d.RemoveWord(long))
	require.True(t, d.Empty())
}
