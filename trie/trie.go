// Package trie implements a prefix tree over a fixed alphabet. Nodes live in
// a single arena slice and refer to their children by index, so the structure
// is a couple of flat allocations rather than a pointer graph.
package trie

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domcameron/wordgrid/alphabet"
)

// A node has one child slot per alphabet letter. A slot of 0 means no child;
// the root lives at index 0 and is never anyone's child.
type node struct {
	children []int32
	isWord   bool
}

// Trie answers, in O(len(key)), whether a key is an inserted word and whether
// it is a strict prefix of one. The alphabet is fixed at construction; both
// Insert and Search fail with alphabet.ErrNotInAlphabet on unmapped runes.
type Trie struct {
	alph  *alphabet.Alphabet
	nodes []node
}

// New creates an empty Trie over the given alphabet.
func New(alph *alphabet.Alphabet) *Trie {
	t := &Trie{alph: alph}
	t.nodes = append(t.nodes, t.newNode())
	return t
}

func (t *Trie) newNode() node {
	return node{children: make([]int32, t.alph.NumLetters())}
}

// GetAlphabet returns the alphabet this trie was built with.
func (t *Trie) GetAlphabet() *alphabet.Alphabet {
	return t.alph
}

// NumNodes returns the number of allocated nodes, root included.
func (t *Trie) NumNodes() int {
	return len(t.nodes)
}

// Insert adds a word, allocating between 0 and len(word) nodes. Re-inserting
// an existing word is a no-op.
func (t *Trie) Insert(word string) error {
	cur := int32(0)
	for _, r := range word {
		ml, err := t.alph.Val(r)
		if err != nil {
			return fmt.Errorf("insert %q: %w", word, err)
		}
		next := t.nodes[cur].children[ml]
		if next == 0 {
			t.nodes = append(t.nodes, t.newNode())
			next = int32(len(t.nodes) - 1)
			t.nodes[cur].children[ml] = next
		}
		cur = next
	}
	t.nodes[cur].isWord = true
	return nil
}

// InsertAll inserts a batch of words. Words that use letters outside the
// alphabet are skipped rather than aborting the batch; the number of skipped
// words is returned.
func (t *Trie) InsertAll(words []string) (int, error) {
	skipped := 0
	for _, w := range words {
		err := t.Insert(w)
		if err == nil {
			continue
		}
		if errors.Is(err, alphabet.ErrNotInAlphabet) {
			skipped++
			continue
		}
		return skipped, err
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Int("total", len(words)).
			Msg("insert-all-skipped-words")
	}
	return skipped, nil
}

// Search descends the trie one letter at a time. It reports whether key is
// an inserted word and whether it is a strict prefix of one; if a required
// child is missing the branch is dead and both are false.
func (t *Trie) Search(key string) (isWord, isExtendable bool, err error) {
	cur := int32(0)
	for _, r := range key {
		ml, verr := t.alph.Val(r)
		if verr != nil {
			return false, false, fmt.Errorf("search %q: %w", key, verr)
		}
		cur = t.nodes[cur].children[ml]
		if cur == 0 {
			return false, false, nil
		}
	}
	n := t.nodes[cur]
	for _, child := range n.children {
		if child != 0 {
			return n.isWord, true, nil
		}
	}
	return n.isWord, false, nil
}
