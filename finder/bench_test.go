package finder

import (
	"context"
	"testing"

	"lukechampine.com/frand"

	"github.com/domcameron/wordgrid/alphabet"
	"github.com/domcameron/wordgrid/grid"
	"github.com/domcameron/wordgrid/trie"
)

var benchWords = []string{
	"act", "ant", "art", "ate", "bat", "bet", "cat", "cot", "dot", "eat",
	"fan", "fat", "gem", "hat", "ink", "jot", "kit", "lot", "mat", "net",
	"oat", "pat", "rat", "sat", "tan", "tea", "urn", "vat", "wet", "yet",
	"ants", "arts", "bats", "cats", "mats", "nets", "rats", "tans", "teas",
	"stare", "tares", "rates", "aster", "taste", "state", "tease",
}

func benchGrid(b *testing.B, size int) *grid.Grid {
	rows := make([]string, size)
	for r := 0; r < size; r++ {
		row := make([]byte, size)
		for c := 0; c < size; c++ {
			row[c] = byte('a' + frand.Intn(26))
		}
		rows[r] = string(row)
	}
	g, err := grid.New(rows)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkFindAll(b *testing.B) {
	g := benchGrid(b, 8)
	alph := &alphabet.Alphabet{}
	alph.Init()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			alph.Update(string(g.Letter(g.Index(r, c))))
		}
	}
	alph.Reconcile()
	tr := trie.New(alph)
	// Out-of-alphabet words are skipped, like a real word list load.
	tr.InsertAll(benchWords)
	f := New(g, tr)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.FindAll(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
