// Package naive is the brute-force baseline for the trie-driven finder. It
// shares the grid and adjacency model but skips the trie entirely: every
// non-repeating path up to a depth cap is materialized and its letter string
// checked against the dictionary by plain set membership. It exists for
// comparison and cross-checking; expect it to be much slower on big boards.
package naive

import (
	"context"
	"unicode/utf8"

	"github.com/domcameron/wordgrid/finder"
	"github.com/domcameron/wordgrid/grid"
)

// A Finder enumerates candidate paths breadth-first with no pruning.
type Finder struct {
	grid *grid.Grid
	dict map[string]struct{}
	// maxLen caps path depth at the longest dictionary word, since longer
	// paths cannot match anything.
	maxLen int
}

// New creates a baseline Finder for a grid and a dictionary word list.
func New(g *grid.Grid, words []string) *Finder {
	f := &Finder{grid: g, dict: make(map[string]struct{}, len(words))}
	for _, w := range words {
		f.dict[w] = struct{}{}
		if n := utf8.RuneCountInString(w); n > f.maxLen {
			f.maxLen = n
		}
	}
	if f.maxLen > g.NumCells() {
		f.maxLen = g.NumCells()
	}
	return f
}

// ExploreFrom materializes every path from the start cell and collects the
// ones whose strings are dictionary words of publishable length.
func (f *Finder) ExploreFrom(start int) finder.WordSet {
	found := make(finder.WordSet)
	frontier := [][]int{{start}}
	for len(frontier) > 0 {
		path := frontier[0]
		frontier = frontier[1:]

		if len(path) >= finder.MinWordLength {
			if word := f.grid.Word(path); f.has(word) {
				found[word] = struct{}{}
			}
		}
		if len(path) >= f.maxLen {
			continue
		}
		for _, n := range f.grid.Neighbors(path[len(path)-1]) {
			if contains(path, n) {
				continue
			}
			cand := make([]int, len(path)+1)
			copy(cand, path)
			cand[len(path)] = n
			frontier = append(frontier, cand)
		}
	}
	return found
}

// FindAll runs ExploreFrom once per start cell and unions the result sets.
func (f *Finder) FindAll(ctx context.Context) (finder.WordSet, error) {
	all := make(finder.WordSet)
	for start := 0; start < f.grid.NumCells(); start++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		all.Union(f.ExploreFrom(start))
	}
	return all, nil
}

func (f *Finder) has(word string) bool {
	_, ok := f.dict[word]
	return ok
}

func contains(path []int, cell int) bool {
	for _, c := range path {
		if c == cell {
			return true
		}
	}
	return false
}
