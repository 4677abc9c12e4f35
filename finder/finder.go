// Package finder pairs the trie with the grid graph: it grows non-repeating
// cell paths and consults the trie at each step to discard paths that can no
// longer become or extend into a dictionary word.
package finder

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/domcameron/wordgrid/grid"
	"github.com/domcameron/wordgrid/trie"
)

// MinWordLength is the shortest word the search will ever report.
const MinWordLength = 3

// WordSet is a deduplicated, unordered set of found words.
type WordSet map[string]struct{}

// Union adds every word in other to the set.
func (ws WordSet) Union(other WordSet) {
	for w := range other {
		ws[w] = struct{}{}
	}
}

// A Finder searches one grid against one trie. Both are read-only for the
// duration of any search, so a Finder may be reused across searches.
type Finder struct {
	grid *grid.Grid
	trie *trie.Trie
}

// New creates a Finder for the given grid and dictionary trie.
func New(g *grid.Grid, t *trie.Trie) *Finder {
	return &Finder{grid: g, trie: t}
}

// Expand performs one search step on a path: candidate next cells are the
// neighbors of the last cell not already on the path. While the path is
// still too short for any candidate to reach MinWordLength, candidates are
// forwarded without consulting the trie. Otherwise each candidate string is
// checked; exact words are returned as found, and candidates that are words
// or extendable prefixes are forwarded for further expansion. A found word
// is still forwarded, since it may be a prefix of a longer word.
func (f *Finder) Expand(path []int) (found []string, next [][]int, err error) {
	onPath := newBitset(f.grid.NumCells())
	for _, cell := range path {
		onPath.set(cell)
	}

	candidates := [][]int{}
	for _, n := range f.grid.Neighbors(path[len(path)-1]) {
		if onPath.has(n) {
			continue
		}
		cand := make([]int, len(path)+1)
		copy(cand, path)
		cand[len(path)] = n
		candidates = append(candidates, cand)
	}

	if len(path) < MinWordLength-1 {
		return nil, candidates, nil
	}

	for _, cand := range candidates {
		word := f.grid.Word(cand)
		isWord, isExtendable, serr := f.trie.Search(word)
		if serr != nil {
			return nil, nil, serr
		}
		if isWord {
			found = append(found, word)
		}
		if isWord || isExtendable {
			next = append(next, cand)
		}
	}
	return found, next, nil
}

// ExploreFrom collects every dictionary word reachable on a non-repeating
// path starting at the given cell. Traversal is depth-first with
// backtracking, so peak memory is bounded by path depth.
func (f *Finder) ExploreFrom(start int) (WordSet, error) {
	found := make(WordSet)
	visited := newBitset(f.grid.NumCells())
	word := make([]rune, 0, f.grid.NumCells())
	if err := f.explore(start, visited, word, found); err != nil {
		return nil, err
	}
	return found, nil
}

func (f *Finder) explore(cell int, visited bitset, word []rune, found WordSet) error {
	visited.set(cell)
	defer visited.clear(cell)
	word = append(word, f.grid.Letter(cell))

	if len(word) >= MinWordLength {
		s := string(word)
		isWord, isExtendable, err := f.trie.Search(s)
		if err != nil {
			return err
		}
		if isWord {
			found[s] = struct{}{}
		}
		if !isWord && !isExtendable {
			// No dictionary entry shares this prefix; the branch is dead.
			return nil
		}
	}

	for _, n := range f.grid.Neighbors(cell) {
		if visited.has(n) {
			continue
		}
		if err := f.explore(n, visited, word, found); err != nil {
			return err
		}
	}
	return nil
}

// FindAll runs ExploreFrom once per start cell and unions the result sets.
// Starts are independent; cancellation is checked between them.
func (f *Finder) FindAll(ctx context.Context) (WordSet, error) {
	all := make(WordSet)
	for start := 0; start < f.grid.NumCells(); start++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found, err := f.ExploreFrom(start)
		if err != nil {
			return nil, err
		}
		all.Union(found)
	}
	log.Debug().Int("num-words", len(all)).Msg("find-all-done")
	return all, nil
}
