package finder

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/matryer/is"

	"github.com/domcameron/wordgrid/alphabet"
	"github.com/domcameron/wordgrid/grid"
	"github.com/domcameron/wordgrid/trie"
)

func buildTrie(t *testing.T, alphaSource string, words ...string) *trie.Trie {
	t.Helper()
	alph := &alphabet.Alphabet{}
	alph.Init()
	alph.Update(alphaSource)
	for _, w := range words {
		alph.Update(w)
	}
	alph.Reconcile()
	tr := trie.New(alph)
	for _, w := range words {
		if err := tr.Insert(w); err != nil {
			t.Fatal(err)
		}
	}
	return tr
}

func TestExploreFromSingleCell(t *testing.T) {
	is := is.New(t)
	g, err := grid.New([]string{"ca", "ts"})
	is.NoErr(err)
	f := New(g, buildTrie(t, "cats", "cat", "cats", "act"))

	// Starting at "c" we can reach cat and cats, but not act.
	found, err := f.ExploreFrom(0)
	is.NoErr(err)
	is.Equal(found, WordSet{"cat": {}, "cats": {}})
}

func TestFindAllUnionsAllStarts(t *testing.T) {
	is := is.New(t)
	g, err := grid.New([]string{"ca", "ts"})
	is.NoErr(err)
	f := New(g, buildTrie(t, "cats", "cat", "cats", "act"))

	found, err := f.FindAll(context.Background())
	is.NoErr(err)
	is.Equal(found, WordSet{"cat": {}, "cats": {}, "act": {}})
}

func TestFindAllFourByFour(t *testing.T) {
	is := is.New(t)
	g, err := grid.New([]string{"rael", "mofs", "teok", "nati"})
	is.NoErr(err)
	// r->a->m are mutually adjacent distinct cells, as are t->e->a.
	// "fee" would need the two e cells, which do not touch.
	f := New(g, buildTrie(t, "raelmofsteoknati", "ram", "tea", "fee"))

	found, err := f.FindAll(context.Background())
	is.NoErr(err)
	is.Equal(found, WordSet{"ram": {}, "tea": {}})
}

func TestNoCellReuse(t *testing.T) {
	is := is.New(t)
	g, err := grid.New([]string{"aaa"})
	is.NoErr(err)
	f := New(g, buildTrie(t, "aaa", "aaa", "aaaa"))

	// "aaaa" needs four cells; the grid only has three, and the two end
	// cells do not touch each other.
	found, err := f.FindAll(context.Background())
	is.NoErr(err)
	is.Equal(found, WordSet{"aaa": {}})
}

func TestEmptyDictionary(t *testing.T) {
	is := is.New(t)
	g, err := grid.New([]string{"ca", "ts"})
	is.NoErr(err)
	f := New(g, buildTrie(t, "cats"))

	found, err := f.FindAll(context.Background())
	is.NoErr(err)
	is.Equal(len(found), 0)
}

func TestDeterminism(t *testing.T) {
	is := is.New(t)
	g, err := grid.New([]string{"rael", "mofs", "teok", "nati"})
	is.NoErr(err)
	f := New(g, buildTrie(t, "raelmofsteoknati", "ram", "tea", "oak", "note", "fame"))

	first, err := f.FindAll(context.Background())
	is.NoErr(err)
	second, err := f.FindAll(context.Background())
	is.NoErr(err)
	is.True(reflect.DeepEqual(first, second))
}

func TestStartOrderIndependence(t *testing.T) {
	is := is.New(t)
	g, err := grid.New([]string{"rael", "mofs", "teok", "nati"})
	is.NoErr(err)
	f := New(g, buildTrie(t, "raelmofsteoknati", "ram", "tea", "oak", "note"))

	forward, err := f.FindAll(context.Background())
	is.NoErr(err)

	reverse := make(WordSet)
	for start := g.NumCells() - 1; start >= 0; start-- {
		found, err := f.ExploreFrom(start)
		is.NoErr(err)
		reverse.Union(found)
	}
	is.True(reflect.DeepEqual(forward, reverse))
}

func TestMinimumWordLength(t *testing.T) {
	is := is.New(t)
	g, err := grid.New([]string{"ca", "ts"})
	is.NoErr(err)
	// Two-letter entries exist in some word lists; they must never surface.
	f := New(g, buildTrie(t, "cats", "at", "ta", "cat"))

	found, err := f.FindAll(context.Background())
	is.NoErr(err)
	is.Equal(found, WordSet{"cat": {}})
}

func TestExpandShortPathSkipsTrie(t *testing.T) {
	is := is.New(t)
	g, err := grid.New([]string{"ca", "ts"})
	is.NoErr(err)
	f := New(g, buildTrie(t, "cats", "cat", "cats", "act"))

	// A single-cell path forwards every candidate unchecked.
	found, next, err := f.Expand([]int{0})
	is.NoErr(err)
	is.Equal(len(found), 0)
	is.Equal(len(next), 3)
}

func TestExpandPrunes(t *testing.T) {
	is := is.New(t)
	g, err := grid.New([]string{"ca", "ts"})
	is.NoErr(err)
	f := New(g, buildTrie(t, "cats", "cat", "cats", "act"))

	// From c->a, only "cat" survives: it is a word and still extendable.
	// "cas" is neither a word nor a prefix and is discarded.
	found, next, err := f.Expand([]int{0, 1})
	is.NoErr(err)
	is.Equal(found, []string{"cat"})
	is.Equal(next, [][]int{{0, 1, 2}})
}

func TestGridLetterOutsideAlphabet(t *testing.T) {
	is := is.New(t)
	g, err := grid.New([]string{"ca", "tx"})
	is.NoErr(err)
	f := New(g, buildTrie(t, "cats", "cat"))

	_, err = f.FindAll(context.Background())
	is.True(errors.Is(err, alphabet.ErrNotInAlphabet))
}

func TestCancellation(t *testing.T) {
	is := is.New(t)
	g, err := grid.New([]string{"ca", "ts"})
	is.NoErr(err)
	f := New(g, buildTrie(t, "cats", "cat"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.FindAll(ctx)
	is.True(errors.Is(err, context.Canceled))
}
