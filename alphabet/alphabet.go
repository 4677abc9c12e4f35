package alphabet

import (
	"errors"
	"fmt"
	"sort"
)

const (
	// MaxAlphabetSize is the maximum number of distinct letters. A letter
	// index must fit in a uint8; a board rarely carries more than a few
	// dozen distinct glyphs.
	MaxAlphabetSize = 50
)

// ErrNotInAlphabet is returned when a rune has no index in the alphabet.
// It is the only error kind the search core produces.
var ErrNotInAlphabet = errors.New("letter not in alphabet")

// MachineLetter is a machine-only representation of a letter: a dense index
// from 0 to the alphabet size.
type MachineLetter uint8

// MachineWord is a slice of MachineLetters.
type MachineWord []MachineLetter

// LetterSlice is a slice of runes. We make it a separate type for ease in
// defining sort functions on it.
type LetterSlice []rune

// An Alphabet maps a user-visible rune (like 'a') to its MachineLetter
// counterpart and vice-versa. Build one with Init, one or more Update calls,
// and a final Reconcile; after Reconcile the mapping is fixed and must not
// be updated again.
type Alphabet struct {
	// vals is a map of the actual physical letter rune (like 'a') to a
	// number representing it, from 0 to MaxAlphabetSize.
	vals map[rune]MachineLetter
	// letters is the inverse map, from the machine value back to the rune.
	letters map[MachineLetter]rune

	letterSlice LetterSlice
	curIdx      MachineLetter
}

// Init initializes the alphabet data structures.
func (a *Alphabet) Init() {
	a.vals = make(map[rune]MachineLetter)
	a.letters = make(map[MachineLetter]rune)
}

// Update adds any runes in word that the alphabet has not seen yet.
func (a *Alphabet) Update(word string) error {
	for _, char := range word {
		if _, ok := a.vals[char]; !ok {
			a.vals[char] = a.curIdx
			a.curIdx++
		}
	}

	if a.curIdx == MaxAlphabetSize {
		return errors.New("exceeded max alphabet size")
	}
	return nil
}

// Reconcile sorts the glyphs and re-indexes the numbers so that the mapping
// is deterministic no matter the order of the Update calls.
func (a *Alphabet) Reconcile() {
	a.letterSlice = a.letterSlice[:0]
	for rn := range a.vals {
		a.letterSlice = append(a.letterSlice, rn)
	}
	sort.Sort(a.letterSlice)
	for idx, rn := range a.letterSlice {
		a.vals[rn] = MachineLetter(idx)
		a.letters[MachineLetter(idx)] = rn
	}
}

// Val returns the machine value of this rune in the alphabet.
func (a *Alphabet) Val(r rune) (MachineLetter, error) {
	val, ok := a.vals[r]
	if ok {
		return val, nil
	}
	return 0, fmt.Errorf("letter `%c`: %w", r, ErrNotInAlphabet)
}

// Has reports whether the rune is mapped in this alphabet.
func (a *Alphabet) Has(r rune) bool {
	_, ok := a.vals[r]
	return ok
}

// Letter returns the rune that this machine value corresponds to.
func (a *Alphabet) Letter(ml MachineLetter) rune {
	return a.letters[ml]
}

// NumLetters returns the number of letters in this alphabet.
func (a *Alphabet) NumLetters() uint8 {
	return uint8(len(a.vals))
}

// Letters returns the runes of the alphabet in index order.
func (a *Alphabet) Letters() []rune {
	return a.letterSlice
}

// UserVisible turns the passed-in machine word back into a string.
func (mw MachineWord) UserVisible(a *Alphabet) string {
	runes := make([]rune, len(mw))
	for i, ml := range mw {
		runes[i] = a.Letter(ml)
	}
	return string(runes)
}

func (ls LetterSlice) Len() int           { return len(ls) }
func (ls LetterSlice) Swap(i, j int)      { ls[i], ls[j] = ls[j], ls[i] }
func (ls LetterSlice) Less(i, j int) bool { return ls[i] < ls[j] }
