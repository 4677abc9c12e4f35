// Package wordlist loads and filters dictionary word lists for the search
// core, which expects pre-filtered, deduplicated input.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/domcameron/wordgrid/alphabet"
)

// Load reads a newline-delimited word list. Entries are lowercased and
// deduplicated; blank lines and anything after the first whitespace on a
// line are ignored.
func Load(r io.Reader) ([]string, error) {
	lower := cases.Lower(language.Und)
	seen := map[string]struct{}{}
	words := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		word := lower.String(fields[0])
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadFile reads a word list from a file.
func LoadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	words, err := Load(file)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("num-words", len(words)).Msg("loaded-word-list")
	return words, nil
}

// Filter keeps the words playable on a board: only letters from the given
// alphabet, and lengths within [minLen, maxLen]. maxLen is normally the
// board's cell count, since a path cannot revisit a cell.
func Filter(words []string, alph *alphabet.Alphabet, minLen, maxLen int) []string {
	kept := lo.Filter(words, func(w string, _ int) bool {
		n := utf8.RuneCountInString(w)
		if n < minLen || n > maxLen {
			return false
		}
		for _, r := range w {
			if !alph.Has(r) {
				return false
			}
		}
		return true
	})
	log.Debug().Int("in", len(words)).Int("kept", len(kept)).Msg("filtered-word-list")
	return kept
}
