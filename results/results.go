// Package results persists found-word sets. The search core returns an
// unordered set; output is sorted so runs are comparable.
package results

import (
	"bufio"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domcameron/wordgrid/finder"
)

// Sorted returns the words of the set in lexicographic order.
func Sorted(words finder.WordSet) []string {
	sorted := lo.Keys(words)
	sort.Strings(sorted)
	return sorted
}

// Write writes the words to w, one per line, sorted.
func Write(w io.Writer, words finder.WordSet) error {
	bw := bufio.NewWriter(w)
	for _, word := range Sorted(words) {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the words to a file, one per line, sorted.
func WriteFile(path string, words finder.WordSet) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, words); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	log.Info().Str("path", path).Int("num-words", len(words)).Msg("wrote-results")
	return nil
}
