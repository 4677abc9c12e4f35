// Package cache keeps parsed word lists in memory. Interactive sessions and
// tests solve many boards against the same dictionary file; the file should
// only be read and parsed once per process.
package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domcameron/wordgrid/config"
	"github.com/domcameron/wordgrid/wordlist"
)

type wordListCache struct {
	sync.Mutex
	lists map[string][]string
}

var global = &wordListCache{lists: make(map[string][]string)}

// WordList returns the words at path, reading the file on the first call and
// serving the parsed list from memory afterwards. An empty path falls back
// to the configured wordlist-path.
func WordList(cfg config.Config, path string) ([]string, error) {
	if path == "" {
		path = cfg.GetString("wordlist-path")
	}

	global.Lock()
	defer global.Unlock()
	if words, ok := global.lists[path]; ok {
		log.Debug().Str("path", path).Msg("word-list-cache-hit")
		return words, nil
	}

	words, err := wordlist.LoadFile(path)
	if err != nil {
		return nil, err
	}
	global.lists[path] = words
	return words, nil
}
