package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/domcameron/wordgrid/alphabet"
	"github.com/domcameron/wordgrid/cache"
	"github.com/domcameron/wordgrid/config"
	"github.com/domcameron/wordgrid/finder"
	"github.com/domcameron/wordgrid/grid"
	"github.com/domcameron/wordgrid/naive"
	"github.com/domcameron/wordgrid/results"
	"github.com/domcameron/wordgrid/trie"
	"github.com/domcameron/wordgrid/wordlist"
)

func main() {
	fs := pflag.NewFlagSet("wordgrid", pflag.ExitOnError)
	fs.String("config", "", "path to an optional yaml config file")
	fs.String("board", "", "path to a yaml board file; interactive mode if empty")
	fs.String("wordlist", "./data/english_words.txt", "path to a newline-delimited word list")
	fs.String("output", "", "write found words to this file")
	fs.Bool("naive", false, "use the brute-force baseline instead of the trie")
	fs.Bool("debug", false, "enable debug logging")
	fs.Parse(os.Args[1:])

	cfg := config.DefaultConfig()
	if err := cfg.Load(flagString(fs, "config")); err != nil {
		log.Fatal().Err(err).Msg("could not load config file")
	}
	cfg.BindPFlag("board-path", fs.Lookup("board"))
	cfg.BindPFlag("wordlist-path", fs.Lookup("wordlist"))
	cfg.BindPFlag("output-path", fs.Lookup("output"))
	cfg.BindPFlag("naive", fs.Lookup("naive"))
	cfg.BindPFlag("debug", fs.Lookup("debug"))

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	var logger zerolog.Logger
	if cfg.GetBool("debug") {
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("wordgrid failed")
	}
}

func run(ctx context.Context, cfg config.Config) error {
	boardPath := cfg.GetString("board-path")
	if boardPath == "" {
		return interactive(ctx, cfg)
	}

	g, words, err := loadInputs(ctx, cfg, boardPath)
	if err != nil {
		return err
	}
	found, err := solve(ctx, cfg, g, words)
	if err != nil {
		return err
	}
	for _, w := range results.Sorted(found) {
		fmt.Println(w)
	}
	if out := cfg.GetString("output-path"); out != "" {
		return results.WriteFile(out, found)
	}
	return nil
}

// loadInputs reads the board and the word list concurrently; neither depends
// on the other.
func loadInputs(ctx context.Context, cfg config.Config, boardPath string) (*grid.Grid, []string, error) {
	var g *grid.Grid
	var words []string
	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		rows, err := loadBoard(boardPath)
		if err != nil {
			return err
		}
		g, err = grid.New(rows)
		return err
	})
	eg.Go(func() error {
		var err error
		words, err = cache.WordList(cfg, cfg.GetString("wordlist-path"))
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return g, words, nil
}

// solve builds the alphabet from the board's letters, filters the word list
// down to playable words, and runs the requested finder.
func solve(ctx context.Context, cfg config.Config, g *grid.Grid, words []string) (finder.WordSet, error) {
	start := time.Now()

	alph := &alphabet.Alphabet{}
	alph.Init()
	for i := 0; i < g.NumCells(); i++ {
		if err := alph.Update(string(g.Letter(i))); err != nil {
			return nil, err
		}
	}
	alph.Reconcile()
	log.Debug().Str("letters", string(alph.Letters())).Msg("board-alphabet")

	playable := wordlist.Filter(words, alph, finder.MinWordLength, g.NumCells())

	var found finder.WordSet
	var err error
	if cfg.GetBool("naive") {
		found, err = naive.New(g, playable).FindAll(ctx)
	} else {
		tr := trie.New(alph)
		if _, err = tr.InsertAll(playable); err != nil {
			return nil, err
		}
		found, err = finder.New(g, tr).FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	log.Info().Int("num-words", len(found)).Dur("elapsed", time.Since(start)).
		Msg("search-done")
	return found, nil
}

// interactive reads board rows from a prompt; an empty line solves the
// accumulated board and starts a fresh one.
func interactive(ctx context.Context, cfg config.Config) error {
	words, err := cache.WordList(cfg, cfg.GetString("wordlist-path"))
	if err != nil {
		return err
	}

	rl, err := readline.New("row> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	fmt.Println("Enter board rows one per line; an empty line solves the board.")

	rows := []string{}
	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt ends the session.
			return nil
		}
		line = strings.ToLower(strings.TrimSpace(line))
		if line != "" {
			rows = append(rows, line)
			continue
		}
		if len(rows) == 0 {
			continue
		}
		g, gerr := grid.New(rows)
		rows = rows[:0]
		if gerr != nil {
			fmt.Println(gerr)
			continue
		}
		found, serr := solve(ctx, cfg, g, words)
		if serr != nil {
			return serr
		}
		for _, w := range results.Sorted(found) {
			fmt.Println(w)
		}
	}
}

func flagString(fs *pflag.FlagSet, name string) string {
	v, err := fs.GetString(name)
	if err != nil {
		return ""
	}
	return v
}
