package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestLoadBoard(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "board.yaml")
	is.NoErr(os.WriteFile(path, []byte("rows:\n  - RAEL\n  - mofs\n"), 0o644))

	rows, err := loadBoard(path)
	is.NoErr(err)
	is.Equal(rows, []string{"rael", "mofs"})
}

func TestLoadBoardBadYaml(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "board.yaml")
	is.NoErr(os.WriteFile(path, []byte("rows: {"), 0o644))

	_, err := loadBoard(path)
	is.True(err != nil)
}
