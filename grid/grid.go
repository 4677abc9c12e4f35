// Package grid turns a rectangular letter matrix into a graph: one node per
// cell, edges to the up-to-8 geometrically adjacent cells. Adjacency is pure
// geometry; it knows nothing about any dictionary.
package grid

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyGrid is returned for a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: empty grid")
	// ErrNotRectangular is returned when row lengths differ.
	ErrNotRectangular = errors.New("grid: rows have differing lengths")
)

// Grid is an R×C arrangement of letters, flattened row-major. Cell i sits at
// row i/C, column i%C; the stride between rows is the column count. Both the
// letters and the adjacency table are immutable after construction.
type Grid struct {
	rows, cols int
	letters    []rune
	adj        [][]int
}

// New builds a Grid from one string per row, one cell per rune. All rows
// must have the same length and there must be at least one cell.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	r := len(rows)
	c := len([]rune(rows[0]))

	g := &Grid{rows: r, cols: c}
	g.letters = make([]rune, 0, r*c)
	for _, row := range rows {
		runes := []rune(row)
		if len(runes) != c {
			return nil, ErrNotRectangular
		}
		g.letters = append(g.letters, runes...)
	}

	// For cell i, the neighbors are all cells differing by at most 1 in row
	// and column, clipped to the bounds, excluding i itself.
	g.adj = make([][]int, r*c)
	for row := 0; row < r; row++ {
		for col := 0; col < c; col++ {
			i := row*c + col
			neighbors := []int{}
			for x := row - 1; x <= row+1; x++ {
				for y := col - 1; y <= col+1; y++ {
					if x < 0 || x >= r || y < 0 || y >= c {
						continue
					}
					if j := x*c + y; j != i {
						neighbors = append(neighbors, j)
					}
				}
			}
			g.adj[i] = neighbors
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// NumCells returns the total cell count, which also bounds path length.
func (g *Grid) NumCells() int { return len(g.letters) }

// Letter returns the letter at flattened cell index i.
func (g *Grid) Letter(i int) rune { return g.letters[i] }

// Neighbors returns the precomputed neighbor list of cell i. The caller must
// not modify the returned slice.
func (g *Grid) Neighbors(i int) []int { return g.adj[i] }

// Word converts a path of cell indices to its letter string.
func (g *Grid) Word(path []int) string {
	var sb strings.Builder
	for _, i := range path {
		sb.WriteRune(g.letters[i])
	}
	return sb.String()
}

// Index flattens a (row, col) coordinate to a cell index.
func (g *Grid) Index(row, col int) int { return row*g.cols + col }
