package numberlink

import (
	"bufio"
	"fmt"
	"io"
)

// Grid holds a compact puzzle: one symbol per cell, '.' for an empty
// cell, anything else for a labeled endpoint. Labels keeps every
// distinct symbol in first-appearance order.
type Grid struct {
	Rows   []string
	Labels []byte
	Width  int
	Height int

	labelIndex map[byte]int
}

// ParseGrid reads a compact puzzle from r. Blank lines and lines
// starting with '#' are skipped; every remaining line is one row and
// all rows must have the same width.
func ParseGrid(r io.Reader) (*Grid, error) {
	g := &Grid{labelIndex: make(map[byte]int)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		if len(g.Rows) == 0 {
			g.Width = len(line)
		} else if len(line) != g.Width {
			return nil, fmt.Errorf("row %d is %d cells wide, want %d", len(g.Rows), len(line), g.Width)
		}
		g.Rows = append(g.Rows, line)
		for i := 0; i < len(line); i++ {
			c := line[i]
			if _, ok := g.labelIndex[c]; !ok {
				g.labelIndex[c] = len(g.Labels)
				g.Labels = append(g.Labels, c)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	g.Height = len(g.Rows)
	return g, nil
}

// Pairs returns the number of distinct cell symbols, the '.' marker
// included when present.
func (g *Grid) Pairs() int {
	return len(g.Labels)
}

// LabelAt returns the label index of the cell at row i, column j.
func (g *Grid) LabelAt(i, j int) int {
	return g.labelIndex[g.Rows[i][j]]
}
