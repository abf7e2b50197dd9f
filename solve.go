package numberlink

import (
	"strings"

	"github.com/crillab/gophersat/solver"
)

// Solution is one solved puzzle, rendered row by row: endpoint cells
// show their label, path cells a box-drawing stroke.
type Solution struct {
	Rows []string
}

func (s *Solution) String() string {
	if len(s.Rows) == 0 {
		return ""
	}
	return strings.Join(s.Rows, "\n") + "\n"
}

// Solve hands the clause set to the SAT solver and renders the model.
// It returns ErrNoSolution when the puzzle admits no spanning solution.
func (ins *Instance) Solve() (*Solution, error) {
	if ins.grid.Height == 0 {
		return &Solution{}, nil
	}
	pb := solver.ParseSlice(ins.clauses)
	s := solver.New(pb)
	if s.Solve() != solver.Sat {
		return nil, ErrNoSolution
	}
	return ins.render(s.Model()), nil
}

// Strokes for a path cell, keyed by the set of links it carries:
// north=1, south=2, east=4, west=8.
var strokes = map[int]rune{
	3:  '│',
	5:  '└',
	9:  '┘',
	6:  '┌',
	10: '┐',
	12: '─',
}

func (ins *Instance) render(model []bool) *Solution {
	lit := func(v int) bool { return model[v-1] }
	p, w, h := ins.grid.Pairs(), ins.grid.Width, ins.grid.Height

	rows := make([]string, 0, h)
	for i := 0; i < h; i++ {
		var b strings.Builder
		for j := 0; j < w; j++ {
			if lit(ins.edge(i, j, sink)) {
				for k := 0; k < p; k++ {
					if lit(ins.assignment(i, j, k)) {
						b.WriteByte(ins.grid.Labels[k])
						break
					}
				}
				continue
			}

			links := 0
			if lit(ins.edge(i, j, north)) {
				links |= 1
			}
			if lit(ins.edge(i, j, south)) {
				links |= 2
			}
			if lit(ins.edge(i, j, east)) {
				links |= 4
			}
			if lit(ins.edge(i, j, west)) {
				links |= 8
			}
			if r, ok := strokes[links]; ok {
				b.WriteRune(r)
			} else {
				b.WriteByte(' ')
			}
		}
		rows = append(rows, b.String())
	}
	return &Solution{Rows: rows}
}
