package numberlink

// Edge positions around a cell. The sink position marks a labeled
// endpoint instead of a link to a neighbor.
type direction int

const (
	sink direction = iota
	north
	south
	east
	west
)

// Instance is the CNF encoding of one puzzle. Literals are non-zero
// integers, a negative value meaning the negation of the variable.
type Instance struct {
	grid    *Grid
	nVars   int
	clauses [][]int

	// One assignment literal per cell and pair, plus one sink literal
	// per cell and one literal per horizontal and vertical cell border.
	assignments []int
	sinks       []int
	eastWest    []int
	northSouth  []int
}

// NewInstance encodes a parsed grid into clauses, clue cells included.
func NewInstance(g *Grid) *Instance {
	ins := &Instance{grid: g}
	p, w, h := g.Pairs(), g.Width, g.Height
	ins.assignments = ins.newLits(p * w * h)
	ins.sinks = ins.newLits(w * h)
	ins.eastWest = ins.newLits((w + 1) * h)
	ins.northSouth = ins.newLits(w * (h + 1))

	ins.assignmentConstraints()
	ins.wallConstraints()
	ins.degreeConstraints()
	ins.linkConstraints()
	ins.stickConstraints()
	ins.cornerPropagationConstraints()
	ins.clueConstraints()
	return ins
}

// NumVars returns the number of variables in the encoding.
func (ins *Instance) NumVars() int { return ins.nVars }

// NumClauses returns the number of clauses in the encoding.
func (ins *Instance) NumClauses() int { return len(ins.clauses) }

func (ins *Instance) newLits(n int) []int {
	lits := make([]int, n)
	for i := range lits {
		ins.nVars++
		lits[i] = ins.nVars
	}
	return lits
}

func (ins *Instance) addClause(lits ...int) {
	ins.clauses = append(ins.clauses, lits)
}

// assignment returns the literal for "cell (i,j) belongs to pair k".
func (ins *Instance) assignment(i, j, k int) int {
	return ins.assignments[(i*ins.grid.Width+j)*ins.grid.Pairs()+k]
}

// edge returns the literal for the border of cell (i,j) in direction d,
// or its sink literal. Neighboring cells share the border literal.
func (ins *Instance) edge(i, j int, d direction) int {
	w := ins.grid.Width
	switch d {
	case sink:
		return ins.sinks[i*w+j]
	case east:
		return ins.eastWest[i*(w+1)+j+1]
	case west:
		return ins.eastWest[i*(w+1)+j]
	case south:
		return ins.northSouth[(i+1)*w+j]
	default: // north
		return ins.northSouth[i*w+j]
	}
}

// glue encodes g => (x <=> y).
func (ins *Instance) glue(g, x, y int) {
	ins.addClause(-g, -x, y)
	ins.addClause(-g, x, -y)
}

// stick encodes (x && y) => g.
func (ins *Instance) stick(g, x, y int) {
	ins.addClause(g, -x, -y)
}

// choose enumerates every k-subset of xs, extending cur with the picked
// literals and handing each complete selection to f. f must not retain
// the slice.
func choose(k int, xs, cur []int, f func([]int)) {
	n := len(xs)
	if k > n {
		return
	}
	if k == 0 {
		f(cur)
		return
	}
	if k == n {
		f(append(cur, xs...))
		return
	}
	choose(k-1, xs[1:], append(cur, xs[0]), f)
	choose(k, xs[1:], cur, f)
}

// lessThan forbids any n of xs from being true at once.
func (ins *Instance) lessThan(n int, xs []int) {
	choose(n, xs, nil, func(vs []int) {
		clause := make([]int, len(vs))
		for i, v := range vs {
			clause[i] = -v
		}
		ins.clauses = append(ins.clauses, clause)
	})
}

// greaterThan requires more than n of xs to be true.
func (ins *Instance) greaterThan(n int, xs []int) {
	choose(len(xs)-n, xs, nil, func(vs []int) {
		clause := make([]int, len(vs))
		copy(clause, vs)
		ins.clauses = append(ins.clauses, clause)
	})
}

// exact requires exactly n of xs to be true.
func (ins *Instance) exact(n int, xs []int) {
	ins.lessThan(n+1, xs)
	ins.greaterThan(n-1, xs)
}

// assignmentConstraints gives every cell exactly one pair.
func (ins *Instance) assignmentConstraints() {
	p, w, h := ins.grid.Pairs(), ins.grid.Width, ins.grid.Height
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			xs := make([]int, p)
			for k := 0; k < p; k++ {
				xs[k] = ins.assignment(i, j, k)
			}
			ins.exact(1, xs)
		}
	}
}

// wallConstraints forbid links across the outer border.
func (ins *Instance) wallConstraints() {
	w, h := ins.grid.Width, ins.grid.Height
	for i := 0; i < h; i++ {
		ins.addClause(-ins.edge(i, 0, west))
		ins.addClause(-ins.edge(i, w-1, east))
	}
	for j := 0; j < w; j++ {
		ins.addClause(-ins.edge(0, j, north))
		ins.addClause(-ins.edge(h-1, j, south))
	}
}

// degreeConstraints give every cell exactly two of sink and links, so
// an endpoint continues in one direction and a path cell in two.
func (ins *Instance) degreeConstraints() {
	w, h := ins.grid.Width, ins.grid.Height
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			xs := make([]int, 0, 5)
			for d := sink; d <= west; d++ {
				xs = append(xs, ins.edge(i, j, d))
			}
			ins.exact(2, xs)
		}
	}
}

// linkConstraints make linked neighbors share their pair.
func (ins *Instance) linkConstraints() {
	p, w, h := ins.grid.Pairs(), ins.grid.Width, ins.grid.Height
	for i := 1; i < h; i++ {
		for j := 0; j < w; j++ {
			e := ins.edge(i, j, north)
			for k := 0; k < p; k++ {
				ins.glue(e, ins.assignment(i, j, k), ins.assignment(i-1, j, k))
			}
		}
	}
	for i := 0; i < h; i++ {
		for j := 1; j < w; j++ {
			e := ins.edge(i, j, west)
			for k := 0; k < p; k++ {
				ins.glue(e, ins.assignment(i, j, k), ins.assignment(i, j-1, k))
			}
		}
	}
}

// stickConstraints force a link between neighbors of the same pair,
// ruling out solutions where a pair's cells merely touch.
func (ins *Instance) stickConstraints() {
	p, w, h := ins.grid.Pairs(), ins.grid.Width, ins.grid.Height
	for i := 1; i < h; i++ {
		for j := 0; j < w; j++ {
			e := ins.edge(i, j, north)
			for k := 0; k < p; k++ {
				ins.stick(e, ins.assignment(i, j, k), ins.assignment(i-1, j, k))
			}
		}
	}
	for i := 0; i < h; i++ {
		for j := 1; j < w; j++ {
			e := ins.edge(i, j, west)
			for k := 0; k < p; k++ {
				ins.stick(e, ins.assignment(i, j, k), ins.assignment(i, j-1, k))
			}
		}
	}
}

// cornerPropagationConstraints keep a path that turns a corner from
// enclosing a detached loop in the diagonal cell.
func (ins *Instance) cornerPropagationConstraints() {
	w, h := ins.grid.Width, ins.grid.Height
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if i > 0 && j > 0 {
				ins.cornerPropagation(i, j, north, west)
			}
			if i > 0 && j < w-1 {
				ins.cornerPropagation(i, j, north, east)
			}
			if i < h-1 && j > 0 {
				ins.cornerPropagation(i, j, south, west)
			}
			if i < h-1 && j < w-1 {
				ins.cornerPropagation(i, j, south, east)
			}
		}
	}
}

func (ins *Instance) cornerPropagation(i, j int, in, out direction) {
	ii := i + 1
	if in == north {
		ii = i - 1
	}
	jj := j + 1
	if out == west {
		jj = j - 1
	}

	e := ins.edge(i, j, in)
	f := ins.edge(i, j, out)
	s := ins.edge(ii, jj, sink)
	ins.addClause(-e, -f, s, ins.edge(ii, jj, in))
	ins.addClause(-e, -f, s, ins.edge(ii, jj, out))
}

// clueConstraints pin every labeled cell to its pair as an endpoint and
// forbid endpoints on empty cells.
func (ins *Instance) clueConstraints() {
	w, h := ins.grid.Width, ins.grid.Height
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if ins.grid.Rows[i][j] == '.' {
				ins.addClause(-ins.edge(i, j, sink))
			} else {
				ins.addClause(ins.assignment(i, j, ins.grid.LabelAt(i, j)))
				ins.addClause(ins.edge(i, j, sink))
			}
		}
	}
}
