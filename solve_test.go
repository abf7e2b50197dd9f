package numberlink

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustGrid(t *testing.T, in string) *Grid {
	t.Helper()
	g, err := ParseGrid(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}
	return g
}

func TestSolve(t *testing.T) {
	type args struct {
		puzzle string
	}
	tests := []struct {
		name     string
		args     args
		wantRows []string
		wantErr  error
	}{
		{
			"straight link",
			args{"1.1\n"},
			[]string{"1─1"},
			nil,
		},
		{
			"two vertical links",
			args{"12\n12\n"},
			[]string{"12", "12"},
			nil,
		},
		{
			"three columns",
			args{"123\n...\n123\n"},
			[]string{"123", "│││", "123"},
			nil,
		},
		{
			"crossing pairs",
			args{"12\n21\n"},
			nil,
			ErrNoSolution,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewInstance(mustGrid(t, tt.args.puzzle)).Solve()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Solve() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(got.Rows, tt.wantRows) {
				t.Errorf("Solve() rows = %q, want %q", got.Rows, tt.wantRows)
			}
		})
	}
}

func TestSolutionString(t *testing.T) {
	got, err := NewInstance(mustGrid(t, "1.1\n")).Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if got.String() != "1─1\n" {
		t.Errorf("String() = %q, want %q", got.String(), "1─1\n")
	}
}

func TestInstanceSize(t *testing.T) {
	ins := NewInstance(mustGrid(t, "1.1\n"))
	// 2 pairs on 1x3 cells: 6 assignments, 3 sinks, 4 east/west and 6
	// north/south borders.
	if ins.NumVars() != 19 {
		t.Errorf("NumVars() = %v, want 19", ins.NumVars())
	}
	if ins.NumClauses() == 0 {
		t.Error("NumClauses() = 0, want clauses")
	}
}

func TestSolveDeterministic(t *testing.T) {
	g := mustGrid(t, "123\n...\n123\n")
	first, err := NewInstance(g).Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	again, err := NewInstance(g).Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if !reflect.DeepEqual(first.Rows, again.Rows) {
		t.Errorf("Solve() rows = %q, then %q", first.Rows, again.Rows)
	}
}
