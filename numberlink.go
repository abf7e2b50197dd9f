// Package numberlink recodes and solves numberlink puzzle grids.
//
// A puzzle is a rectangular grid in which every labeled cell is one
// endpoint of a pair, and a solution connects each pair with a path so
// that the paths cover every cell and never cross. Grids come in two
// text encodings: the verbose archive form, one whitespace-separated
// integer per cell, and the compact form, one alphabet symbol per cell.
package numberlink

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet is the fixed 63-symbol cell encoding: index 0 is the empty
// cell marker, followed by the digits, the lowercase letters, and the
// uppercase letters.
const Alphabet = "." +
	"0123456789" +
	"abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	// ErrBadToken is returned when an input token is not a valid
	// non-negative integer or a symbol is not in the Alphabet.
	ErrBadToken = errors.New("not a valid token")
	// ErrOutOfRange is returned when a cell index falls outside the
	// Alphabet.
	ErrOutOfRange = errors.New("index outside the alphabet")
	// ErrNoSolution is returned when the solver proves a puzzle has no
	// spanning solution.
	ErrNoSolution = errors.New("no unique spanning solution")
)

// CharFor returns the Alphabet symbol for a cell index.
func CharFor(i int) (byte, error) {
	if i < 0 || i >= len(Alphabet) {
		return 0, fmt.Errorf("%d: %w", i, ErrOutOfRange)
	}
	return Alphabet[i], nil
}

// IndexOf returns the cell index of an Alphabet symbol.
func IndexOf(c byte) (int, error) {
	i := strings.IndexByte(Alphabet, c)
	if i < 0 {
		return 0, fmt.Errorf("%q: %w", string(c), ErrBadToken)
	}
	return i, nil
}
