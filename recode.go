package numberlink

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CompactLine recodes one row of whitespace-separated integer tokens
// into its compact form. An empty row yields an empty string.
func CompactLine(line string) (string, error) {
	var b strings.Builder
	for _, tok := range strings.Fields(line) {
		i, err := strconv.Atoi(tok)
		if err != nil || i < 0 {
			return "", fmt.Errorf("%q: %w", tok, ErrBadToken)
		}
		c, err := CharFor(i)
		if err != nil {
			return "", err
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// ExpandLine recodes one compact row back into space-separated integer
// tokens.
func ExpandLine(line string) (string, error) {
	fields := make([]string, 0, len(line))
	for i := 0; i < len(line); i++ {
		idx, err := IndexOf(line[i])
		if err != nil {
			return "", err
		}
		fields = append(fields, strconv.Itoa(idx))
	}
	return strings.Join(fields, " "), nil
}

// Compact recodes every row read from r and writes one compact row per
// input row to w, preserving order. The first bad token aborts the run;
// rows already written stay written.
func Compact(r io.Reader, w io.Writer) error {
	return recode(r, w, CompactLine)
}

// Expand recodes every compact row read from r back into integer rows
// written to w, preserving order.
func Expand(r io.Reader, w io.Writer) error {
	return recode(r, w, ExpandLine)
}

func recode(r io.Reader, w io.Writer, f func(string) (string, error)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row, err := f(scanner.Text())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return scanner.Err()
}
