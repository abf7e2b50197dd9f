package numberlink

import (
	"errors"
	"strings"
	"testing"
)

func TestCompactLine(t *testing.T) {
	type args struct {
		line string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr error
	}{
		{"empty line", args{""}, "", nil},
		{"dot and digits", args{"0 1 2"}, ".01", nil},
		{"digit to lowercase seam", args{"9 10 11 12"}, "89ab", nil},
		{"lowercase to uppercase seam", args{"35 36 37 38"}, "yzAB", nil},
		{"last index", args{"62"}, "Z", nil},
		{"whitespace runs", args{" 0\t\t5   9 "}, ".59", nil},
		{"out of range", args{"63"}, "", ErrOutOfRange},
		{"negative", args{"-1"}, "", ErrBadToken},
		{"not an integer", args{"x"}, "", ErrBadToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompactLine(tt.args.line)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CompactLine() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("CompactLine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandLine(t *testing.T) {
	type args struct {
		line string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr error
	}{
		{"empty line", args{""}, "", nil},
		{"dot and digits", args{".01"}, "0 1 2", nil},
		{"first lowercase", args{"abc"}, "11 12 13", nil},
		{"uppercase", args{"zA"}, "36 37", nil},
		{"unknown symbol", args{"a#b"}, "", ErrBadToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandLine(tt.args.line)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ExpandLine() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ExpandLine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompact(t *testing.T) {
	type args struct {
		in string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr error
	}{
		{"no input", args{""}, "", nil},
		{"single row", args{"0 1 2\n"}, ".01\n", nil},
		{"two rows", args{"0\n1 1\n"}, ".\n00\n", nil},
		{"blank row kept", args{"0\n\n1\n"}, ".\n\n0\n", nil},
		{"bad token aborts, prior rows stay", args{"0\nx\n1\n"}, ".\n", ErrBadToken},
		{"out of range aborts", args{"62\n63\n"}, "Z\n", ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			err := Compact(strings.NewReader(tt.args.in), &out)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compact() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if out.String() != tt.want {
				t.Errorf("Compact() wrote %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rows := []string{
		"",
		"0",
		"0 1 2 3 4 5 6 7 8 9 10",
		"35 36 37 61 62",
		"3 3 3 0 0 3",
	}
	for _, row := range rows {
		t.Run(row, func(t *testing.T) {
			enc, err := CompactLine(row)
			if err != nil {
				t.Fatalf("CompactLine() error = %v", err)
			}
			if len(enc) != len(strings.Fields(row)) {
				t.Errorf("CompactLine() length = %v, want %v", len(enc), len(strings.Fields(row)))
			}
			dec, err := ExpandLine(enc)
			if err != nil {
				t.Fatalf("ExpandLine() error = %v", err)
			}
			if want := strings.Join(strings.Fields(row), " "); dec != want {
				t.Errorf("ExpandLine(CompactLine()) = %q, want %q", dec, want)
			}
		})
	}
}

func TestAlphabet(t *testing.T) {
	if len(Alphabet) != 63 {
		t.Fatalf("len(Alphabet) = %v, want 63", len(Alphabet))
	}
	seen := make(map[byte]bool)
	for i := 0; i < len(Alphabet); i++ {
		if seen[Alphabet[i]] {
			t.Errorf("Alphabet[%v] = %q repeats", i, string(Alphabet[i]))
		}
		seen[Alphabet[i]] = true
	}
	for _, pos := range []struct {
		i    int
		want byte
	}{
		{0, '.'},
		{1, '0'},
		{10, '9'},
		{11, 'a'},
		{36, 'z'},
		{37, 'A'},
		{62, 'Z'},
	} {
		if c, err := CharFor(pos.i); err != nil || c != pos.want {
			t.Errorf("CharFor(%v) = %q, %v, want %q", pos.i, string(c), err, string(pos.want))
		}
	}
}
