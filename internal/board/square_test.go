package board

import "testing"

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
	}{
		{"a1", Square{0, 0}},
		{"e4", Square{4, 3}},
		{"h8", Square{7, 7}},
		{"c12", Square{2, 11}},
		{"z99", Square{25, 98}},
	}
	for _, tc := range tests {
		got, err := ParseSquare(tc.in)
		if err != nil {
			t.Errorf("ParseSquare(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSquare(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Errorf("String() = %q, want %q", got.String(), tc.in)
		}
	}
}

func TestParseSquareErrors(t *testing.T) {
	for _, in := range []string{"", "e", "e0", "4e", "ee4", "e100", "E4"} {
		if _, err := ParseSquare(in); err == nil {
			t.Errorf("ParseSquare(%q) succeeded, want error", in)
		}
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in       string
		from, to Square
	}{
		{"e2e4", Square{4, 1}, Square{4, 3}},
		{"b2b10", Square{1, 1}, Square{1, 9}},
		{"a12c14", Square{0, 11}, Square{2, 13}},
	}
	for _, tc := range tests {
		from, to, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.in, err)
			continue
		}
		if from != tc.from || to != tc.to {
			t.Errorf("ParseMove(%q) = %v %v, want %v %v", tc.in, from, to, tc.from, tc.to)
		}
	}

	for _, in := range []string{"", "e2", "e2e0", "22e4"} {
		if _, _, err := ParseMove(in); err == nil {
			t.Errorf("ParseMove(%q) succeeded, want error", in)
		}
	}
}

func TestRelativeRank(t *testing.T) {
	sq := Square{0, 2}
	if got := sq.RelativeRank(White, 8); got != 2 {
		t.Errorf("white relative rank = %d, want 2", got)
	}
	if got := sq.RelativeRank(Black, 8); got != 5 {
		t.Errorf("black relative rank = %d, want 5", got)
	}
}
