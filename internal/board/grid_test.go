package board

import (
	"errors"
	"testing"
)

func TestNewRejectsDegenerateSizes(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := New(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}

	g, err := New(5)
	if err != nil {
		t.Fatalf("New(5): %v", err)
	}
	if g.Size() != 5 || len(g.EmptyCells()) != 25 {
		t.Errorf("New(5) = %v, want empty 5x5 grid", g)
	}
}

func TestFromRowsValidation(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want error
	}{
		{"valid", [][]int{{2, 0}, {0, 4}}, nil},
		{"too small", [][]int{{2}}, ErrInvalidSize},
		{"not square", [][]int{{2, 0}, {0}}, ErrMalformedGrid},
		{"odd value", [][]int{{3, 0}, {0, 0}}, ErrMalformedGrid},
		{"one is not a tile", [][]int{{1, 0}, {0, 0}}, ErrMalformedGrid},
		{"negative", [][]int{{-2, 0}, {0, 0}}, ErrMalformedGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(tt.rows)
			if tt.want == nil && err != nil {
				t.Errorf("FromRows(%v) unexpected error: %v", tt.rows, err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("FromRows(%v) error = %v, want %v", tt.rows, err, tt.want)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 0}, {0, 4}})
	c := g.Clone()
	c[0][0] = 8

	if g[0][0] != 2 {
		t.Errorf("modifying clone changed original: %v", g)
	}
	if g.Equal(c) {
		t.Error("Equal should be false after clone diverged")
	}
}

func TestGridHelpers(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	if n := len(g.EmptyCells()); n != 8 {
		t.Errorf("EmptyCells count = %d, want 8", n)
	}
	if got := g.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if got := g.Sum(); got != 2+8+64+256+512+2048+16+64 {
		t.Errorf("Sum = %d", got)
	}
	if got, want := g.String(), "2 0 8 0 / 0 64 0 256 / 512 0 2048 0 / 0 16 0 64"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseMove(t *testing.T) {
	for _, m := range Moves {
		got, err := ParseMove(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMove(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMove("sideways"); err == nil {
		t.Error("ParseMove should reject unknown names")
	}
}
