package board

// Compress slides every nonzero value in each row to the left, keeping their
// order and padding the remainder with zeros. No merging happens here.
func Compress(g Grid) Grid {
	out := alloc(g.Size())
	for i, row := range g {
		pos := 0
		for _, v := range row {
			if v != 0 {
				out[i][pos] = v
				pos++
			}
		}
	}
	return out
}

// Merge scans each row left to right and doubles cell j into place when it
// equals cell j+1, zeroing j+1. Scanning resumes at j+1, so a run of three
// equal tiles only merges its first pair.
func Merge(g Grid) Grid {
	out := g.Clone()
	for _, row := range out {
		for j := 0; j < len(row)-1; j++ {
			if row[j] != 0 && row[j] == row[j+1] {
				row[j] *= 2
				row[j+1] = 0
			}
		}
	}
	return out
}

// Reverse mirrors each row horizontally.
func Reverse(g Grid) Grid {
	size := g.Size()
	out := alloc(size)
	for i, row := range g {
		for j, v := range row {
			out[i][size-1-j] = v
		}
	}
	return out
}

// Transpose swaps rows and columns.
func Transpose(g Grid) Grid {
	out := alloc(g.Size())
	for i, row := range g {
		for j, v := range row {
			out[j][i] = v
		}
	}
	return out
}

// slideLeft is the row-local move every direction reduces to.
func slideLeft(g Grid) Grid {
	return Compress(Merge(Compress(g)))
}

// Apply returns the grid that results from sliding g in the given direction.
// Merging is always row-local and left to right; other directions are reached
// by reversing and transposing around it, in this exact order.
func Apply(g Grid, m Move) Grid {
	switch m {
	case Left:
		return slideLeft(g)
	case Right:
		return Reverse(slideLeft(Reverse(g)))
	case Up:
		return Transpose(slideLeft(Transpose(g)))
	case Down:
		return Transpose(Reverse(slideLeft(Reverse(Transpose(g)))))
	default:
		return g.Clone()
	}
}

// CanMove reports whether sliding in the given direction changes the grid.
func CanMove(g Grid, m Move) bool {
	return !Apply(g, m).Equal(g)
}
