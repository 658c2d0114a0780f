package board

// HasPossibleMerge returns true if any two horizontally or vertically adjacent
// cells hold the same value.
func HasPossibleMerge(g Grid) bool {
	size := g.Size()
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			val := g[i][j]
			if j < size-1 && g[i][j+1] == val {
				return true
			}
			if i < size-1 && g[i+1][j] == val {
				return true
			}
		}
	}
	return false
}

// IsTerminal returns true when the grid is full and no adjacent pair can merge.
func IsTerminal(g Grid) bool {
	return !g.HasEmptyCell() && !HasPossibleMerge(g)
}
