package cube

// rotateGrid turns a square grid 90 degrees in place.
// Transpose, then mirror the columns for clockwise or the rows for
// counter-clockwise.
func rotateGrid[T any](g [][]T, clockwise bool) {
	n := len(g)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g[i][j], g[j][i] = g[j][i], g[i][j]
		}
	}

	if clockwise {
		for _, row := range g {
			for j := 0; j < n/2; j++ {
				row[j], row[n-1-j] = row[n-1-j], row[j]
			}
		}
		return
	}

	for i := 0; i < n/2; i++ {
		g[i], g[n-1-i] = g[n-1-i], g[i]
	}
}
