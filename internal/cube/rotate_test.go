package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seqGrid(n int) [][]int {
	g := make([][]int, n)
	v := 1
	for i := range g {
		g[i] = make([]int, n)
		for j := range g[i] {
			g[i][j] = v
			v++
		}
	}
	return g
}

func TestRotateGrid(t *testing.T) {
	tests := []struct {
		size      int
		clockwise bool
		want      [][]int
	}{
		{2, true, [][]int{{3, 1}, {4, 2}}},
		{2, false, [][]int{{2, 4}, {1, 3}}},
		{3, true, [][]int{{7, 4, 1}, {8, 5, 2}, {9, 6, 3}}},
		{3, false, [][]int{{3, 6, 9}, {2, 5, 8}, {1, 4, 7}}},
		{4, true, [][]int{
			{13, 9, 5, 1},
			{14, 10, 6, 2},
			{15, 11, 7, 3},
			{16, 12, 8, 4},
		}},
		{4, false, [][]int{
			{4, 8, 12, 16},
			{3, 7, 11, 15},
			{2, 6, 10, 14},
			{1, 5, 9, 13},
		}},
		{5, true, [][]int{
			{21, 16, 11, 6, 1},
			{22, 17, 12, 7, 2},
			{23, 18, 13, 8, 3},
			{24, 19, 14, 9, 4},
			{25, 20, 15, 10, 5},
		}},
		{5, false, [][]int{
			{5, 10, 15, 20, 25},
			{4, 9, 14, 19, 24},
			{3, 8, 13, 18, 23},
			{2, 7, 12, 17, 22},
			{1, 6, 11, 16, 21},
		}},
	}

	for _, tt := range tests {
		g := seqGrid(tt.size)
		rotateGrid(g, tt.clockwise)
		assert.Equal(t, tt.want, g, "size %d clockwise=%v", tt.size, tt.clockwise)
	}
}

func TestRotateGridRoundTrip(t *testing.T) {
	for n := 1; n <= 7; n++ {
		g := seqGrid(n)
		rotateGrid(g, true)
		rotateGrid(g, false)
		assert.Equal(t, seqGrid(n), g)

		for i := 0; i < 4; i++ {
			rotateGrid(g, true)
		}
		assert.Equal(t, seqGrid(n), g)
	}
}
