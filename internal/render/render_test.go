package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubescramble/pkg/types"
)

func solvedGrid(size int) [][][]types.Face {
	grid := make([][][]types.Face, types.NumFaces)
	for _, f := range types.Faces {
		grid[f] = make([][]types.Face, size)
		for r := range grid[f] {
			grid[f][r] = make([]types.Face, size)
			for c := range grid[f][r] {
				grid[f][r][c] = f
			}
		}
	}
	return grid
}

func TestPreferredSize(t *testing.T) {
	tests := []struct {
		size   int
		layout Layout
		want   Dimension
	}{
		{2, DefaultLayout(), Dimension{90, 68}},
		{3, DefaultLayout(), Dimension{130, 98}},
		{7, DefaultLayout(), Dimension{290, 218}},
		{3, Layout{CubieSize: 20, Gap: 5}, Dimension{265, 200}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PreferredSize(tt.size, tt.layout))
	}
}

func TestFaceOrigin(t *testing.T) {
	l := DefaultLayout()
	want := map[types.Face][2]int{
		types.FaceU: {34, 2},
		types.FaceL: {2, 34},
		types.FaceF: {34, 34},
		types.FaceR: {66, 34},
		types.FaceB: {98, 34},
		types.FaceD: {34, 66},
	}
	for face, xy := range want {
		x, y := FaceOrigin(face, 3, l)
		assert.Equal(t, xy, [2]int{x, y}, "face %v", face)
	}
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, solvedGrid(3), types.DefaultColorScheme(), DefaultLayout()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.True(t, strings.HasSuffix(out, "</g></svg>"))
	assert.Contains(t, out, `viewBox="0 0 130 98"`)
	assert.Equal(t, 54, strings.Count(out, "<rect "))
	assert.Equal(t, 54, strings.Count(out, `stroke="#000000"`))
	assert.Equal(t, 9, strings.Count(out, `fill="#FFFFFF"`))
	assert.Equal(t, 9, strings.Count(out, `fill="#FF8000"`))

	// First U facelet sits at the face origin.
	assert.Contains(t, out, `<rect x="34" y="2" width="10" height="10" fill="#FFFFFF" stroke="#000000"/>`)
	// Last B facelet.
	assert.Contains(t, out, `<rect x="118" y="54" width="10" height="10" fill="#0000FF" stroke="#000000"/>`)
}

func TestSVGMissingColorIsBlack(t *testing.T) {
	scheme := types.ColorScheme{types.FaceU: types.White}
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, solvedGrid(2), scheme, DefaultLayout()))

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, `fill="#FFFFFF"`))
	assert.Equal(t, 20, strings.Count(out, `fill="#000000"`))
}

func TestSVGRejectsBadGrid(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, SVG(&buf, nil, nil, DefaultLayout()), ErrInvalidGrid)

	grid := solvedGrid(3)
	grid[2] = grid[2][:2]
	assert.ErrorIs(t, SVG(&buf, grid, nil, DefaultLayout()), ErrInvalidGrid)
	assert.Zero(t, buf.Len())
}

func TestTerminal(t *testing.T) {
	out := Terminal(solvedGrid(3), types.DefaultColorScheme())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 9)

	assert.Empty(t, Terminal(nil, types.DefaultColorScheme()))
}

func TestLegend(t *testing.T) {
	out := Legend(types.DefaultColorScheme())
	for _, f := range types.Faces {
		assert.Contains(t, out, f.String())
	}
	assert.Contains(t, out, "#FFFF00")
}
