package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubescramble/pkg/types"
)

// Terminal renders grid as a coloured net, two cells per facelet.
// An invalid grid renders as an empty string.
func Terminal(grid [][][]types.Face, scheme types.ColorScheme) string {
	size, err := gridSize(grid)
	if err != nil {
		return ""
	}

	var styles [types.NumFaces]lipgloss.Style
	for _, f := range types.Faces {
		styles[f] = lipgloss.NewStyle().Background(lipgloss.Color(scheme.Fill(f).Hex()))
	}
	cell := func(f types.Face) string {
		if !f.Valid() {
			return "  "
		}
		return styles[f].Render("  ")
	}

	var b strings.Builder
	blank := strings.Repeat("  ", size)

	writeBand := func(faces []types.Face, indent bool) {
		for row := 0; row < size; row++ {
			if indent {
				b.WriteString(blank)
			}
			for _, face := range faces {
				for col := 0; col < size; col++ {
					b.WriteString(cell(grid[face][row][col]))
				}
			}
			b.WriteString("\n")
		}
	}

	writeBand([]types.Face{types.FaceU}, true)
	writeBand([]types.Face{types.FaceL, types.FaceF, types.FaceR, types.FaceB}, false)
	writeBand([]types.Face{types.FaceD}, true)

	return b.String()
}

// Legend renders one coloured swatch per face with its letter.
func Legend(scheme types.ColorScheme) string {
	parts := make([]string, 0, types.NumFaces)
	for _, f := range types.Faces {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(scheme.Fill(f).Hex())).Render("  ")
		parts = append(parts, swatch+" "+f.String()+" "+scheme.Fill(f).Hex())
	}
	return strings.Join(parts, "  ")
}
