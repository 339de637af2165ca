// Package render draws cube facelet grids as SVG images and terminal nets.
//
// Both renderers lay the faces out as an unfolded net:
//
//	    U
//	L   F   R   B
//	    D
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SeamusWaldron/cubescramble/pkg/types"
)

// ErrInvalidGrid is returned when a facelet grid is not six square faces of
// the same order.
var ErrInvalidGrid = errors.New("cubescramble: invalid facelet grid")

// Layout sets the SVG geometry in user units.
type Layout struct {
	CubieSize int `yaml:"cubie_size" json:"cubie_size"`
	Gap       int `yaml:"gap" json:"gap"`
}

// DefaultLayout returns 10 unit facelets with a 2 unit gap between faces.
func DefaultLayout() Layout {
	return Layout{CubieSize: 10, Gap: 2}
}

// Dimension is the size of a rendered image.
type Dimension struct {
	Width  int
	Height int
}

// PreferredSize returns the image size for a cube of the given order: four
// faces and five gaps across, three faces and four gaps down.
func PreferredSize(size int, l Layout) Dimension {
	face := size*l.CubieSize + l.Gap
	return Dimension{
		Width:  face*4 + l.Gap,
		Height: face*3 + l.Gap,
	}
}

// FaceOrigin returns the top-left corner of a face in the net.
func FaceOrigin(face types.Face, size int, l Layout) (x, y int) {
	g, s := l.Gap, size*l.CubieSize
	switch face {
	case types.FaceU:
		return 2*g + s, g
	case types.FaceL:
		return g, 2*g + s
	case types.FaceF:
		return 2*g + s, 2*g + s
	case types.FaceR:
		return 3*g + 2*s, 2*g + s
	case types.FaceB:
		return 4*g + 3*s, 2*g + s
	default: // D
		return 2*g + s, 3*g + 2*s
	}
}

// netOrder is the order faces are painted in.
var netOrder = []types.Face{types.FaceU, types.FaceL, types.FaceF, types.FaceR, types.FaceB, types.FaceD}

// SVG writes grid as an SVG document with one rect per facelet.
// Facelets whose value has no entry in scheme are filled black.
func SVG(w io.Writer, grid [][][]types.Face, scheme types.ColorScheme, l Layout) error {
	size, err := gridSize(grid)
	if err != nil {
		return err
	}

	dim := PreferredSize(size, l)
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="100%%" height="100%%" viewBox="0 0 %d %d">`,
		dim.Width, dim.Height)
	b.WriteString(`<g transform="matrix(1.0,0.0,0.0,1.0,0.5,0.5)">`)

	stroke := types.Black.Hex()
	for _, face := range netOrder {
		ox, oy := FaceOrigin(face, size, l)
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s"/>`,
					ox+col*l.CubieSize, oy+row*l.CubieSize, l.CubieSize, l.CubieSize,
					scheme.Fill(grid[face][row][col]).Hex(), stroke)
			}
		}
	}

	b.WriteString("</g></svg>")
	_, err = io.WriteString(w, b.String())
	return err
}

func gridSize(grid [][][]types.Face) (int, error) {
	if len(grid) != types.NumFaces {
		return 0, fmt.Errorf("%w: %d faces", ErrInvalidGrid, len(grid))
	}
	size := len(grid[0])
	if size == 0 {
		return 0, fmt.Errorf("%w: empty face", ErrInvalidGrid)
	}
	for face, rows := range grid {
		if len(rows) != size {
			return 0, fmt.Errorf("%w: face %v has %d rows, want %d", ErrInvalidGrid, types.Face(face), len(rows), size)
		}
		for _, row := range rows {
			if len(row) != size {
				return 0, fmt.Errorf("%w: face %v is not square", ErrInvalidGrid, types.Face(face))
			}
		}
	}
	return size, nil
}
