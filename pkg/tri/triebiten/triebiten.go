//go:build !tinygo

// Package triebiten maps tessellation coordinates to ebiten screen space.
// It only composes tri's Euclid and AtEuclid with an ebiten.GeoM.
package triebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gravitas-games/trid/pkg/tri"
)

// View places the Euclidean plane on screen.
type View struct {
	// CenterX, CenterY is the screen pixel of the origin vertex.
	CenterX, CenterY float64
	// Scale is the number of pixels per vertex step.
	Scale float64
}

// GeoM returns the plane-to-screen transform. Screen Y grows downward, so the
// plane is flipped vertically to keep counter-clockwise rotations visually
// counter-clockwise.
func (v View) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(v.Scale, -v.Scale)
	g.Translate(v.CenterX, v.CenterY)
	return g
}

// ToScreen projects a Euclidean point to screen pixels.
func ToScreen(g ebiten.GeoM, p tri.Point) (float32, float32) {
	x, y := g.Apply(p.X, p.Y)
	return float32(x), float32(y)
}

// FromScreen maps screen pixels back to a Euclidean point.
func FromScreen(g ebiten.GeoM, x, y float64) tri.Point {
	g.Invert()
	ex, ey := g.Apply(x, y)
	return tri.Point{X: ex, Y: ey}
}

// AxialAt returns the fine-lattice position under a screen pixel.
func AxialAt(g ebiten.GeoM, x, y float64) tri.AxialF {
	return tri.AtEuclid(FromScreen(g, x, y))
}

// Cursor returns the fine-lattice position under the mouse cursor.
func Cursor(g ebiten.GeoM) tri.AxialF {
	x, y := ebiten.CursorPosition()
	return AxialAt(g, float64(x), float64(y))
}

func VertexToScreen(g ebiten.GeoM, v tri.Vertex) (float32, float32)     { return ToScreen(g, v.Euclid()) }
func EdgeToScreen(g ebiten.GeoM, e tri.Edge) (float32, float32)         { return ToScreen(g, e.Euclid()) }
func TriangleToScreen(g ebiten.GeoM, t tri.Triangle) (float32, float32) { return ToScreen(g, t.Euclid()) }
