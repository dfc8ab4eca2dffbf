//go:build !tinygo

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gravitas-games/trid/internal/config"
	"github.com/gravitas-games/trid/internal/logging"
	"github.com/gravitas-games/trid/pkg/tri"
	"github.com/gravitas-games/trid/pkg/tri/triebiten"
)

var (
	gridColor     = color.RGBA{0x50, 0x58, 0x68, 0xff}
	triangleColor = color.RGBA{0x3c, 0x8d, 0xd9, 0xff}
	edgeColor     = color.RGBA{0xf2, 0xa3, 0x3a, 0xff}
	vertexColor   = color.RGBA{0xe8, 0x4a, 0x5f, 0xff}
)

// viewer highlights the primitives under the cursor on a disc of triangles.
type viewer struct {
	cfg       *config.Config
	log       *slog.Logger
	geom      ebiten.GeoM
	triangles []tri.Triangle

	cursor   tri.AxialF
	vertex   tri.Vertex
	edge     tri.Edge
	triangle tri.Triangle
}

func newViewer(cfg *config.Config, log *slog.Logger) *viewer {
	view := triebiten.View{
		CenterX: float64(cfg.View.Width) / 2,
		CenterY: float64(cfg.View.Height) / 2,
		Scale:   cfg.View.Scale,
	}
	return &viewer{
		cfg:       cfg,
		log:       log,
		geom:      view.GeoM(),
		triangles: tri.TrianglesInDisk(tri.VertexAt(0, 0), cfg.View.Radius),
	}
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	v.cursor = triebiten.Cursor(v.geom)
	t := tri.TriangleNear(v.cursor)
	if t != v.triangle {
		v.log.Debug("hover", "position", v.cursor, "triangle", t)
	}
	v.triangle = t
	v.vertex = tri.VertexNear(v.cursor)
	v.edge = tri.EdgeNear(v.cursor)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	for _, t := range v.triangles {
		v.strokeTriangle(screen, t, 1, gridColor)
	}
	v.strokeTriangle(screen, v.triangle, 2, triangleColor)
	v.strokeEdge(screen, v.edge, 4, edgeColor)

	x, y := triebiten.VertexToScreen(v.geom, v.vertex)
	vector.DrawFilledCircle(screen, x, y, 5, vertexColor, true)
	x, y = triebiten.EdgeToScreen(v.geom, v.edge)
	vector.DrawFilledCircle(screen, x, y, 3, edgeColor, true)
	x, y = triebiten.TriangleToScreen(v.geom, v.triangle)
	vector.DrawFilledCircle(screen, x, y, 3, triangleColor, true)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("cursor   %v\nvertex   %v\nedge     %v (axis %v)\ntriangle %v (%v)",
		v.cursor, v.vertex.Position, v.edge.Position, v.edge.Axis(), v.triangle.Position, v.triangle.Orientation()))
}

func (v *viewer) strokeTriangle(dst *ebiten.Image, t tri.Triangle, width float32, clr color.Color) {
	for e := range t.Edges() {
		v.strokeEdge(dst, e, width, clr)
	}
}

func (v *viewer) strokeEdge(dst *ebiten.Image, e tri.Edge, width float32, clr color.Color) {
	x0, y0 := triebiten.VertexToScreen(v.geom, e.VertexPos())
	x1, y1 := triebiten.VertexToScreen(v.geom, e.VertexNeg())
	vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.View.Width, v.cfg.View.Height
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/trid.yaml"
	}
	cfg, err := config.LoadOptional(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(level)
	log.Info("starting viewer", "config", configPath, "width", cfg.View.Width, "height", cfg.View.Height, "radius", cfg.View.Radius)

	ebiten.SetWindowTitle("tridview")
	ebiten.SetWindowSize(cfg.View.Width, cfg.View.Height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(newViewer(cfg, log)); err != nil {
		log.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}
