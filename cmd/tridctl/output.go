package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gravitas-games/trid/pkg/tri"
)

// field is one labelled value of a command result. Text output keeps the
// order fields were added in.
type field struct {
	key   string
	value any
}

type report []field

func (r report) add(key string, value any) report { return append(r, field{key, value}) }

type latticeJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

type latticeFJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type entityJSON struct {
	Kind string `json:"kind"`
	latticeJSON
}

func (a *app) emit(w io.Writer, r report) error {
	if a.cfg.Output.Format == "json" {
		obj := make(map[string]any, len(r))
		for _, f := range r {
			obj[f.key] = a.jsonValue(f.value)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(obj)
	}
	for _, f := range r {
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.key, a.textValue(f.value)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) textValue(v any) string {
	switch v := v.(type) {
	case tri.AxialF:
		p := a.cfg.Output.Precision
		return fmt.Sprintf("(X: %.*f, Y: %.*f, Z: %.*f)", p, v.X, p, v.Y, p, v.Z())
	case []tri.Vertex:
		return joinStrings(v)
	case []tri.Edge:
		return joinStrings(v)
	case []tri.Triangle:
		return joinStrings(v)
	}
	return fmt.Sprint(v)
}

func joinStrings[T fmt.Stringer](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *app) jsonValue(v any) any {
	switch v := v.(type) {
	case tri.Axial:
		return lattice(v)
	case tri.AxialF:
		return latticeFJSON{X: a.round(v.X), Y: a.round(v.Y), Z: a.round(v.Z())}
	case tri.Vertex:
		return entityJSON{Kind: "vertex", latticeJSON: lattice(v.Position)}
	case tri.Edge:
		return entityJSON{Kind: "edge", latticeJSON: lattice(v.Position)}
	case tri.Triangle:
		return entityJSON{Kind: "triangle", latticeJSON: lattice(v.Position)}
	case []tri.Vertex:
		return mapSlice(v, a.jsonValue)
	case []tri.Edge:
		return mapSlice(v, a.jsonValue)
	case []tri.Triangle:
		return mapSlice(v, a.jsonValue)
	case fmt.Stringer:
		return v.String()
	}
	return v
}

func lattice(p tri.Axial) latticeJSON { return latticeJSON{X: p.X, Y: p.Y, Z: p.Z()} }

func mapSlice[T any](xs []T, f func(any) any) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

func (a *app) round(x float64) float64 {
	scale := math.Pow(10, float64(a.cfg.Output.Precision))
	return math.Round(x*scale) / scale
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", s, err)
		}
		out[i] = n
	}
	return out, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", s, err)
		}
		out[i] = f
	}
	return out, nil
}

func parseAxial(args []string) (tri.Axial, error) {
	n, err := parseInts(args)
	if err != nil {
		return tri.Axial{}, err
	}
	return tri.Axial{X: n[0], Y: n[1]}, nil
}

// parsePair reads "X,Y" as used by flags.
func parsePair(s string) (tri.Axial, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return tri.Axial{}, fmt.Errorf("invalid coordinate pair %q: want X,Y", s)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parseAxial(parts)
}

// vertexArg parses an aligned vertex position.
func vertexArg(args []string) (tri.Vertex, error) {
	p, err := parseAxial(args)
	if err != nil {
		return tri.Vertex{}, err
	}
	v := tri.Vertex{Position: p}
	if !v.IsAligned() {
		return tri.Vertex{}, fmt.Errorf("position %v is not a vertex", p)
	}
	return v, nil
}
