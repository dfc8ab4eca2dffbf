package tri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		p    Axial
		unit int
		want Shape
	}{
		{Axial{0, 0}, 6, ShapeVertex},
		{Axial{3, 0}, 6, ShapeEdge},
		{Axial{0, 3}, 6, ShapeEdge},
		{Axial{3, 3}, 6, ShapeEdge},
		{Axial{2, 2}, 6, ShapeTriangle},
		{Axial{4, 4}, 6, ShapeTriangle},
		{Axial{1, 1}, 6, ShapeNone},
		{Axial{-6, 12}, 6, ShapeVertex},
		{Axial{-3, -9}, 6, ShapeEdge},
		{Axial{-2, -2}, 6, ShapeTriangle},
		{Axial{6, 0}, 12, ShapeEdge},
		{Axial{8, 8}, 12, ShapeTriangle},
		{Axial{0, 0}, 4, ShapeNone},
		{Axial{0, 0}, 0, ShapeNone},
		{Axial{0, 0}, -6, ShapeNone},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.p, c.unit), "%v unit %d", c.p, c.unit)
	}
}

func TestClassifyResidueCounts(t *testing.T) {
	counts := map[Shape]int{}
	for x := 0; x < UnitLength; x++ {
		for y := 0; y < UnitLength; y++ {
			counts[Axial{x, y}.Shape()]++
		}
	}
	assert.Equal(t, 1, counts[ShapeVertex])
	assert.Equal(t, 3, counts[ShapeEdge])
	assert.Equal(t, 2, counts[ShapeTriangle])
	assert.Equal(t, 30, counts[ShapeNone])
}

func TestParseShape(t *testing.T) {
	for _, s := range []Shape{ShapeNone, ShapeVertex, ShapeEdge, ShapeTriangle} {
		assert.Equal(t, s, ParseShape(s.String()))
	}
	assert.Equal(t, ShapeNone, ParseShape("hexagon"))
}
