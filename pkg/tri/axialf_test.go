package tri

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundHex(t *testing.T) {
	cases := []struct {
		in   AxialF
		want Axial
	}{
		{AxialF{0, 0}, Axial{0, 0}},
		{AxialF{0.4, 0.4}, Axial{1, 0}},
		{AxialF{0.3, 0.45}, Axial{0, 1}},
		{AxialF{0.45, -0.1}, Axial{0, 0}},
		{AxialF{2.2, -0.9}, Axial{2, -1}},
		{AxialF{-3, 7}, Axial{-3, 7}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.in.RoundHex(), "%v", c.in)
	}
}

func TestRoundHexIsNearest(t *testing.T) {
	for i := -40; i <= 40; i++ {
		for j := -40; j <= 40; j++ {
			p := AxialF{float64(i) * 0.073, float64(j) * 0.061}
			got := p.RoundHex()
			gotDist := p.Euclid().Dist(got.Euclid())

			base := p.Round()
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					cand := base.Add(Axial{dx, dy})
					require.LessOrEqual(t, gotDist, p.Euclid().Dist(cand.Euclid())+1e-9, "p=%v got=%v cand=%v", p, got, cand)
				}
			}
		}
	}
}

func TestRoundingVariants(t *testing.T) {
	assert.Equal(t, Axial{6, 0}, AxialF{5.2, 0.4}.RoundHexToMultiple(6))
	assert.Equal(t, AxialF{0.4, 0.4}.RoundHex(), AxialF{0.4, 0.4}.RoundHexToMultiple(0))
	assert.Equal(t, Axial{6, -6}, AxialF{4, -4}.RoundToMultiple(6))
	assert.Equal(t, Axial{-2, 3}, AxialF{-1.5, 2.5}.Round())
	assert.Equal(t, Axial{-2, 3}, AxialF{-1.5, 2.5}.RoundToMultiple(0))
	assert.Equal(t, Axial{-1, 2}, AxialF{-1.7, 2.9}.Trunc())
}

func TestIsNear(t *testing.T) {
	assert.True(t, AxialF{0.2, 0.1}.IsNear(ShapeVertex))
	assert.True(t, AxialF{3.1, 0.2}.IsNear(ShapeEdge))
	assert.True(t, AxialF{1.8, 2.1}.IsNear(ShapeTriangle))
	assert.False(t, AxialF{1.1, 0}.IsNear(ShapeVertex))
	assert.Equal(t, ShapeNone, AxialF{1.1, 0}.Shape())
}

func TestAxialFNormalizedAndDivision(t *testing.T) {
	assert.Equal(t, AxialF{}, AxialF{}.Normalized())
	assert.InDelta(t, 1, AxialF{0.3, -2.2}.Normalized().Length(), 1e-12)

	inf := AxialF{1, -1}.DivN(0)
	assert.True(t, math.IsInf(inf.X, 1))
	assert.True(t, math.IsInf(inf.Y, -1))
	assert.True(t, math.IsNaN(AxialF{1, 1}.ModN(0).X))
	assert.InDelta(t, 1.5, AxialF{7.5, 0}.Mod(AxialF{2, 1}).X, 1e-12)
}

func TestAxialFRotate60MatchesInteger(t *testing.T) {
	for _, a := range sampleAxials() {
		for k := -6; k <= 6; k++ {
			require.Equal(t, a.Rotate60(k).Float(), a.Float().Rotate60(k))
		}
	}
	c := AxialF{1.5, 0}
	assert.Equal(t, AxialF{1.5, 1.5}, AxialF{3, 0}.RotateAround(c, 1))
}

func TestAngles(t *testing.T) {
	cases := []struct {
		in     AxialF
		angle  float64
		signed float64
		full   float64
	}{
		{AxialF{1, 0}, 0, 0, 0},
		{AxialF{1, 1}, 0.5, 0.5, 0.5},
		{AxialF{0, 1}, 1, 1, 1},
		{AxialF{-1, 1}, 2, 2, 2},
		{AxialF{-1, 0}, 3, 3, 3},
		{AxialF{0, -1}, 2, -2, 4},
		{AxialF{1, -1}, 1, -1, 5},
		{AxialF{}, 0, 0, 0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.angle, c.in.Angle(), 1e-12, "%v", c.in)
		assert.InDelta(t, c.signed, c.in.SignedAngle(), 1e-12, "%v", c.in)
		assert.InDelta(t, c.full, c.in.FullAngle(), 1e-12, "%v", c.in)
	}

	x, y := AxialF{1, 0}, AxialF{0, 1}
	assert.InDelta(t, 1, x.SignedAngleTo(y), 1e-12)
	assert.InDelta(t, -1, y.SignedAngleTo(x), 1e-12)
	assert.InDelta(t, 1, y.AngleTo(x), 1e-12)
	assert.InDelta(t, 5, y.FullAngleTo(x), 1e-12)
	assert.InDelta(t, 1, x.FullAngleTo(y), 1e-12)
}

func TestAngleIsScaleInvariant(t *testing.T) {
	for _, d := range VertexDirections {
		v := d.Vector().Float()
		assert.InDelta(t, v.FullAngle(), v.MulN(7.25).FullAngle(), 1e-12, "%v", d)
	}
}
