package turtle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameHeading(t *testing.T, want, got float64) {
	t.Helper()
	assert.InDelta(t, 0, ShortestTurn(got-want), 1e-9, "heading %v, want %v", got, want)
}

func TestDrawPolygon(t *testing.T) {
	for n := 3; n <= 12; n++ {
		r := NewRecorder(WithHeading(30))
		require.NoError(t, DrawPolygon(r, 25, n))

		path := r.Path()
		require.Len(t, path, n)
		for _, seg := range path {
			assert.InDelta(t, 25, seg.Length(), 1e-9)
		}
		sameHeading(t, 30, r.Heading())
		assert.True(t, AlmostEqualPoints(Point{}, r.Position()), "polygon with %d sides should close", n)
	}
}

func TestDrawPolygon_SingleSide(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, DrawPolygon(r, 7, 1))
	assert.Len(t, r.Path(), 1)
	sameHeading(t, 0, r.Heading())
}

func TestDrawPolygon_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		side  float64
		sides int
		want  error
	}{
		{"zero sides", 10, 0, ErrDivisionByZero},
		{"negative sides", 10, -3, ErrInvalidInput},
		{"NaN side", math.NaN(), 4, ErrInvalidInput},
		{"infinite side", math.Inf(1), 4, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecorder()
			err := DrawPolygon(r, tt.side, tt.sides)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, r.Path())
			assert.Equal(t, 0.0, r.Heading())
		})
	}
}

func TestDrawSpiralingCircle(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, DrawSpiralingCircle(r, 10, 4))

	path := r.Path()
	require.Len(t, path, 4)

	radius := 10.0
	for i, seg := range path {
		want, err := ChordLength(radius, 90)
		require.NoError(t, err)
		assert.InDelta(t, want, seg.Length(), 1e-9, "segment %d", i)
		radius *= SpiralGrowth
	}
	assert.Greater(t, path[3].Length(), path[0].Length())

	sameHeading(t, 0, r.Heading())
	assert.False(t, AlmostEqualPoints(Point{}, r.Position()), "spiral should not close")
}

func TestDrawSpiralingCircle_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		radius     float64
		iterations int
		want       error
	}{
		{"zero iterations", 10, 0, ErrDivisionByZero},
		{"negative iterations", 10, -1, ErrInvalidInput},
		{"negative radius", -10, 12, ErrInvalidInput},
		{"NaN radius", math.NaN(), 12, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecorder()
			err := DrawSpiralingCircle(r, tt.radius, tt.iterations)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, r.Path())
		})
	}
}

func TestPlotOptimalPath_FewerThanTwoPoints(t *testing.T) {
	for _, pts := range [][]Point{nil, {}, {{X: 3, Y: 4}}} {
		r := NewRecorder(WithHeading(45))
		instructions, err := PlotOptimalPath(r, pts)
		require.NoError(t, err)
		assert.Empty(t, instructions)
		assert.NotNil(t, instructions)
		assert.Empty(t, r.Path())
		assert.Equal(t, 45.0, r.Heading())
		assert.Equal(t, Point{}, r.Position())
	}
}

func TestPlotOptimalPath_SingleLeg(t *testing.T) {
	r := NewRecorder()
	instructions, err := PlotOptimalPath(r, []Point{{X: 0, Y: 0}, {X: 3, Y: 4}})
	require.NoError(t, err)

	assert.Equal(t, []string{"Turn 53.13 degrees", "Move 5.00 units"}, instructions)

	wantTurn := math.Atan2(4, 3) * 180 / math.Pi
	assert.InDelta(t, wantTurn, r.Heading(), 1e-9)

	path := r.Path()
	require.Len(t, path, 1)
	assert.InDelta(t, 5.0, path[0].Length(), 1e-9)
	assert.InDelta(t, 3, r.Position().X, 1e-9)
	assert.InDelta(t, 4, r.Position().Y, 1e-9)
}

func TestPlotOptimalPath_TurnIsRelativeToHeading(t *testing.T) {
	r := NewRecorder(WithHeading(90))
	instructions, err := PlotOptimalPath(r, []Point{{X: 0, Y: 0}, {X: 3, Y: 4}})
	require.NoError(t, err)
	assert.Equal(t, "Turn -36.87 degrees", instructions[0])
}

func TestPlotOptimalPath_TakesShortTurnAcrossWraparound(t *testing.T) {
	r := NewRecorder(WithHeading(170))
	target := Point{X: math.Cos(Radians(-170)), Y: math.Sin(Radians(-170))}

	instructions, err := PlotOptimalPath(r, []Point{{}, target})
	require.NoError(t, err)
	assert.Equal(t, "Turn 20.00 degrees", instructions[0])
	assert.Equal(t, "Move 1.00 units", instructions[1])
	assert.InDelta(t, 190, r.Heading(), 1e-9)
}

func TestPlotOptimalPath_MultipleLegs(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}
	r := NewRecorder()
	instructions, err := PlotOptimalPath(r, pts)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Turn 0.00 degrees", "Move 10.00 units",
		"Turn 90.00 degrees", "Move 10.00 units",
		"Turn 90.00 degrees", "Move 10.00 units",
		"Turn 90.00 degrees", "Move 10.00 units",
	}, instructions)
	assert.Len(t, r.Path(), 4)
	assert.True(t, AlmostEqualPoints(Point{}, r.Position()))
}

func TestPlotOptimalPath_RejectsNonFiniteWaypoint(t *testing.T) {
	r := NewRecorder()
	_, err := PlotOptimalPath(r, []Point{{}, {X: 1, Y: 1}, {X: math.NaN(), Y: 0}})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, r.Path())
	assert.Equal(t, 0.0, r.Heading())
}

func TestCreateGeometricArtwork(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, CreateGeometricArtwork(r))

	path := r.Path()
	// 3+4+5+6+7+8 sides per layer, five layers
	require.Len(t, path, 5*33)

	wantColors := []Color{"gold", "cyan", "magenta", "red", "gold"}
	for layer := 0; layer < 5; layer++ {
		first := path[layer*33]
		assert.Equal(t, wantColors[layer], first.Color, "layer %d", layer+1)
		assert.InDelta(t, 50.0/float64(layer+1), first.Length(), 1e-9)
	}
}

func TestCreateGeometricArtwork_Deterministic(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	require.NoError(t, CreateGeometricArtwork(a))
	require.NoError(t, CreateGeometricArtwork(b))
	assert.Equal(t, a.Path(), b.Path())
}

func TestDrawSpiralingCircle_RejectsOverflowUpFront(t *testing.T) {
	r := NewRecorder()
	err := DrawSpiralingCircle(r, 10, 20000)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, r.Path())

	require.NoError(t, DrawSpiralingCircle(r, 0, 20000))
	assert.Len(t, r.Path(), 20000)
}
