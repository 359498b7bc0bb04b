package clock

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestRender_RingIsAlwaysDrawn(t *testing.T) {
	for _, progress := range []float64{0, 0.3, 1} {
		face := Render(progress)

		assert.Equal(t, Point{X: 75, Y: 75}, face.Ring.Center)
		assert.Equal(t, 70.0, face.Ring.Radius)
		assert.Equal(t, StrokeWidth, face.Ring.StrokeWidth)
		assert.Equal(t, RingColor, face.Ring.Color)
	}
}

func TestRender_ArcSweep(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     float64
	}{
		{name: "empty", progress: 0, want: 0},
		{name: "quarter", progress: 0.25, want: -90},
		{name: "half", progress: 0.5, want: -180},
		{name: "full", progress: 1, want: -360},
		{name: "below range", progress: -0.5, want: 0},
		{name: "above range", progress: 1.7, want: -360},
		{name: "not a number", progress: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc := Render(tt.progress).Arc

			assert.Equal(t, StartDegrees, arc.StartDegrees)
			assert.InDelta(t, tt.want, arc.SweepDegrees, epsilon)
		})
	}
}

func TestRender_IsPure(t *testing.T) {
	assert.Equal(t, Render(0.42), Render(0.42))
}

func TestArcPoints_StartAtTwelveAndSweepClockwise(t *testing.T) {
	arc := Render(0.25).Arc

	points := arc.Points(arc.Segments())

	require.Len(t, points, arc.Segments()+1)
	assert.InDelta(t, 75, points[0].X, epsilon)
	assert.InDelta(t, 5, points[0].Y, epsilon)
	assert.Greater(t, points[1].X, points[0].X)
	last := points[len(points)-1]
	assert.InDelta(t, 145, last.X, epsilon)
	assert.InDelta(t, 75, last.Y, epsilon)
}

func TestArcPoints_HalfEndsAtSixOClock(t *testing.T) {
	points := Render(0.5).Arc.Points(2)

	require.Len(t, points, 3)
	assert.InDelta(t, 145, points[1].X, epsilon)
	assert.InDelta(t, 75, points[1].Y, epsilon)
	assert.InDelta(t, 75, points[2].X, epsilon)
	assert.InDelta(t, 145, points[2].Y, epsilon)
}

func TestArcPoints_EmptyArc(t *testing.T) {
	assert.Empty(t, Render(0).Arc.Points(10))
	assert.Equal(t, 1, Render(0).Arc.Segments())
	assert.Equal(t, 60, Render(1).Arc.Segments())
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{seconds: 0, want: "00:00"},
		{seconds: 59, want: "00:59"},
		{seconds: 60, want: "01:00"},
		{seconds: 1500, want: "25:00"},
		{seconds: 5999, want: "99:59"},
		{seconds: 6000, want: "100:00"},
		{seconds: -4, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.seconds))
		})
	}
}
