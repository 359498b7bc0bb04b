// Package clock maps session progress to the geometry of the circular indicator.
package clock

import (
	"image/color"
	"math"
)

const (
	// Size is the side of the square the clock is drawn in.
	Size = 150.0
	// Inset is the gap between the square edge and the ring.
	Inset = 5.0
	// StrokeWidth is the line width of both the ring and the arc.
	StrokeWidth = 8.0
	// StartDegrees is 12 o'clock with angles growing counter-clockwise.
	StartDegrees = 90.0
)

var (
	RingColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	ArcColor  = color.NRGBA{R: 50, G: 205, B: 50, A: 255}
)

// Point is a position in screen space, y growing downward.
type Point struct {
	X float64
	Y float64
}

// Ring is the full background circle.
type Ring struct {
	Center      Point
	Radius      float64
	StrokeWidth float64
	Color       color.NRGBA
}

// Arc is the elapsed-time arc. SweepDegrees is negative for a clockwise sweep.
type Arc struct {
	Center       Point
	Radius       float64
	StartDegrees float64
	SweepDegrees float64
	StrokeWidth  float64
	Color        color.NRGBA
}

// Face is everything needed to draw the clock for one progress value.
type Face struct {
	Ring Ring
	Arc  Arc
}

// Render returns the clock geometry for progress in [0,1].
func Render(progress float64) Face {
	progress = clamp(progress)
	center := Point{X: Size / 2, Y: Size / 2}
	radius := (Size - 2*Inset) / 2

	return Face{
		Ring: Ring{
			Center:      center,
			Radius:      radius,
			StrokeWidth: StrokeWidth,
			Color:       RingColor,
		},
		Arc: Arc{
			Center:       center,
			Radius:       radius,
			StartDegrees: StartDegrees,
			SweepDegrees: -360 * progress,
			StrokeWidth:  StrokeWidth,
			Color:        ArcColor,
		},
	}
}

// Points samples the arc into segments+1 screen points from start to end.
// An empty arc has no points.
func (arc Arc) Points(segments int) []Point {
	if arc.SweepDegrees == 0 {
		return nil
	}
	if segments < 1 {
		segments = 1
	}

	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		degrees := arc.StartDegrees + arc.SweepDegrees*float64(i)/float64(segments)
		radians := degrees * math.Pi / 180
		points = append(points, Point{
			X: arc.Center.X + arc.Radius*math.Cos(radians),
			Y: arc.Center.Y - arc.Radius*math.Sin(radians),
		})
	}
	return points
}

// Segments picks a sample count proportional to the sweep, one per 6 degrees.
func (arc Arc) Segments() int {
	segments := int(math.Ceil(math.Abs(arc.SweepDegrees) / 6))
	if segments < 1 {
		return 1
	}
	return segments
}

func clamp(progress float64) float64 {
	if math.IsNaN(progress) || progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
