package timerview

import (
	"image/color"

	"focustimer/internal/core/clock"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// clockView draws a clock.Face with a circle and a polyline of line segments.
type clockView struct {
	root  *fyne.Container
	frame *canvas.Rectangle
	ring  *canvas.Circle
	arc   []*canvas.Line
	face  clock.Face
}

func newClockView() *clockView {
	frame := canvas.NewRectangle(color.Transparent)
	frame.SetMinSize(fyne.NewSize(clock.Size, clock.Size))
	frame.Resize(fyne.NewSize(clock.Size, clock.Size))

	ring := canvas.NewCircle(color.Transparent)

	view := &clockView{
		root:  container.NewWithoutLayout(frame, ring),
		frame: frame,
		ring:  ring,
	}
	view.Update(clock.Render(0))
	return view
}

// Update redraws the ring and the elapsed arc.
func (view *clockView) Update(face clock.Face) {
	view.face = face

	ring := face.Ring
	view.ring.StrokeColor = ring.Color
	view.ring.StrokeWidth = float32(ring.StrokeWidth)
	view.ring.Move(fyne.NewPos(float32(ring.Center.X-ring.Radius), float32(ring.Center.Y-ring.Radius)))
	view.ring.Resize(fyne.NewSize(float32(2*ring.Radius), float32(2*ring.Radius)))

	points := face.Arc.Points(face.Arc.Segments())
	view.arc = view.arc[:0]
	for i := 1; i < len(points); i++ {
		line := canvas.NewLine(face.Arc.Color)
		line.StrokeWidth = float32(face.Arc.StrokeWidth)
		line.Position1 = fyne.NewPos(float32(points[i-1].X), float32(points[i-1].Y))
		line.Position2 = fyne.NewPos(float32(points[i].X), float32(points[i].Y))
		view.arc = append(view.arc, line)
	}

	objects := []fyne.CanvasObject{view.frame, view.ring}
	for _, line := range view.arc {
		objects = append(objects, line)
	}
	view.root.Objects = objects
	view.root.Refresh()
}

// Object returns the drawable container.
func (view *clockView) Object() fyne.CanvasObject {
	return view.root
}
