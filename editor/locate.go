package editor

import "github.com/iw2rmb/taginput/surface"

const (
	defaultPopupWidth = 240
	defaultLineHeight = 20
	defaultMinX       = 10
)

// NoMinX disables the left clamp in Placement.MinX.
const NoMinX = -1

// Point is a popup anchor in host coordinates.
type Point struct {
	X, Y int
}

// Placement parameterizes Locate. Each zero or negative field takes its
// DefaultPlacement value, except a negative MinX, which turns the clamp off.
type Placement struct {
	// PopupWidth is the popup's fixed width; the popup is centered on the
	// caret by shifting left half of it.
	PopupWidth int
	// LineHeight moves the popup below the caret's text line.
	LineHeight int
	// MinX keeps the popup off the container's left edge. NoMinX lets it
	// reach any column.
	MinX int
}

// DefaultPlacement is sized for pixel hosts.
func DefaultPlacement() Placement {
	return Placement{
		PopupWidth: defaultPopupWidth,
		LineHeight: defaultLineHeight,
		MinX:       defaultMinX,
	}
}

func normalizePlacement(p Placement) Placement {
	if p.PopupWidth <= 0 {
		p.PopupWidth = defaultPopupWidth
	}
	if p.LineHeight <= 0 {
		p.LineHeight = defaultLineHeight
	}
	if p.MinX == 0 {
		p.MinX = defaultMinX
	}
	return p
}

// Locate returns the popup anchor for the caret rectangle r. ok reports
// whether the host produced a rectangle; without one there is no anchor and
// the popup must stay hidden.
func Locate(r surface.Rect, ok bool, p Placement) (Point, bool) {
	if !ok {
		return Point{}, false
	}
	p = normalizePlacement(p)

	x := r.Left - p.PopupWidth/2
	if p.MinX >= 0 && x < p.MinX {
		x = p.MinX
	}
	return Point{X: x, Y: r.Top + p.LineHeight}, true
}
