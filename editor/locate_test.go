package editor

import (
	"testing"

	"github.com/iw2rmb/taginput/surface"
)

func TestLocate_CentersBelowCaret(t *testing.T) {
	got, ok := Locate(surface.Rect{Left: 400, Top: 30}, true, Placement{})
	if !ok {
		t.Fatalf("expected an anchor")
	}
	if want := (Point{X: 400 - defaultPopupWidth/2, Y: 30 + defaultLineHeight}); got != want {
		t.Fatalf("anchor: got %+v, want %+v", got, want)
	}
}

func TestLocate_ClampsToMinX(t *testing.T) {
	cases := []struct {
		left int
		want int
	}{
		{left: 0, want: 10},
		{left: 50, want: 10},
		{left: 129, want: 10},
		{left: 130, want: 10},
		{left: 131, want: 11},
	}
	for _, tc := range cases {
		got, ok := Locate(surface.Rect{Left: tc.left}, true, DefaultPlacement())
		if !ok {
			t.Fatalf("left=%d: expected an anchor", tc.left)
		}
		if got.X != tc.want {
			t.Fatalf("left=%d: x got %d, want %d", tc.left, got.X, tc.want)
		}
	}
}

func TestLocate_UnknownGeometry(t *testing.T) {
	got, ok := Locate(surface.Rect{Left: 300, Top: 10}, false, DefaultPlacement())
	if ok {
		t.Fatalf("missing rect must not produce an anchor")
	}
	if got != (Point{}) {
		t.Fatalf("anchor for missing rect: got %+v, want zero", got)
	}
}

func TestLocate_PartialPlacement(t *testing.T) {
	cases := []struct {
		name string
		p    Placement
		want Point
	}{
		{name: "width and line height keep min x", p: Placement{PopupWidth: 240, LineHeight: 20}, want: Point{X: 10, Y: 20}},
		{name: "min x only keeps line height", p: Placement{MinX: 10}, want: Point{X: 10, Y: 20}},
		{name: "negative width", p: Placement{PopupWidth: -4, LineHeight: 3, MinX: 2}, want: Point{X: 2, Y: 3}},
		{name: "no clamp", p: Placement{PopupWidth: 240, LineHeight: 20, MinX: NoMinX}, want: Point{X: -70, Y: 20}},
	}
	for _, tc := range cases {
		got, ok := Locate(surface.Rect{Left: 50}, true, tc.p)
		if !ok {
			t.Fatalf("%s: expected an anchor", tc.name)
		}
		if got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestLocate_TerminalPlacement(t *testing.T) {
	p := normalizeTermPlacement(Placement{PopupWidth: 10})
	if want := (Placement{PopupWidth: 10, LineHeight: 1, MinX: NoMinX}); p != want {
		t.Fatalf("terminal placement: got %+v, want %+v", p, want)
	}

	got, _ := Locate(surface.Rect{Left: 3, Top: 0}, true, p)
	if want := (Point{X: -2, Y: 1}); got != want {
		t.Fatalf("terminal anchor: got %+v, want %+v", got, want)
	}
	got, _ = Locate(surface.Rect{Left: 12, Top: 2}, true, p)
	if want := (Point{X: 7, Y: 3}); got != want {
		t.Fatalf("terminal anchor: got %+v, want %+v", got, want)
	}

	p = normalizeTermPlacement(Placement{MinX: 4})
	got, _ = Locate(surface.Rect{Left: 3}, true, p)
	if want := (Point{X: 4, Y: 1}); got != want {
		t.Fatalf("terminal anchor with min x: got %+v, want %+v", got, want)
	}
}
