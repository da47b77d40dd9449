package editor

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/taginput/catalog"
	"github.com/iw2rmb/taginput/surface"
)

const (
	defaultMaxVisibleRows = 8
	defaultTermPopupWidth = 30
)

// Config configures a Controller and the Model that hosts one.
type Config struct {
	// Catalog is the suggestion source. nil behaves as an empty catalog.
	Catalog *catalog.Catalog

	// Surface is the host the controller drives. NewController falls back to
	// a surface.Headless; Model always uses its own.
	Surface surface.Surface

	// Placement positions the popup relative to the caret. Zero fields take
	// DefaultPlacement values for controllers and cell sizes for Model.
	Placement Placement

	// MaxVisibleRows caps the rendered popup rows (Model only).
	MaxVisibleRows int

	// Prompt is rendered before the first tag (Model only).
	Prompt string

	KeyMap KeyMap
	Style  Style

	// Logger receives debug logs of state transitions. nil discards.
	Logger *zap.Logger

	// OnChange fires after every tag commit or removal.
	OnChange func(ChangeEvent)

	// OnEnter fires when Enter is pressed. Enter has no built-in action.
	OnEnter func(EnterEvent)
}

func normalizeLogger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func normalizeMaxVisibleRows(rows int) int {
	if rows <= 0 {
		return defaultMaxVisibleRows
	}
	return rows
}

// normalizeTermPlacement fills zero fields with cell sizes: a popup of
// defaultTermPopupWidth cells, one row below the caret, with no left clamp
// beyond the component's own edge.
func normalizeTermPlacement(p Placement) Placement {
	if p.PopupWidth <= 0 {
		p.PopupWidth = defaultTermPopupWidth
	}
	if p.LineHeight <= 0 {
		p.LineHeight = 1
	}
	if p.MinX == 0 {
		p.MinX = NoMinX
	}
	return p
}
