package session

import (
	"errors"

	"github.com/ironsheep/image-workbench-mcp/internal/catalog"
	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// ErrSuperseded is returned by ParameterChange when a newer state change
// made the computed preview obsolete.
var ErrSuperseded = errors.New("preview superseded by a newer request")

// Zoom limits for the view.
const (
	MinZoom     = 0.1
	DefaultZoom = 1.0
	MaxZoom     = 8.0
)

// State is the lifecycle state of a session.
type State int

// Session states.
const (
	Empty State = iota
	Loaded
	Previewing
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Loaded:
		return "loaded"
	case Previewing:
		return "previewing"
	}
	return "unknown"
}

// Slot names one of the rasters held by a session.
type Slot string

// Raster slots.
const (
	SlotOriginal  Slot = "original"
	SlotProcessed Slot = "processed"
	SlotPreview   Slot = "preview"
)

// ParseSlot validates a slot name. The empty name selects SlotProcessed.
func ParseSlot(name string) (Slot, error) {
	switch Slot(name) {
	case "":
		return SlotProcessed, nil
	case SlotOriginal, SlotProcessed, SlotPreview:
		return Slot(name), nil
	}
	return "", raster.RangeErrorf("unknown image slot %q", name)
}

// Transformer runs catalog transforms. *catalog.Catalog satisfies it.
type Transformer interface {
	Apply(spec catalog.Spec, src *raster.Image) (*raster.Image, error)
	PreviewApply(spec catalog.Spec, src *raster.Image) (*raster.Image, error)
}

// Status is a point-in-time summary of a session.
type Status struct {
	State      string  `json:"state"`
	Path       string  `json:"path,omitempty"`
	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	Channels   int     `json:"channels,omitempty"`
	Zoom       float64 `json:"zoom"`
	PreviewID  string  `json:"preview_transform,omitempty"`
	Generation uint64  `json:"generation"`
}
