package session

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-workbench-mcp/internal/catalog"
	"github.com/ironsheep/image-workbench-mcp/internal/raster"
	"github.com/ironsheep/image-workbench-mcp/internal/transform"
)

// Session is the edit state machine. It is safe for concurrent use.
type Session struct {
	transforms Transformer
	log        logrus.FieldLogger
	maxZoom    float64

	// compute serializes transform runs.
	compute sync.Mutex

	mu         sync.Mutex
	state      State
	path       string
	original   *raster.Image
	processed  *raster.Image
	preview    *raster.Image
	previewID  string
	zoom       float64
	generation uint64
}

// New returns an Empty session. maxZoom caps SetZoom and is itself limited
// to MaxZoom.
func New(transforms Transformer, log logrus.FieldLogger, maxZoom float64) *Session {
	if maxZoom < MinZoom || maxZoom > MaxZoom {
		maxZoom = MaxZoom
	}
	return &Session{
		transforms: transforms,
		log:        log,
		maxZoom:    maxZoom,
		zoom:       DefaultZoom,
	}
}

// Load decodes the image at path and makes it the new original. On failure
// the session is left as it was.
func (s *Session) Load(path string) error {
	im, err := raster.Load(path)
	if err != nil {
		s.log.WithFields(logrus.Fields{"path": path, "error": err}).Warn("load failed")
		return err
	}
	s.install(im, path, "load")
	return nil
}

// LoadImage installs an in-memory raster as if it had been loaded from
// path. The session keeps its own copy.
func (s *Session) LoadImage(im *raster.Image, path string) error {
	if im == nil {
		return raster.RangeErrorf("no image to load")
	}
	s.install(im.Clone(), path, "load_image")
	return nil
}

func (s *Session) install(im *raster.Image, path, event string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.state
	s.generation++
	s.original = im
	s.processed = im.Clone()
	s.preview = nil
	s.previewID = ""
	s.path = path
	s.zoom = DefaultZoom
	s.transition(event, from, Loaded, logrus.Fields{"path": path, "size": im.String()})
}

// ParameterChange recomputes the preview from the original with spec.
//
// The spec must name a transform that supports preview. If another state
// change happens while the preview is computed the result is discarded and
// ErrSuperseded is returned. A failed transform leaves the session as it
// was.
func (s *Session) ParameterChange(spec catalog.Spec) (*raster.Image, error) {
	s.mu.Lock()
	if err := s.requireImage("parameter_change"); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.generation++
	gen := s.generation
	src := s.original
	s.mu.Unlock()

	s.compute.Lock()
	if s.superseded(gen) {
		s.compute.Unlock()
		return nil, ErrSuperseded
	}
	out, err := s.transforms.PreviewApply(spec, src)
	s.compute.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.log.WithFields(logrus.Fields{"transform": spec.ID, "generation": gen}).Debug("stale preview discarded")
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	from := s.state
	s.preview = out
	s.previewID = spec.ID
	s.transition("parameter_change", from, Previewing, logrus.Fields{"transform": spec.ID})
	return out.Clone(), nil
}

// Confirm promotes the preview to the processed image.
func (s *Session) Confirm() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireImage("confirm"); err != nil {
		return err
	}
	if s.state != Previewing {
		return raster.StateErrorf("confirm: no preview to confirm")
	}
	s.generation++
	s.processed = s.preview
	s.preview = nil
	id := s.previewID
	s.previewID = ""
	s.transition("confirm", Previewing, Loaded, logrus.Fields{"transform": id})
	return nil
}

// Cancel discards the preview. It does nothing when no preview exists.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireImage("cancel"); err != nil {
		return err
	}
	s.generation++
	if s.state != Previewing {
		return nil
	}
	s.preview = nil
	s.previewID = ""
	s.transition("cancel", Previewing, Loaded, nil)
	return nil
}

// Reset discards the preview and restores the processed image to a copy of
// the original.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireImage("reset"); err != nil {
		return err
	}
	from := s.state
	s.generation++
	s.processed = s.original.Clone()
	s.preview = nil
	s.previewID = ""
	s.transition("reset", from, Loaded, nil)
	return nil
}

// Apply runs a one-shot transform on the original and stores the result as
// the processed image, discarding any preview. Transforms that support
// preview may be applied this way too. Like ParameterChange, a result
// overtaken by another state change is dropped with ErrSuperseded.
func (s *Session) Apply(spec catalog.Spec) (*raster.Image, error) {
	s.mu.Lock()
	if err := s.requireImage("apply"); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.generation++
	gen := s.generation
	src := s.original
	s.mu.Unlock()

	s.compute.Lock()
	out, err := s.transforms.Apply(spec, src)
	s.compute.Unlock()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.log.WithFields(logrus.Fields{"transform": spec.ID, "generation": gen}).Debug("stale result discarded")
		return nil, ErrSuperseded
	}
	from := s.state
	s.processed = out
	s.preview = nil
	s.previewID = ""
	s.transition("apply", from, Loaded, logrus.Fields{"transform": spec.ID})
	return out.Clone(), nil
}

// Save writes the processed image. An empty path saves over the path the
// image was loaded from. It returns the path written.
func (s *Session) Save(path string) (string, error) {
	s.mu.Lock()
	if err := s.requireImage("save"); err != nil {
		s.mu.Unlock()
		return "", err
	}
	if path == "" {
		path = s.path
	}
	im := s.processed
	s.mu.Unlock()

	if path == "" {
		return "", raster.RangeErrorf("save: no output path and the image was not loaded from a file")
	}
	if err := raster.Save(im, path); err != nil {
		s.log.WithFields(logrus.Fields{"path": path, "error": err}).Warn("save failed")
		return "", err
	}
	s.log.WithFields(logrus.Fields{"path": path, "size": im.String()}).Info("image saved")
	return path, nil
}

// SetZoom sets the view zoom factor. It does not touch any raster.
func (s *Session) SetZoom(z float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireImage("set_zoom"); err != nil {
		return err
	}
	if z < MinZoom || z > s.maxZoom {
		return raster.RangeErrorf("zoom %g outside [%g, %g]", z, MinZoom, s.maxZoom)
	}
	s.zoom = z
	return nil
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Zoom returns the view zoom factor.
func (s *Session) Zoom() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom
}

// Image returns a copy of the raster in slot. The preview slot is a state
// error when no preview exists.
func (s *Session) Image(slot Slot) (*raster.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireImage("image"); err != nil {
		return nil, err
	}
	switch slot {
	case SlotOriginal:
		return s.original.Clone(), nil
	case SlotProcessed:
		return s.processed.Clone(), nil
	case SlotPreview:
		if s.preview == nil {
			return nil, raster.StateErrorf("image: no preview")
		}
		return s.preview.Clone(), nil
	}
	return nil, raster.RangeErrorf("unknown image slot %q", slot)
}

// View returns the raster in slot scaled by the current zoom.
func (s *Session) View(slot Slot) (*raster.Image, error) {
	im, err := s.Image(slot)
	if err != nil {
		return nil, err
	}
	return transform.Scale(im, s.Zoom()), nil
}

// Status summarizes the session.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{
		State:      s.state.String(),
		Path:       s.path,
		Zoom:       s.zoom,
		PreviewID:  s.previewID,
		Generation: s.generation,
	}
	if s.processed != nil {
		st.Width = s.processed.Width
		st.Height = s.processed.Height
		st.Channels = s.processed.Channels
	}
	return st
}

// requireImage must be called with mu held.
func (s *Session) requireImage(op string) error {
	if s.state == Empty {
		return raster.StateErrorf("%s: no image loaded", op)
	}
	return nil
}

func (s *Session) superseded(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen != s.generation
}

// transition must be called with mu held.
func (s *Session) transition(event string, from, to State, fields logrus.Fields) {
	s.state = to
	entry := s.log.WithFields(logrus.Fields{
		"event":      event,
		"from":       from.String(),
		"to":         to.String(),
		"generation": s.generation,
	})
	if fields != nil {
		entry = entry.WithFields(fields)
	}
	entry.Debug("session transition")
}
