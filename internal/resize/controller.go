// Package resize translates pointer drags on the keyboard panel's edges
// into synchronized (height, font size) pairs. A single explicit session
// object tracks an in-progress drag, replacing the tangle of boolean
// flags and counters such widgets tend to grow; it is the one source of
// truth for "is the user resizing right now".
package resize

import (
	"io"
	"log/slog"
)

// State of the controller. At most one non-Idle state is active per panel.
type State int

const (
	Idle State = iota
	UserResizing
	ProgrammaticResizing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case UserResizing:
		return "user-resizing"
	case ProgrammaticResizing:
		return "programmatic-resizing"
	default:
		return "unknown"
	}
}

// Edge identifies which panel edge a drag grabbed.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
)

// session records the start of a drag. Moves always recompute from these
// absolute values, never from per-event deltas, so dropped pointer events
// cannot desynchronize height from font size.
type session struct {
	edge        Edge
	startY      float64
	startHeight int
	startFont   int
	applied     int
}

// Config wires a Controller. Apply runs on every accepted update and
// re-renders the keys; Notify tells outer layout listeners, throttled
// during a drag to every NotifyEvery-th applied update.
type Config struct {
	Metrics     Metrics
	InitialFont int
	HitMargin   float64
	NotifyEvery int
	// MaxHeight caps the panel below the full mapping range, e.g. to a
	// fraction of the screen. Zero means the metric's own maximum.
	MaxHeight int
	Apply     func(height, font int)
	Notify    func(height int)
	Logger    *slog.Logger
}

// Controller owns the panel's height/font pair.
type Controller struct {
	metrics     Metrics
	hitMargin   float64
	notifyEvery int
	maxHeight   int
	apply       func(height, font int)
	notify      func(height int)
	logger      *slog.Logger

	state      State
	session    *session
	height     int
	font       int
	stickyFont int
}

func NewController(cfg Config) *Controller {
	metrics := cfg.Metrics
	if metrics.BaseHeight == 0 {
		metrics = DefaultMetrics()
	}
	font := metrics.ClampFont(cfg.InitialFont)
	if cfg.InitialFont == 0 {
		font = metrics.BaseFont
	}
	hitMargin := cfg.HitMargin
	if hitMargin <= 0 {
		hitMargin = 10
	}
	notifyEvery := cfg.NotifyEvery
	if notifyEvery <= 0 {
		notifyEvery = 2
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		metrics:     metrics,
		hitMargin:   hitMargin,
		notifyEvery: notifyEvery,
		maxHeight:   cfg.MaxHeight,
		apply:       cfg.Apply,
		notify:      cfg.Notify,
		logger:      logger,
		height:      metrics.HeightForFont(font),
		font:        font,
	}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Height() int { return c.height }

func (c *Controller) Font() int { return c.font }

// StickyFont returns the user-chosen font size, or 0 when the user has
// never resized the panel by hand.
func (c *Controller) StickyFont() int { return c.stickyFont }

// SetStickyFont restores a persisted preference, e.g. at startup.
func (c *Controller) SetStickyFont(font int) {
	if font <= 0 {
		c.stickyFont = 0
		return
	}
	c.stickyFont = c.metrics.ClampFont(font)
}

// PointerDown starts a drag session when y falls within the hit margin of
// either edge. Returns true when a session opened. A pointer-down while a
// session is somehow still active is a defect; the controller resets to
// Idle first and logs, never surfaces it.
func (c *Controller) PointerDown(y float64) bool {
	if c.state != Idle {
		c.logger.Warn("pointer down in non-idle state, forcing reset", "state", c.state.String())
		c.reset()
	}

	var edge Edge
	switch {
	case y >= 0 && y < c.hitMargin:
		edge = EdgeTop
	case y > float64(c.height)-c.hitMargin && y <= float64(c.height):
		edge = EdgeBottom
	default:
		return false
	}

	c.session = &session{
		edge:        edge,
		startY:      y,
		startHeight: c.height,
		startFont:   c.font,
	}
	c.state = UserResizing
	return true
}

// PointerMove recomputes the panel from the absolute pointer position.
// The candidate height maps to a clamped font, and the applied height is
// re-derived from that font, so the panel always sits at a height some
// valid font size maps to exactly.
func (c *Controller) PointerMove(y float64) {
	if c.state != UserResizing || c.session == nil {
		return
	}
	s := c.session

	delta := y - s.startY
	if s.edge == EdgeTop {
		// Dragging the top edge up grows the panel.
		delta = -delta
	}

	candidate := s.startHeight + int(delta)
	if min := c.metrics.MinHeight(); candidate < min {
		candidate = min
	}
	if max := c.limitHeight(); candidate > max {
		candidate = max
	}

	font := c.metrics.FontForHeight(candidate)
	actual := c.metrics.HeightForFont(font)
	if actual == c.height && font == c.font {
		return
	}

	c.height = actual
	c.font = font
	c.applyFaces()

	s.applied++
	if s.applied%c.notifyEvery == 0 {
		c.notifyHeight()
	}
}

// PointerUp finalizes the drag: the final notification always fires, and
// the resulting font becomes the sticky user preference that automatic
// layout passes must not overwrite.
func (c *Controller) PointerUp() {
	if c.state != UserResizing || c.session == nil {
		if c.state != Idle {
			c.logger.Warn("pointer up without active drag, forcing reset", "state", c.state.String())
		}
		c.reset()
		return
	}
	c.stickyFont = c.font
	c.reset()
	c.notifyHeight()
}

// Cancel abandons a drag: release outside the panel or focus loss. The
// height applied so far stands; the controller still reaches Idle, and
// the drag counts as a deliberate resize for stickiness.
func (c *Controller) Cancel() {
	if c.state == UserResizing {
		c.PointerUp()
		return
	}
	c.reset()
}

// ResizeTo is a programmatic resize: a container layout change rather
// than a drag. The mapping applies as usual and the notification fires
// unthrottled. It does not touch the sticky preference.
func (c *Controller) ResizeTo(targetHeight int) {
	if c.state != Idle {
		c.logger.Warn("programmatic resize during active session, ignored", "state", c.state.String())
		return
	}
	c.state = ProgrammaticResizing

	font := c.metrics.FontForHeight(c.clampHeight(targetHeight))
	c.height = c.metrics.HeightForFont(font)
	c.font = font
	c.applyFaces()
	c.notifyHeight()

	c.state = Idle
	c.session = nil
}

// AutoRecalc handles a generic resize event not initiated by the user or
// by an explicit request. When the user has picked a font size by hand,
// incidental container resizes must not undo it, so the recalculation is
// suppressed; otherwise it behaves like ResizeTo.
func (c *Controller) AutoRecalc(observedHeight int) {
	if c.state != Idle {
		return
	}
	if c.stickyFont != 0 {
		c.logger.Debug("automatic font recalculation suppressed by user preference",
			"sticky_font", c.stickyFont, "observed_height", observedHeight)
		return
	}
	c.ResizeTo(observedHeight)
}

func (c *Controller) limitHeight() int {
	max := c.metrics.MaxHeight()
	if c.maxHeight > 0 && c.maxHeight < max {
		return c.maxHeight
	}
	return max
}

func (c *Controller) clampHeight(h int) int {
	if min := c.metrics.MinHeight(); h < min {
		return min
	}
	if max := c.limitHeight(); h > max {
		return max
	}
	return h
}

func (c *Controller) reset() {
	c.state = Idle
	c.session = nil
}

func (c *Controller) applyFaces() {
	if c.apply != nil {
		c.apply(c.height, c.font)
	}
}

func (c *Controller) notifyHeight() {
	if c.notify != nil {
		c.notify(c.height)
	}
}
