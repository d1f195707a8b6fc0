// =======================
// globe/controller.go
// =======================

package globe

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// ErrClosed is reported by Err once the controller has been torn down.
var ErrClosed = errors.New("globe controller closed")

// Navigator receives fire-and-forget navigation requests.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// State is a snapshot of the interaction state. HoverIndex and ClickedIndex
// hold None when absent.
type State struct {
	HoverIndex   int
	ClickedIndex int
	Rotating     bool
}

func (s State) Hovering() bool { return s.HoverIndex != None }
func (s State) Clicked() bool { return s.ClickedIndex != None }

// DayPath returns the route for the point at idx.
func DayPath(idx int) string {
	return fmt.Sprintf("/day-%d", idx+1)
}

// Controller owns hover, click and rotation state for one globe.
type Controller struct {
	mu sync.Mutex

	clock      Clock
	nav        Navigator
	count      int
	resetDelay time.Duration
	speed      float64

	state  State
	angle  float64
	closed bool

	// Reset timer bookkeeping. gen increments on every click so that a
	// superseded timer recognises itself and does nothing.
	pending Timer
	gen     uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(ctl *Controller) {
		ctl.clock = c
	}
}

// WithResetDelay overrides the click reset delay.
func WithResetDelay(d time.Duration) Option {
	return func(ctl *Controller) {
		ctl.resetDelay = d
	}
}

// WithRotationSpeed overrides the angle per elapsed second.
func WithRotationSpeed(k float64) Option {
	return func(ctl *Controller) {
		ctl.speed = k
	}
}

// NewController creates a controller for count points. It starts rotating
// with nothing hovered or clicked.
func NewController(count int, nav Navigator, opts ...Option) *Controller {
	c := &Controller{
		clock:      NewRealClock(),
		nav:        nav,
		count:      count,
		resetDelay: ResetDelay,
		speed:      RotationSpeed,
		state:      State{HoverIndex: None, ClickedIndex: None, Rotating: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.nav == nil {
		c.nav = NavigatorFunc(func(string) {})
	}
	return c
}

// PointerEnter records idx as hovered.
func (c *Controller) PointerEnter(idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.acceptLocked("enter", idx) {
		return
	}
	c.state.HoverIndex = idx
	c.deriveLocked()
}

// PointerLeave clears the hover.
func (c *Controller) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state.HoverIndex = None
	c.deriveLocked()
}

// Click marks idx as clicked, stops rotation, requests navigation to the
// day's path and arms the reset timer. A pending timer from an earlier click
// is replaced.
func (c *Controller) Click(idx int) {
	c.mu.Lock()
	if !c.acceptLocked("click", idx) {
		c.mu.Unlock()
		return
	}
	c.state.ClickedIndex = idx
	c.deriveLocked()

	if c.pending != nil && c.pending.Stop() {
		log.Printf("globe: reset timer superseded by click on %d", idx)
	}
	c.gen++
	gen := c.gen
	c.pending = c.clock.AfterFunc(c.resetDelay, func() { c.reset(gen) })
	nav := c.nav
	c.mu.Unlock()

	path := DayPath(idx)
	log.Printf("globe: click on point %d, navigating to %s", idx, path)
	nav.Navigate(path)
}

func (c *Controller) reset(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return
	}
	c.pending = nil
	c.state.ClickedIndex = None
	c.deriveLocked()
	log.Printf("globe: click reset, rotating=%v", c.state.Rotating)
}

// Tick advances the rotation angle for a frame rendered elapsed after the
// render clock started. The angle only moves while rotating. It returns the
// angle to apply to both the sphere and its points.
func (c *Controller) Tick(elapsed time.Duration) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Rotating && !c.closed {
		c.angle = elapsed.Seconds() * c.speed
	}
	return c.angle
}

// Angle returns the current rotation angle.
func (c *Controller) Angle() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.angle
}

// State returns a snapshot of the interaction state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Count returns the number of points the controller accepts.
func (c *Controller) Count() int {
	return c.count
}

// Close cancels any pending reset. No state changes after Close returns.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	log.Printf("globe: controller closed")
}

// Err returns ErrClosed after Close, nil before.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return nil
}

func (c *Controller) acceptLocked(op string, idx int) bool {
	if c.closed {
		return false
	}
	if idx < 0 || idx >= c.count {
		log.Printf("globe: %s ignored, index %d outside [0,%d)", op, idx, c.count)
		return false
	}
	return true
}

// deriveLocked keeps Rotating true exactly when nothing is hovered or clicked.
func (c *Controller) deriveLocked() {
	c.state.Rotating = !c.state.Hovering() && !c.state.Clicked()
}
