// Package loop implements A–B loop practice: a controller holding the two
// loop points and a fixed-interval poller that observes playback position,
// publishes it, and rewinds the transport when the loop boundary is passed.
package loop

import "sync"

// Controller holds the A–B loop state: point A, point B, and the enabled
// flag. Looping is only effective when both points are set, the flag is on,
// and B lies strictly after A; any other combination is silently inactive.
//
// Points are transient. They are captured from the live playback position,
// cleared on every new file load, and never persisted.
type Controller struct {
	mu      sync.Mutex
	pointA  float64
	pointB  float64
	hasA    bool
	hasB    bool
	enabled bool
}

// NewController returns a controller with no points set and looping off.
func NewController() *Controller {
	return &Controller{}
}

// SetPointA captures the loop start, in seconds. The enabled flag is left
// unchanged.
func (c *Controller) SetPointA(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pointA = seconds
	c.hasA = true
}

// SetPointB captures the loop end, in seconds. The enabled flag is left
// unchanged.
func (c *Controller) SetPointB(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pointB = seconds
	c.hasB = true
}

// Clear unsets both points and forces looping off.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasA = false
	c.hasB = false
	c.enabled = false
}

// SetEnabled sets the loop flag directly. The flag has no observable effect
// until both points are set and ordered.
func (c *Controller) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

// Enabled returns the loop flag.
func (c *Controller) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// PointA returns the loop start and whether it is set.
func (c *Controller) PointA() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pointA, c.hasA
}

// PointB returns the loop end and whether it is set.
func (c *Controller) PointB() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pointB, c.hasB
}

// Active reports whether looping is currently effective.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active()
}

func (c *Controller) active() bool {
	return c.enabled && c.hasA && c.hasB && c.pointB > c.pointA
}

// Evaluate decides the corrective action for one tick. Given the observed
// position it returns the rewind target and true when the position has
// passed point B on an active loop. Both points are read under one lock so
// a concurrent Clear between check and action simply skips the tick.
func (c *Controller) Evaluate(position float64) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active() {
		return 0, false
	}
	if position > c.pointB {
		return c.pointA, true
	}
	return 0, false
}
