// Package timer provides an optional millisecond timer. A stopped timer is a
// distinct state, not a magic value, and zero is a valid "just started" time.
package timer

// Timer accumulates elapsed milliseconds while running.
type Timer struct {
	ms      float32
	running bool
}

// Stopped returns a timer that is not running.
func Stopped() Timer { return Timer{} }

// Started returns a running timer at zero.
func Started() Timer { return Timer{running: true} }

// Start (re)starts the timer at zero.
func (t *Timer) Start() {
	t.ms = 0
	t.running = true
}

// Stop deactivates the timer.
func (t *Timer) Stop() {
	t.ms = 0
	t.running = false
}

// Running reports whether the timer is active.
func (t Timer) Running() bool { return t.running }

// Elapsed returns the accumulated time. A stopped timer reports zero.
func (t Timer) Elapsed() float32 { return t.ms }

// Advance adds dt milliseconds when the timer is running.
func (t *Timer) Advance(dt float32) {
	if t.running {
		t.ms += dt
	}
}

// Within reports whether the timer is running and its time is in [from, to].
func (t Timer) Within(from, to float32) bool {
	return t.running && t.ms >= from && t.ms <= to
}

// Reached reports whether the timer is running and has reached limit.
func (t Timer) Reached(limit float32) bool {
	return t.running && t.ms >= limit
}

// Cooldown is a timer that fills up to a limit and reports ready once full.
type Cooldown struct {
	ms    float32
	Limit float32
}

// NewCooldown returns a cooldown that starts out ready.
func NewCooldown(limit float32) Cooldown {
	return Cooldown{ms: limit, Limit: limit}
}

// Advance adds dt while the cooldown is below its limit.
func (c *Cooldown) Advance(dt float32) {
	if c.ms < c.Limit {
		c.ms += dt
	}
}

// Ready reports whether the cooldown has reached its limit.
func (c Cooldown) Ready() bool { return c.ms >= c.Limit }

// Reset empties the cooldown.
func (c *Cooldown) Reset() { c.ms = 0 }

// Fill makes the cooldown ready.
func (c *Cooldown) Fill() { c.ms = c.Limit }

// Set forces the accumulated time.
func (c *Cooldown) Set(ms float32) { c.ms = ms }

// Elapsed returns the accumulated time.
func (c Cooldown) Elapsed() float32 { return c.ms }
