package montepi

import "time"

// DefaultSampleInterval is the cadence at which the driver requests new
// samples: one point every 10 milliseconds.
const DefaultSampleInterval = 10 * time.Millisecond

// Driver converts frame time into sample ticks at a fixed interval. It holds
// no simulation state; fractional intervals carry over to the next frame so
// the long-run sample rate matches the interval exactly regardless of TPS.
type Driver struct {
	interval time.Duration
	carry    time.Duration
}

// NewDriver creates a Driver with the given tick interval. A non-positive
// interval falls back to DefaultSampleInterval.
func NewDriver(interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	return &Driver{interval: interval}
}

// Interval returns the configured tick interval.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Advance adds dt of elapsed time and returns how many whole intervals have
// elapsed, carrying the remainder. Negative dt is ignored.
func (d *Driver) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	d.carry += dt
	n := int(d.carry / d.interval)
	d.carry -= time.Duration(n) * d.interval
	return n
}

// Reset discards any accumulated partial interval.
func (d *Driver) Reset() {
	d.carry = 0
}
