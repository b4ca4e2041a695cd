package core

import "time"

// Pacer gates simulation steps so that at least Interval elapses between
// successive ticks, independent of the host frame rate.
type Pacer struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewPacer constructs a Pacer with the given interval. The clock starts at
// construction time, so the first tick is due one interval later.
func NewPacer(interval time.Duration) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetInterval(interval)
	p.last = p.now()
	return p
}

// SetClock replaces the time source and restarts the interval from its
// current reading.
func (p *Pacer) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	p.now = now
	p.last = now()
}

// Interval returns the current minimum duration between ticks.
func (p *Pacer) Interval() time.Duration { return p.interval }

// SetInterval changes the interval. Non-positive values fall back to one
// millisecond.
func (p *Pacer) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Millisecond
	}
	p.interval = d
}

// Due reports whether a full interval has elapsed since the last Mark.
func (p *Pacer) Due() bool {
	return p.now().Sub(p.last) >= p.interval
}

// Mark records the current time as the moment of the latest tick.
func (p *Pacer) Mark() {
	p.last = p.now()
}
