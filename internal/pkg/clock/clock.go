package clock

import "time"

// Clock stamps draft events and submissions.
type Clock interface {
	Now() time.Time
}

// RealClock returns the wall clock in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// FakeClock is a controllable clock for tests. Every call to Now advances
// it by Step, so consecutive events get distinct timestamps.
type FakeClock struct {
	now  time.Time
	Step time.Duration
}

// NewFake creates a FakeClock starting at t.
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (f *FakeClock) Now() time.Time {
	now := f.now
	f.now = f.now.Add(f.Step)
	return now
}

// Advance moves the fake clock forward by d.
func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
