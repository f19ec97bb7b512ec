package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepCadence(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = clock.now

	if !fs.ShouldStep() {
		t.Fatal("first poll should step")
	}
	clock.advance(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the interval elapsed")
	}
	clock.advance(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step once the interval elapsed")
	}
	if fs.ShouldStep() {
		t.Fatal("stepped twice for one interval")
	}
}

func TestFixedStepStallDoesNotBurst(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(10 * time.Millisecond)
	fs.now = clock.now
	fs.ShouldStep()

	clock.advance(time.Second)
	steps := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("steps after stall = %d, want 2", steps)
	}
}

func TestFixedStepZeroInterval(t *testing.T) {
	fs := NewFixedStep(-time.Second)
	if fs.Interval() != 0 {
		t.Fatalf("interval = %s, want 0", fs.Interval())
	}
	for i := 0; i < 3; i++ {
		if !fs.ShouldStep() {
			t.Fatal("zero interval should step on every poll")
		}
	}
}
