package clock

import (
	"testing"
	"time"
)

func TestTimeStepUnits(t *testing.T) {
	ts := TimeStep(0.016)
	if got := ts.Seconds(); got != 0.016 {
		t.Errorf("Seconds() = %v, want 0.016", got)
	}
	if got := ts.Milliseconds(); got < 15.999 || got > 16.001 {
		t.Errorf("Milliseconds() = %v, want 16", got)
	}
}

func TestSystemMonotonic(t *testing.T) {
	c := NewSystem()
	a := c.Time()
	time.Sleep(time.Millisecond)
	b := c.Time()
	if b <= a {
		t.Errorf("Time() went from %v to %v, want increasing", a, b)
	}
}

func TestSequence(t *testing.T) {
	c := NewSequence(0, 0.016, 0.032)
	want := []float64{0, 0.016, 0.032, 0.032}
	for i, w := range want {
		if got := c.Time(); got != w {
			t.Errorf("reading %d = %v, want %v", i, got, w)
		}
	}
	if got := NewSequence().Time(); got != 0 {
		t.Errorf("empty Sequence Time() = %v, want 0", got)
	}
}

func TestFixedStep(t *testing.T) {
	c := NewFixedStep(0.5)
	for i, want := range []float64{0, 0.5, 1, 1.5} {
		if got := c.Time(); got != want {
			t.Errorf("reading %d = %v, want %v", i, got, want)
		}
	}
}
