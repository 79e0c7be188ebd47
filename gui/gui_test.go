package gui

import (
	"errors"
	"math"
	"testing"

	"github.com/richinsley/bungine/clock"
)

type recordingFrontend struct {
	calls []string
	steps []clock.TimeStep
}

func (f *recordingFrontend) NewFrame(ts clock.TimeStep) error {
	f.calls = append(f.calls, "new")
	f.steps = append(f.steps, ts)
	return nil
}

func (f *recordingFrontend) Render() error {
	f.calls = append(f.calls, "render")
	return nil
}

var _ Overlay = (*Layer)(nil)

func TestFrameProtocol(t *testing.T) {
	l := NewLayer(WithLogInterval(0))

	if err := l.EndRender(); !errors.Is(err, ErrNoFrame) {
		t.Errorf("EndRender() without frame = %v, want ErrNoFrame", err)
	}
	if err := l.BeginRender(); err != nil {
		t.Fatalf("BeginRender() error = %v", err)
	}
	if err := l.BeginRender(); !errors.Is(err, ErrFrameOpen) {
		t.Errorf("nested BeginRender() = %v, want ErrFrameOpen", err)
	}
	if err := l.EndRender(); err != nil {
		t.Fatalf("EndRender() error = %v", err)
	}
	if l.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", l.Frames())
	}
}

func TestFrontendForwarding(t *testing.T) {
	fe := &recordingFrontend{}
	l := NewLayer(WithFrontend(fe), WithLogInterval(0))

	for _, ts := range []clock.TimeStep{0.5, 0.25} {
		if err := l.OnUpdate(ts); err != nil {
			t.Fatal(err)
		}
		if err := l.BeginRender(); err != nil {
			t.Fatal(err)
		}
		if err := l.EndRender(); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"new", "render", "new", "render"}
	if len(fe.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", fe.calls, want)
	}
	for i := range want {
		if fe.calls[i] != want[i] {
			t.Errorf("calls[%d] = %s, want %s", i, fe.calls[i], want[i])
		}
	}
	if fe.steps[1] != 0.25 {
		t.Errorf("second frame step = %v, want 0.25", fe.steps[1])
	}
}

func TestFPSSmoothing(t *testing.T) {
	l := NewLayer(WithLogInterval(0))
	if err := l.OnUpdate(0.5); err != nil {
		t.Fatal(err)
	}
	if l.FPS() != 2 {
		t.Errorf("FPS() after first frame = %v, want 2", l.FPS())
	}
	if err := l.OnUpdate(0.25); err != nil {
		t.Fatal(err)
	}
	// 2 + 0.1*(4-2)
	if math.Abs(l.FPS()-2.2) > 1e-9 {
		t.Errorf("FPS() = %v, want 2.2", l.FPS())
	}
	if err := l.OnUpdate(0); err != nil {
		t.Fatal(err)
	}
	if math.Abs(l.FPS()-2.2) > 1e-9 {
		t.Errorf("zero step changed FPS to %v", l.FPS())
	}
}
