package layer

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/richinsley/bungine/clock"
)

type probe struct {
	Base
	name      string
	attached  int
	detached  int
	attachErr error
}

func (p *probe) OnAttach() error {
	p.attached++
	return p.attachErr
}

func (p *probe) OnDetach() error {
	p.detached++
	return nil
}

func names(ls []Layer) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.(*probe).name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPushOrder(t *testing.T) {
	var s Stack
	a, b := &probe{name: "a"}, &probe{name: "b"}
	o1, o2 := &probe{name: "o1"}, &probe{name: "o2"}

	for _, step := range []func() error{
		func() error { return s.PushOverlay(o1) },
		func() error { return s.PushLayer(a) },
		func() error { return s.PushOverlay(o2) },
		func() error { return s.PushLayer(b) },
	} {
		if err := step(); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"a", "b", "o1", "o2"}
	if got := names(s.Layers()); !equal(got, want) {
		t.Errorf("Layers() = %v, want %v", got, want)
	}
	if s.Overlays() != 2 {
		t.Errorf("Overlays() = %d, want 2", s.Overlays())
	}
	for _, p := range []*probe{a, b, o1, o2} {
		if p.attached != 1 {
			t.Errorf("%s attached %d times, want 1", p.name, p.attached)
		}
	}
}

func TestIterationDirections(t *testing.T) {
	var s Stack
	l1, o1 := &probe{name: "L1"}, &probe{name: "O1"}
	_ = s.PushLayer(l1)
	_ = s.PushOverlay(o1)

	var fwd, back []string
	for l := range s.All() {
		fwd = append(fwd, l.(*probe).name)
	}
	for l := range s.Backward() {
		back = append(back, l.(*probe).name)
	}
	if !equal(fwd, []string{"L1", "O1"}) {
		t.Errorf("All() = %v, want [L1 O1]", fwd)
	}
	if !equal(back, []string{"O1", "L1"}) {
		t.Errorf("Backward() = %v, want [O1 L1]", back)
	}
}

func TestPopAbsentIsNoop(t *testing.T) {
	var s Stack
	a, b, stranger := &probe{name: "a"}, &probe{name: "b"}, &probe{name: "x"}
	_ = s.PushLayer(a)
	_ = s.PushOverlay(b)

	if err := s.PopLayer(stranger); !errors.Is(err, ErrNotFound) {
		t.Errorf("PopLayer(absent) = %v, want %v", err, ErrNotFound)
	}
	// an overlay is not in the normal region
	if err := s.PopLayer(b); !errors.Is(err, ErrNotFound) {
		t.Errorf("PopLayer(overlay) = %v, want %v", err, ErrNotFound)
	}
	if err := s.PopOverlay(a); !errors.Is(err, ErrNotFound) {
		t.Errorf("PopOverlay(layer) = %v, want %v", err, ErrNotFound)
	}
	if got := names(s.Layers()); !equal(got, []string{"a", "b"}) {
		t.Errorf("Layers() = %v, want [a b]", got)
	}

	if err := s.PopLayer(a); err != nil {
		t.Fatalf("PopLayer(a) = %v", err)
	}
	if err := s.PopLayer(a); !errors.Is(err, ErrNotFound) {
		t.Errorf("second PopLayer(a) = %v, want %v", err, ErrNotFound)
	}
	if a.detached != 1 {
		t.Errorf("a detached %d times, want 1", a.detached)
	}
	if stranger.detached != 0 || b.detached != 0 {
		t.Error("layers that were not popped were detached")
	}
}

func TestPushAttachFailure(t *testing.T) {
	var s Stack
	boom := errors.New("boom")
	bad := &probe{name: "bad", attachErr: boom}
	if err := s.PushLayer(bad); !errors.Is(err, boom) {
		t.Errorf("PushLayer() = %v, want %v", err, boom)
	}
	if err := s.PushOverlay(bad); !errors.Is(err, boom) {
		t.Errorf("PushOverlay() = %v, want %v", err, boom)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if err := s.PushLayer(nil); !errors.Is(err, ErrNilLayer) {
		t.Errorf("PushLayer(nil) = %v, want %v", err, ErrNilLayer)
	}
}

func TestBaseIsNoop(t *testing.T) {
	var l Layer = Base{}
	if err := l.OnAttach(); err != nil {
		t.Error(err)
	}
	if err := l.OnUpdate(clock.TimeStep(1)); err != nil {
		t.Error(err)
	}
	if err := l.RenderImGui(clock.TimeStep(1)); err != nil {
		t.Error(err)
	}
	if err := l.OnEvent(nil); err != nil {
		t.Error(err)
	}
	if err := l.OnDetach(); err != nil {
		t.Error(err)
	}
}

// TestRandomOperations checks the partition and relative order after
// arbitrary push/pop sequences against a simple model.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 200; round++ {
		var s Stack
		var normals, overlays []*probe
		pool := make([]*probe, 8)
		for i := range pool {
			pool[i] = &probe{name: string(rune('a' + i))}
		}

		for step := 0; step < 30; step++ {
			p := pool[rng.Intn(len(pool))]
			inStack := contains(normals, p) || contains(overlays, p)
			switch rng.Intn(4) {
			case 0:
				if inStack {
					continue
				}
				if err := s.PushLayer(p); err != nil {
					t.Fatal(err)
				}
				normals = append(normals, p)
			case 1:
				if inStack {
					continue
				}
				if err := s.PushOverlay(p); err != nil {
					t.Fatal(err)
				}
				overlays = append(overlays, p)
			case 2:
				err := s.PopLayer(p)
				if contains(normals, p) {
					if err != nil {
						t.Fatal(err)
					}
					normals = remove(normals, p)
				} else if !errors.Is(err, ErrNotFound) {
					t.Fatalf("PopLayer(%s) = %v, want ErrNotFound", p.name, err)
				}
			case 3:
				err := s.PopOverlay(p)
				if contains(overlays, p) {
					if err != nil {
						t.Fatal(err)
					}
					overlays = remove(overlays, p)
				} else if !errors.Is(err, ErrNotFound) {
					t.Fatalf("PopOverlay(%s) = %v, want ErrNotFound", p.name, err)
				}
			}

			var want []string
			for _, p := range normals {
				want = append(want, p.name)
			}
			for _, p := range overlays {
				want = append(want, p.name)
			}
			if got := names(s.Layers()); !equal(got, want) {
				t.Fatalf("round %d step %d: Layers() = %v, want %v", round, step, got, want)
			}
			if s.Overlays() != len(overlays) {
				t.Fatalf("Overlays() = %d, want %d", s.Overlays(), len(overlays))
			}
		}
	}
}

func contains(ps []*probe, p *probe) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

func remove(ps []*probe, p *probe) []*probe {
	out := ps[:0:0]
	for _, q := range ps {
		if q != p {
			out = append(out, q)
		}
	}
	return out
}
