package event

import (
	"errors"
	"reflect"
	"testing"
)

type ping struct{}

func (ping) Kind() Kind { return KindUser }

func TestDispatchOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	record := func(name string) Listener {
		return func(Event) error {
			got = append(got, name)
			return nil
		}
	}

	d.RegisterListener(KindWindowClose, record("close-1"))
	d.RegisterGeneralListener(record("general-1"))
	d.RegisterListener(KindWindowClose, record("close-2"))
	d.RegisterGeneralListener(record("general-2"))

	if err := d.Dispatch(WindowClose{WindowID: 7}); err != nil {
		t.Fatalf("Dispatch() = %v, want nil", err)
	}
	want := []string{"general-1", "general-2", "close-1", "close-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("listener order = %v, want %v", got, want)
	}
}

func TestDispatchKindFiltering(t *testing.T) {
	d := NewDispatcher()
	var general, closes, keys int
	d.RegisterGeneralListener(func(Event) error { general++; return nil })
	d.RegisterListener(KindWindowClose, func(Event) error { closes++; return nil })
	d.RegisterListener(KindKey, func(Event) error { keys++; return nil })

	events := []Event{
		WindowClose{},
		Key{Key: 65, Action: 1},
		MouseMove{X: 1, Y: 2},
		ping{},
	}
	for _, e := range events {
		if err := d.Dispatch(e); err != nil {
			t.Fatalf("Dispatch(%v) = %v", e, err)
		}
	}

	if general != len(events) {
		t.Errorf("general listener calls = %d, want %d", general, len(events))
	}
	if closes != 1 {
		t.Errorf("window-close listener calls = %d, want 1", closes)
	}
	if keys != 1 {
		t.Errorf("key listener calls = %d, want 1", keys)
	}
}

func TestDispatchPayload(t *testing.T) {
	d := NewDispatcher()
	var id uintptr
	d.RegisterListener(KindWindowClose, func(e Event) error {
		id = e.(WindowClose).WindowID
		return nil
	})
	if err := d.Dispatch(WindowClose{WindowID: 42}); err != nil {
		t.Fatal(err)
	}
	if id != 42 {
		t.Errorf("WindowID = %d, want 42", id)
	}
}

func TestDispatchErrorAborts(t *testing.T) {
	d := NewDispatcher()
	boom := errors.New("boom")
	var after bool
	d.RegisterGeneralListener(func(Event) error { return boom })
	d.RegisterListener(KindWindowClose, func(Event) error { after = true; return nil })

	err := d.Dispatch(WindowClose{})
	if !errors.Is(err, boom) {
		t.Fatalf("Dispatch() = %v, want wrapped %v", err, boom)
	}
	if after {
		t.Error("listener after the failing one was invoked")
	}
}

func TestDispatchNil(t *testing.T) {
	d := NewDispatcher()
	if err := d.Dispatch(nil); !errors.Is(err, ErrNilEvent) {
		t.Errorf("Dispatch(nil) = %v, want %v", err, ErrNilEvent)
	}
}

func TestRegisterDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var late int
	d.RegisterGeneralListener(func(Event) error {
		d.RegisterGeneralListener(func(Event) error { late++; return nil })
		return nil
	})

	if err := d.Dispatch(ping{}); err != nil {
		t.Fatal(err)
	}
	if late != 0 {
		t.Errorf("listener registered mid-dispatch ran %d times in the same dispatch, want 0", late)
	}
	if err := d.Dispatch(ping{}); err != nil {
		t.Fatal(err)
	}
	if late != 1 {
		t.Errorf("late listener calls = %d, want 1", late)
	}
}

func TestListenerCount(t *testing.T) {
	d := NewDispatcher()
	d.RegisterGeneralListener(func(Event) error { return nil })
	d.RegisterListener(KindKey, func(Event) error { return nil })
	d.RegisterListener(KindKey, nil)

	if got := d.ListenerCount(KindKey); got != 2 {
		t.Errorf("ListenerCount(KindKey) = %d, want 2", got)
	}
	if got := d.ListenerCount(KindScroll); got != 1 {
		t.Errorf("ListenerCount(KindScroll) = %d, want 1", got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindWindowClose, "window-close"},
		{KindKey, "key"},
		{KindUser, "user(0)"},
		{KindUser + 3, "user(3)"},
		{Kind(99), "kind(99)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.k), got, tt.want)
		}
	}
}
