package core

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/richinsley/bungine/graphics/graphicstest"
)

func TestNewContextNilFactory(t *testing.T) {
	if _, err := NewContext(nil); !errors.Is(err, ErrNoFactory) {
		t.Errorf("NewContext(nil) error = %v, want ErrNoFactory", err)
	}
}

func TestContextAccessors(t *testing.T) {
	f := &graphicstest.Factory{}
	c, err := NewContext(f)
	if err != nil {
		t.Fatal(err)
	}
	if c.Factory() != f {
		t.Errorf("Factory() did not return the factory")
	}
	if c.Backend() != graphicstest.BackendFake {
		t.Errorf("Backend() = %v, want %v", c.Backend(), graphicstest.BackendFake)
	}
	if c.Dispatcher() == nil || c.Dispatcher() != c.Dispatcher() {
		t.Errorf("Dispatcher() is not stable")
	}
}

func TestClaimOnce(t *testing.T) {
	c, err := NewContext(&graphicstest.Factory{})
	if err != nil {
		t.Fatal(err)
	}

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Claim() == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	if wins.Load() != 1 {
		t.Errorf("successful claims = %d, want 1", wins.Load())
	}
	if err := c.Claim(); !errors.Is(err, ErrAlreadyCreated) {
		t.Errorf("Claim() = %v, want ErrAlreadyCreated", err)
	}

	other, _ := NewContext(&graphicstest.Factory{})
	if err := other.Claim(); err != nil {
		t.Errorf("fresh context Claim() = %v", err)
	}
}
