package headless

import (
	"testing"

	"github.com/richinsley/bungine/graphics"
)

func TestNewBeforeInit(t *testing.T) {
	w := New()
	if w.Backend() != graphics.BackendOpenGL {
		t.Errorf("Backend() = %v, want %v", w.Backend(), graphics.BackendOpenGL)
	}
	if w.Width() != 0 || w.Height() != 0 || w.Title() != "" {
		t.Errorf("uninitialized window reports %dx%d %q", w.Width(), w.Height(), w.Title())
	}
	// nothing to release yet
	w.Destroy()
	w.Destroy()
}
