package layer

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/richinsley/bungine/logger"
)

var (
	// ErrNotFound is returned when popping a layer that is not in the
	// region being popped from.
	ErrNotFound = errors.New("layer: not found")
	// ErrNilLayer is returned when pushing a nil layer.
	ErrNilLayer = errors.New("layer: nil layer")
)

// Stack is an ordered sequence of layers split into a normal prefix and
// an overlay suffix. Normal layers always precede overlays; within each
// region the push order is kept.
type Stack struct {
	layers      []Layer
	insertIndex int // end of the normal region
}

// PushLayer attaches l and inserts it at the end of the normal region.
// If OnAttach fails the layer is not inserted.
func (s *Stack) PushLayer(l Layer) error {
	if l == nil {
		return ErrNilLayer
	}
	if err := l.OnAttach(); err != nil {
		return fmt.Errorf("attach %T: %w", l, err)
	}
	s.layers = slices.Insert(s.layers, s.insertIndex, l)
	s.insertIndex++
	logger.Logger().Debug("layer pushed", "layer", fmt.Sprintf("%T", l), "index", s.insertIndex-1)
	return nil
}

// PushOverlay attaches l and appends it to the end of the overlay region.
func (s *Stack) PushOverlay(l Layer) error {
	if l == nil {
		return ErrNilLayer
	}
	if err := l.OnAttach(); err != nil {
		return fmt.Errorf("attach overlay %T: %w", l, err)
	}
	s.layers = append(s.layers, l)
	logger.Logger().Debug("overlay pushed", "layer", fmt.Sprintf("%T", l), "index", len(s.layers)-1)
	return nil
}

// PopLayer removes l from the normal region and detaches it. It returns
// ErrNotFound, leaving the stack untouched, if l is not a normal layer.
func (s *Stack) PopLayer(l Layer) error {
	i := slices.Index(s.layers[:s.insertIndex], l)
	if i < 0 {
		return ErrNotFound
	}
	s.layers = slices.Delete(s.layers, i, i+1)
	s.insertIndex--
	logger.Logger().Debug("layer popped", "layer", fmt.Sprintf("%T", l))
	if err := l.OnDetach(); err != nil {
		return fmt.Errorf("detach %T: %w", l, err)
	}
	return nil
}

// PopOverlay removes l from the overlay region and detaches it.
func (s *Stack) PopOverlay(l Layer) error {
	i := slices.Index(s.layers[s.insertIndex:], l)
	if i < 0 {
		return ErrNotFound
	}
	i += s.insertIndex
	s.layers = slices.Delete(s.layers, i, i+1)
	logger.Logger().Debug("overlay popped", "layer", fmt.Sprintf("%T", l))
	if err := l.OnDetach(); err != nil {
		return fmt.Errorf("detach overlay %T: %w", l, err)
	}
	return nil
}

// Layers returns a copy of the stack, normal layers first.
func (s *Stack) Layers() []Layer {
	return slices.Clone(s.layers)
}

// All iterates the stack front to back: normal layers, then overlays.
func (s *Stack) All() iter.Seq[Layer] {
	layers := s.Layers()
	return func(yield func(Layer) bool) {
		for _, l := range layers {
			if !yield(l) {
				return
			}
		}
	}
}

// Backward iterates the stack back to front: the most recently pushed
// overlay first, the first normal layer last.
func (s *Stack) Backward() iter.Seq[Layer] {
	layers := s.Layers()
	return func(yield func(Layer) bool) {
		for i := len(layers) - 1; i >= 0; i-- {
			if !yield(layers[i]) {
				return
			}
		}
	}
}

// Len returns the total number of layers.
func (s *Stack) Len() int { return len(s.layers) }

// Overlays returns the number of layers in the overlay region.
func (s *Stack) Overlays() int { return len(s.layers) - s.insertIndex }
