// Package capture records the rendered frames of an application to a
// video file through ffmpeg.
package capture

import (
	"errors"
	"fmt"
	"io"

	"github.com/richinsley/bungine/clock"
	"github.com/richinsley/bungine/event"
	"github.com/richinsley/bungine/graphics"
	"github.com/richinsley/bungine/layer"
	"github.com/richinsley/bungine/logger"
)

// Sink receives raw RGBA frames, top row first, one Write per frame.
type Sink io.WriteCloser

// ErrClosed is returned when a frame is captured after OnDetach.
var ErrClosed = errors.New("capture: sink closed")

// Layer is an overlay that copies every frame to a Sink. Push it last so
// the other layers have drawn by the time it reads the frame.
type Layer struct {
	layer.Base

	api           graphics.RendererAPI
	width, height int
	sink          Sink

	dispatcher *event.Dispatcher
	windowID   uintptr
	maxFrames  int

	frames int
	closed bool
}

type Option func(*Layer)

// WithMaxFrames dispatches a WindowClose on d once n frames are written,
// which stops an application whose window never closes by itself.
func WithMaxFrames(n int, d *event.Dispatcher, windowID uintptr) Option {
	return func(l *Layer) {
		l.maxFrames = n
		l.dispatcher = d
		l.windowID = windowID
	}
}

// NewLayer captures width x height pixels from api into sink.
func NewLayer(api graphics.RendererAPI, width, height int, sink Sink, opts ...Option) (*Layer, error) {
	if api == nil || sink == nil {
		return nil, fmt.Errorf("capture: nil renderer api or sink")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("capture: invalid frame size %dx%d", width, height)
	}
	l := &Layer{api: api, width: width, height: height, sink: sink}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// RenderImGui reads the frame drawn during the update phase and writes it
// to the sink.
func (l *Layer) RenderImGui(clock.TimeStep) error {
	if l.closed {
		return ErrClosed
	}
	if l.maxFrames > 0 && l.frames >= l.maxFrames {
		return nil
	}
	pixels, err := l.api.ReadPixels(0, 0, l.width, l.height)
	if err != nil {
		return fmt.Errorf("capture frame %d: %w", l.frames, err)
	}
	flipRows(pixels, l.width*4, l.height)
	if _, err := l.sink.Write(pixels); err != nil {
		return fmt.Errorf("write frame %d: %w", l.frames, err)
	}
	l.frames++

	if l.maxFrames > 0 && l.frames == l.maxFrames && l.dispatcher != nil {
		logger.Logger().Info("capture complete", "frames", l.frames)
		return l.dispatcher.Dispatch(event.WindowClose{WindowID: l.windowID})
	}
	return nil
}

// OnDetach closes the sink, waiting for the encoder to finish.
func (l *Layer) OnDetach() error {
	if l.closed {
		return nil
	}
	l.closed = true
	logger.Logger().Debug("closing capture sink", "frames", l.frames)
	return l.sink.Close()
}

// Frames returns the number of frames written.
func (l *Layer) Frames() int { return l.frames }

// flipRows reverses the row order of a bottom-up image in place.
func flipRows(pix []byte, stride, height int) {
	tmp := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
