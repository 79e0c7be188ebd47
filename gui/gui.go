// Package gui defines the overlay contract the application brackets
// every frame's GUI pass with, and the default overlay layer.
package gui

import (
	"errors"
	"time"

	"github.com/richinsley/bungine/clock"
	"github.com/richinsley/bungine/layer"
	"github.com/richinsley/bungine/logger"
)

var (
	// ErrFrameOpen is returned by BeginRender while a frame is open.
	ErrFrameOpen = errors.New("gui: frame already open")
	// ErrNoFrame is returned by EndRender when no frame is open.
	ErrNoFrame = errors.New("gui: no open frame")
)

// Overlay is a Layer that also opens and closes the GUI frame.
type Overlay interface {
	layer.Layer
	BeginRender() error
	EndRender() error
}

// Frontend draws the GUI. It is optional; without one the overlay only
// keeps frame statistics.
type Frontend interface {
	NewFrame(ts clock.TimeStep) error
	Render() error
}

const (
	fpsSmoothing   = 0.1
	defaultLogRate = 5 * time.Second
)

// Layer is the overlay an Application installs by default.
type Layer struct {
	layer.Base

	frontend Frontend
	logEvery time.Duration

	open     bool
	lastStep clock.TimeStep
	frames   uint64
	fps      float64
	sinceLog time.Duration
}

// Option configures a Layer.
type Option func(*Layer)

// WithFrontend forwards BeginRender and EndRender to f.
func WithFrontend(f Frontend) Option {
	return func(l *Layer) { l.frontend = f }
}

// WithLogInterval sets how often the smoothed frame rate is logged.
// Zero disables it.
func WithLogInterval(d time.Duration) Option {
	return func(l *Layer) { l.logEvery = d }
}

func NewLayer(opts ...Option) *Layer {
	l := &Layer{logEvery: defaultLogRate}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Layer) OnUpdate(ts clock.TimeStep) error {
	l.lastStep = ts
	if ts <= 0 {
		return nil
	}
	instant := 1 / float64(ts)
	if l.fps == 0 {
		l.fps = instant
	} else {
		l.fps += fpsSmoothing * (instant - l.fps)
	}

	if l.logEvery <= 0 {
		return nil
	}
	l.sinceLog += time.Duration(float64(ts) * float64(time.Second))
	if l.sinceLog >= l.logEvery {
		l.sinceLog = 0
		logger.Logger().Info("frame rate", "fps", l.fps, "frames", l.frames)
	}
	return nil
}

func (l *Layer) BeginRender() error {
	if l.open {
		return ErrFrameOpen
	}
	l.open = true
	if l.frontend != nil {
		return l.frontend.NewFrame(l.lastStep)
	}
	return nil
}

func (l *Layer) EndRender() error {
	if !l.open {
		return ErrNoFrame
	}
	l.open = false
	l.frames++
	if l.frontend != nil {
		return l.frontend.Render()
	}
	return nil
}

// Frames returns the number of completed GUI frames.
func (l *Layer) Frames() uint64 { return l.frames }

// FPS returns the exponentially smoothed frame rate.
func (l *Layer) FPS() float64 { return l.fps }
