//go:build !linux

package headless

import (
	"fmt"

	"github.com/richinsley/bungine/graphics"
)

// Window is unavailable on this platform; Init always fails.
type Window struct {
	props graphics.WindowProperties
}

func New() *Window { return &Window{} }

func (w *Window) Backend() graphics.Backend { return graphics.BackendOpenGL }

func (w *Window) Init(props graphics.WindowProperties) error {
	w.props = props
	return fmt.Errorf("%w: egl headless rendering is not supported on this platform", graphics.ErrWindowInit)
}

func (w *Window) OnUpdate() error   { return nil }
func (w *Window) Destroy()          {}
func (w *Window) VSync() bool       { return false }
func (w *Window) SetVSync(bool)     {}
func (w *Window) WindowID() uintptr { return 0 }
func (w *Window) Width() int        { return w.props.Width }
func (w *Window) Height() int       { return w.props.Height }
func (w *Window) Title() string     { return w.props.Title }
