// Package glfwcontext implements graphics.Window and graphics.Input on
// top of GLFW with an OpenGL 4.1 core context.
package glfwcontext

import (
	"fmt"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/bungine/event"
	"github.com/richinsley/bungine/graphics"
	"github.com/richinsley/bungine/logger"
)

// Window is a GLFW window. It also implements clock.Clock using the GLFW
// timer.
type Window struct {
	window     *glfw.Window
	dispatcher *event.Dispatcher
	props      graphics.WindowProperties
	vsync      bool

	// first error returned by a listener from inside a GLFW callback;
	// reported by the next OnUpdate
	callbackErr error
	destroyed   bool
}

// New returns an uninitialized window that dispatches its events through d.
func New(d *event.Dispatcher) *Window {
	return &Window{dispatcher: d}
}

func (w *Window) Backend() graphics.Backend { return graphics.BackendOpenGL }

// Init initializes GLFW and creates the window. Must be called from the
// main thread.
func (w *Window) Init(props graphics.WindowProperties) error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: glfw: %v", graphics.ErrWindowInit, err)
	}
	logger.Logger().Info("GLFW initialized")

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	// shown once the context is ready
	glfw.WindowHint(glfw.Visible, glfw.False)
	if props.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(props.Width, props.Height, props.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("%w: create window %dx%d: %v", graphics.ErrWindowInit, props.Width, props.Height, err)
	}
	w.window = win
	w.props = props

	win.SetCloseCallback(w.glfwCloseCallback)
	win.SetFramebufferSizeCallback(w.glfwFramebufferSizeCallback)
	win.SetKeyCallback(w.glfwKeyCallback)
	win.SetMouseButtonCallback(w.glfwMouseButtonCallback)
	win.SetCursorPosCallback(w.glfwCursorPosCallback)
	win.SetScrollCallback(w.glfwScrollCallback)

	win.MakeContextCurrent()
	if !props.Hidden {
		win.Show()
	}
	w.SetVSync(props.VSync)

	logger.Logger().Info("window created", "title", props.Title, "width", props.Width, "height", props.Height, "vsync", props.VSync)
	return nil
}

func (w *Window) dispatch(e event.Event) {
	if w.dispatcher == nil {
		return
	}
	if err := w.dispatcher.Dispatch(e); err != nil && w.callbackErr == nil {
		w.callbackErr = err
	}
}

func (w *Window) glfwCloseCallback(win *glfw.Window) {
	w.dispatch(event.WindowClose{WindowID: uintptr(win.Handle())})
}

func (w *Window) glfwFramebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.dispatch(event.WindowResize{Width: width, Height: height})
}

func (w *Window) glfwKeyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	w.dispatch(event.Key{Key: int(key), Scancode: scancode, Action: int(action), Mods: int(mods)})
}

func (w *Window) glfwMouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	w.dispatch(event.MouseButton{Button: int(button), Action: int(action), Mods: int(mods)})
}

func (w *Window) glfwCursorPosCallback(_ *glfw.Window, x, y float64) {
	w.dispatch(event.MouseMove{X: x, Y: y})
}

func (w *Window) glfwScrollCallback(_ *glfw.Window, xoff, yoff float64) {
	w.dispatch(event.Scroll{XOffset: xoff, YOffset: yoff})
}

// OnUpdate swaps buffers and polls events. Close and input callbacks run
// synchronously inside the poll.
func (w *Window) OnUpdate() error {
	w.window.SwapBuffers()
	glfw.PollEvents()
	err := w.callbackErr
	w.callbackErr = nil
	return err
}

// Destroy releases callbacks, the window and GLFW itself, in that order.
func (w *Window) Destroy() {
	if w.destroyed || w.window == nil {
		return
	}
	w.destroyed = true

	w.window.SetScrollCallback(nil)
	w.window.SetCursorPosCallback(nil)
	w.window.SetMouseButtonCallback(nil)
	w.window.SetKeyCallback(nil)
	w.window.SetFramebufferSizeCallback(nil)
	w.window.SetCloseCallback(nil)
	w.window.Destroy()
	glfw.Terminate()
	logger.Logger().Info("GLFW terminated")
}

func (w *Window) VSync() bool { return w.vsync }

func (w *Window) SetVSync(enabled bool) {
	if enabled {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	w.vsync = enabled
}

// WindowID returns the native GLFW window pointer.
func (w *Window) WindowID() uintptr {
	if w.window == nil {
		return 0
	}
	return uintptr(w.window.Handle())
}

func (w *Window) Width() int {
	if w.window == nil {
		return w.props.Width
	}
	width, _ := w.window.GetSize()
	return width
}

func (w *Window) Height() int {
	if w.window == nil {
		return w.props.Height
	}
	_, height := w.window.GetSize()
	return height
}

func (w *Window) Title() string { return w.props.Title }

// SetTitle changes the native window title.
func (w *Window) SetTitle(title string) {
	w.props.Title = title
	if w.window != nil {
		w.window.SetTitle(title)
	}
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// Time returns seconds since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// GLFWWindow exposes the underlying window for backend-internal use.
func (w *Window) GLFWWindow() *glfw.Window {
	return w.window
}
