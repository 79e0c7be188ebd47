package glfwcontext

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/bungine/graphics"
)

// Input polls keyboard and mouse state from a Window.
type Input struct {
	window *Window
}

// NewInput returns an Input bound to w.
func NewInput(w *Window) *Input {
	return &Input{window: w}
}

func (in *Input) Backend() graphics.Backend { return graphics.BackendOpenGL }

func (in *Input) IsKeyPressed(key int) bool {
	win := in.window.GLFWWindow()
	if win == nil {
		return false
	}
	state := win.GetKey(glfw.Key(key))
	return state == glfw.Press || state == glfw.Repeat
}

func (in *Input) IsMouseButtonPressed(button int) bool {
	win := in.window.GLFWWindow()
	if win == nil {
		return false
	}
	return win.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

// MousePosition returns the cursor position in framebuffer pixels,
// origin at the top-left corner.
func (in *Input) MousePosition() (float32, float32) {
	win := in.window.GLFWWindow()
	if win == nil {
		return 0, 0
	}

	fbWidth, fbHeight := win.GetFramebufferSize()
	winWidth, winHeight := win.GetSize()
	var scaleX, scaleY float64 = 1.0, 1.0
	if winWidth > 0 && winHeight > 0 {
		scaleX = float64(fbWidth) / float64(winWidth)
		scaleY = float64(fbHeight) / float64(winHeight)
	}

	cursorX, cursorY := win.GetCursorPos()
	return float32(cursorX * scaleX), float32(cursorY * scaleY)
}
