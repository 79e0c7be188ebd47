//go:build linux

// Package headless implements graphics.Window with an offscreen EGL
// pbuffer surface, for rendering without a display.
package headless

import (
	"fmt"
	"unsafe"

	"github.com/richinsley/bungine/graphics"
	"github.com/richinsley/bungine/logger"
)

/*
#cgo LDFLAGS: -lEGL
#include <EGL/egl.h>
#include <EGL/eglext.h>

static PFNEGLQUERYDEVICESEXTPROC eglQueryDevicesEXT_ptr = NULL;
static PFNEGLGETPLATFORMDISPLAYEXTPROC eglGetPlatformDisplayEXT_ptr = NULL;

static void initialize_egl_extension_pointers() {
    eglQueryDevicesEXT_ptr = (PFNEGLQUERYDEVICESEXTPROC) eglGetProcAddress("eglQueryDevicesEXT");
    eglGetPlatformDisplayEXT_ptr = (PFNEGLGETPLATFORMDISPLAYEXTPROC) eglGetProcAddress("eglGetPlatformDisplayEXT");
}

static EGLDisplay get_platform_display(EGLenum platform, void *native_display, const EGLint *attrib_list) {
    if (eglGetPlatformDisplayEXT_ptr) {
        return eglGetPlatformDisplayEXT_ptr(platform, native_display, attrib_list);
    }
    return EGL_NO_DISPLAY;
}

static EGLBoolean query_devices(EGLint max_devices, EGLDeviceEXT *devices, EGLint *num_devices) {
    if (eglQueryDevicesEXT_ptr) {
        return eglQueryDevicesEXT_ptr(max_devices, devices, num_devices);
    }
    return EGL_FALSE;
}
*/
import "C"

// Window is an EGL pbuffer with a desktop OpenGL context. A pbuffer has
// no close button or OS event queue, so Init installs no callbacks and
// the window dispatches nothing. A headless application stops through
// Application.Close or a layer dispatching event.WindowClose, such as
// the capture layer's frame limit.
type Window struct {
	display   C.EGLDisplay
	context   C.EGLContext
	surface   C.EGLSurface
	props     graphics.WindowProperties
	vsync     bool
	destroyed bool
}

// New returns an uninitialized headless window.
func New() *Window {
	return &Window{
		display: C.EGLDisplay(C.EGL_NO_DISPLAY),
		context: C.EGLContext(C.EGL_NO_CONTEXT),
		surface: C.EGLSurface(C.EGL_NO_SURFACE),
	}
}

func (w *Window) Backend() graphics.Backend { return graphics.BackendOpenGL }

// getEGLDisplay prefers device enumeration, which finds the GPU inside
// containers, and falls back to the default display.
func getEGLDisplay() (C.EGLDisplay, error) {
	C.initialize_egl_extension_pointers()

	var numDevices C.EGLint
	if C.query_devices(0, nil, &numDevices) == C.EGL_FALSE || numDevices == 0 {
		logger.Logger().Warn("EGL_EXT_device_query unavailable, falling back to EGL_DEFAULT_DISPLAY")
		display := C.eglGetDisplay(C.EGLNativeDisplayType(C.EGL_DEFAULT_DISPLAY))
		if display == C.EGLDisplay(C.EGL_NO_DISPLAY) {
			return C.EGLDisplay(C.EGL_NO_DISPLAY), fmt.Errorf("eglGetDisplay(EGL_DEFAULT_DISPLAY) failed")
		}
		return display, nil
	}

	logger.Logger().Debug("EGL devices found", "count", int(numDevices))
	devices := make([]C.EGLDeviceEXT, numDevices)
	if C.query_devices(numDevices, &devices[0], &numDevices) == C.EGL_FALSE {
		return C.EGLDisplay(C.EGL_NO_DISPLAY), fmt.Errorf("failed to query EGL devices")
	}

	for i := 0; i < int(numDevices); i++ {
		display := C.get_platform_display(C.EGL_PLATFORM_DEVICE_EXT, unsafe.Pointer(devices[i]), nil)
		if display != C.EGLDisplay(C.EGL_NO_DISPLAY) {
			logger.Logger().Debug("EGL display selected", "device", i)
			return display, nil
		}
	}
	return C.EGLDisplay(C.EGL_NO_DISPLAY), fmt.Errorf("no EGL device produced a display")
}

// Init creates the pbuffer surface and makes an OpenGL 4.1 core context
// current on it.
func (w *Window) Init(props graphics.WindowProperties) error {
	display, err := getEGLDisplay()
	if err != nil {
		return fmt.Errorf("%w: %v", graphics.ErrWindowInit, err)
	}
	w.display = display

	var major, minor C.EGLint
	if C.eglInitialize(w.display, &major, &minor) == C.EGL_FALSE {
		return fmt.Errorf("%w: eglInitialize failed", graphics.ErrWindowInit)
	}
	logger.Logger().Info("EGL initialized", "major", int(major), "minor", int(minor))

	if C.eglBindAPI(C.EGL_OPENGL_API) == C.EGL_FALSE {
		w.Destroy()
		return fmt.Errorf("%w: eglBindAPI(EGL_OPENGL_API) failed", graphics.ErrWindowInit)
	}

	configAttribs := []C.EGLint{
		C.EGL_SURFACE_TYPE, C.EGL_PBUFFER_BIT,
		C.EGL_RED_SIZE, 8,
		C.EGL_GREEN_SIZE, 8,
		C.EGL_BLUE_SIZE, 8,
		C.EGL_ALPHA_SIZE, 8,
		C.EGL_DEPTH_SIZE, 24,
		C.EGL_RENDERABLE_TYPE, C.EGL_OPENGL_BIT,
		C.EGL_NONE,
	}
	var config C.EGLConfig
	var numConfig C.EGLint
	if C.eglChooseConfig(w.display, &configAttribs[0], &config, 1, &numConfig) == C.EGL_FALSE || numConfig == 0 {
		w.Destroy()
		return fmt.Errorf("%w: no matching EGL config", graphics.ErrWindowInit)
	}

	pbufferAttribs := []C.EGLint{
		C.EGL_WIDTH, C.EGLint(props.Width),
		C.EGL_HEIGHT, C.EGLint(props.Height),
		C.EGL_NONE,
	}
	w.surface = C.eglCreatePbufferSurface(w.display, config, &pbufferAttribs[0])
	if w.surface == C.EGLSurface(C.EGL_NO_SURFACE) {
		w.Destroy()
		return fmt.Errorf("%w: eglCreatePbufferSurface failed", graphics.ErrWindowInit)
	}

	contextAttribs := []C.EGLint{
		C.EGL_CONTEXT_MAJOR_VERSION, 4,
		C.EGL_CONTEXT_MINOR_VERSION, 1,
		C.EGL_CONTEXT_OPENGL_PROFILE_MASK, C.EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT,
		C.EGL_NONE,
	}
	w.context = C.eglCreateContext(w.display, config, C.EGLContext(C.EGL_NO_CONTEXT), &contextAttribs[0])
	if w.context == C.EGLContext(C.EGL_NO_CONTEXT) {
		w.Destroy()
		return fmt.Errorf("%w: eglCreateContext failed", graphics.ErrWindowInit)
	}

	if C.eglMakeCurrent(w.display, w.surface, w.surface, w.context) == C.EGL_FALSE {
		w.Destroy()
		return fmt.Errorf("%w: eglMakeCurrent failed", graphics.ErrWindowInit)
	}

	w.props = props
	w.SetVSync(props.VSync)
	logger.Logger().Info("headless surface created", "width", props.Width, "height", props.Height)
	return nil
}

// OnUpdate swaps the pbuffer. There is no OS event queue to pump.
func (w *Window) OnUpdate() error {
	if C.eglSwapBuffers(w.display, w.surface) == C.EGL_FALSE {
		return fmt.Errorf("eglSwapBuffers failed: 0x%x", int(C.eglGetError()))
	}
	return nil
}

// Destroy releases the context, the surface and the display connection.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	if w.display == C.EGLDisplay(C.EGL_NO_DISPLAY) {
		return
	}
	C.eglMakeCurrent(w.display, C.EGLSurface(C.EGL_NO_SURFACE), C.EGLSurface(C.EGL_NO_SURFACE), C.EGLContext(C.EGL_NO_CONTEXT))
	if w.context != C.EGLContext(C.EGL_NO_CONTEXT) {
		C.eglDestroyContext(w.display, w.context)
	}
	if w.surface != C.EGLSurface(C.EGL_NO_SURFACE) {
		C.eglDestroySurface(w.display, w.surface)
	}
	C.eglTerminate(w.display)
	logger.Logger().Info("EGL terminated")
}

func (w *Window) VSync() bool { return w.vsync }

func (w *Window) SetVSync(enabled bool) {
	interval := C.EGLint(0)
	if enabled {
		interval = 1
	}
	if w.display != C.EGLDisplay(C.EGL_NO_DISPLAY) {
		C.eglSwapInterval(w.display, interval)
	}
	w.vsync = enabled
}

// WindowID returns the EGL surface handle.
func (w *Window) WindowID() uintptr { return uintptr(unsafe.Pointer(w.surface)) }

func (w *Window) Width() int    { return w.props.Width }
func (w *Window) Height() int   { return w.props.Height }
func (w *Window) Title() string { return w.props.Title }
