package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/richinsley/bungine/application"
	"github.com/richinsley/bungine/capture"
	"github.com/richinsley/bungine/clock"
	"github.com/richinsley/bungine/core"
	"github.com/richinsley/bungine/logger"
	"github.com/richinsley/bungine/opengl"
	"github.com/richinsley/bungine/options"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("bungine sandbox")
		flag.PrintDefaults()
		return
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	level, _ := opts.Level()
	logger.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		logger.Logger().Error("sandbox failed", "err", err)
		os.Exit(1)
	}
}

func run(opts *options.Options) error {
	var factoryOpts []opengl.Option
	if *opts.Headless {
		factoryOpts = append(factoryOpts, opengl.WithHeadless())
	}
	ctx, err := core.NewContext(opengl.NewFactory(factoryOpts...))
	if err != nil {
		return err
	}

	var appOpts []application.Option
	if opts.Recording() {
		// render frame n at n/fps so the video plays back at real speed
		appOpts = append(appOpts, application.WithClock(clock.NewFixedStep(1/float64(*opts.FPS))))
	}
	app, err := application.New(ctx, opts.WindowProperties(), appOpts...)
	if err != nil {
		return err
	}

	sandbox := newSandboxLayer(app, *opts.Texture)
	if err := app.PushLayer(sandbox); err != nil {
		return teardown(app, err)
	}

	if opts.Recording() || opts.MaxFrames() > 0 {
		if err := pushRecorder(app, opts); err != nil {
			return teardown(app, err)
		}
	}

	if err := app.Run(); err != nil {
		return err
	}
	logger.Logger().Info("sandbox finished", "frames", app.Frame())
	return nil
}

// pushRecorder installs the capture overlay. Without an output file the
// frames are discarded and only the frame limit applies.
func pushRecorder(app *application.Application, opts *options.Options) error {
	width, height := app.Window().Width(), app.Window().Height()
	if fb, ok := app.Window().(interface{ FramebufferSize() (int, int) }); ok {
		width, height = fb.FramebufferSize()
	}

	var sink capture.Sink = discard{}
	if opts.Recording() {
		s, err := capture.NewFFmpegSink(*opts.OutputFile, width, height, *opts.FPS, *opts.FFMPEGPath)
		if err != nil {
			return err
		}
		sink = s
	}

	var capOpts []capture.Option
	if n := opts.MaxFrames(); n > 0 {
		capOpts = append(capOpts, capture.WithMaxFrames(n, app.Context().Dispatcher(), app.Window().WindowID()))
	}
	rec, err := capture.NewLayer(app.Renderer().API(), width, height, sink, capOpts...)
	if err != nil {
		sink.Close()
		return err
	}
	return app.PushOverlay(rec)
}

// teardown runs the application with the running flag already cleared,
// which skips the loop and releases the window and attached layers.
func teardown(app *application.Application, cause error) error {
	app.Close()
	if err := app.Run(); err != nil {
		return fmt.Errorf("%w (teardown: %v)", cause, err)
	}
	return cause
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
func (discard) Close() error                { return nil }
