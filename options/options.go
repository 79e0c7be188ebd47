// Package options holds the command-line configuration of a bungine
// executable.
package options

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/richinsley/bungine/graphics"
)

type Options struct {
	Title     *string
	Width     *int
	Height    *int
	VSync     *bool
	Resizable *bool
	Headless  *bool
	Texture   *string

	// Recording
	OutputFile *string
	FFMPEGPath *string
	FPS        *int
	Duration   *float64 // seconds, 0 records until the window closes

	LogLevel *string
	Help     *bool
}

// Register defines every option on fs and returns the struct the values
// are parsed into.
func Register(fs *flag.FlagSet) *Options {
	def := graphics.DefaultWindowProperties()
	return &Options{
		Title:      fs.String("title", def.Title, "Window title"),
		Width:      fs.Int("width", def.Width, "Window width"),
		Height:     fs.Int("height", def.Height, "Window height"),
		VSync:      fs.Bool("vsync", def.VSync, "Enable vertical sync"),
		Resizable:  fs.Bool("resizable", true, "Allow the window to be resized"),
		Headless:   fs.Bool("headless", false, "Render to an offscreen EGL surface (linux)"),
		Texture:    fs.String("texture", "", "Image drawn on a second quad (png, jpeg, bmp, tiff, webp)"),
		OutputFile: fs.String("output", "", "Record frames to this video file"),
		FFMPEGPath: fs.String("ffmpeg", "", "Path to ffmpeg executable"),
		FPS:        fs.Int("fps", 60, "Frames per second for recording"),
		Duration:   fs.Float64("duration", 0, "Duration to record in seconds"),
		LogLevel:   fs.String("loglevel", "info", "Log level: debug, info, warn, error"),
		Help:       fs.Bool("help", false, "Show help message"),
	}
}

// WindowProperties returns the window configuration. Headless windows
// are never resizable.
func (o *Options) WindowProperties() graphics.WindowProperties {
	return graphics.WindowProperties{
		Title:     *o.Title,
		Width:     *o.Width,
		Height:    *o.Height,
		VSync:     *o.VSync,
		Resizable: *o.Resizable && !*o.Headless,
		Hidden:    *o.Headless,
	}
}

// Recording reports whether an output file was requested.
func (o *Options) Recording() bool { return *o.OutputFile != "" }

// MaxFrames is the number of frames to record, 0 for unlimited.
func (o *Options) MaxFrames() int {
	if *o.Duration <= 0 {
		return 0
	}
	return int(*o.Duration * float64(*o.FPS))
}

func (o *Options) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(*o.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid -loglevel %q", *o.LogLevel)
	}
	return level, nil
}

func (o *Options) Validate() error {
	var errs []error
	if *o.Width <= 0 || *o.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", *o.Width, *o.Height))
	}
	if *o.FPS <= 0 {
		errs = append(errs, fmt.Errorf("invalid -fps %d", *o.FPS))
	}
	if *o.Duration < 0 {
		errs = append(errs, fmt.Errorf("invalid -duration %v", *o.Duration))
	}
	if *o.Duration > 0 && *o.FPS > 0 && o.MaxFrames() == 0 {
		errs = append(errs, fmt.Errorf("-duration %v is shorter than one frame at %d fps", *o.Duration, *o.FPS))
	}
	// a headless window has no close button, the frame limit is the only stop
	if *o.Headless && *o.Duration <= 0 {
		errs = append(errs, errors.New("-headless needs -duration to stop"))
	}
	if _, err := o.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
