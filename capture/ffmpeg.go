package capture

import (
	"fmt"
	"io"

	"github.com/richinsley/bungine/logger"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type ffmpegSink struct {
	pw   *io.PipeWriter
	errc chan error
}

func encodeStream(path string, width, height, fps int, ffmpegPath string) *ffmpeg.Stream {
	inputArgs := ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": fps,
	}
	outputArgs := ffmpeg.KwArgs{
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
	}
	stream := ffmpeg.Input("pipe:", inputArgs).
		Output(path, outputArgs).
		OverWriteOutput()
	if ffmpegPath != "" {
		stream = stream.SetFfmpegPath(ffmpegPath)
	}
	return stream
}

// NewFFmpegSink starts ffmpeg encoding raw RGBA frames of width x height
// at fps into path. An empty ffmpegPath uses ffmpeg from PATH.
func NewFFmpegSink(path string, width, height, fps int, ffmpegPath string) (Sink, error) {
	if width <= 0 || height <= 0 || fps <= 0 {
		return nil, fmt.Errorf("capture: invalid stream %dx%d@%d", width, height, fps)
	}
	pr, pw := io.Pipe()
	cmd := encodeStream(path, width, height, fps, ffmpegPath).
		WithInput(pr).
		ErrorToStdOut()

	s := &ffmpegSink{pw: pw, errc: make(chan error, 1)}
	go func() {
		err := cmd.Run()
		// unblock writers if ffmpeg exits early
		pr.CloseWithError(fmt.Errorf("ffmpeg exited: %v", err))
		s.errc <- err
	}()
	logger.Logger().Info("recording", "output", path, "width", width, "height", height, "fps", fps)
	return s, nil
}

func (s *ffmpegSink) Write(p []byte) (int, error) {
	return s.pw.Write(p)
}

// Close ends the input stream and waits for ffmpeg to exit.
func (s *ffmpegSink) Close() error {
	if err := s.pw.Close(); err != nil {
		return err
	}
	if err := <-s.errc; err != nil {
		logger.Logger().Warn("ffmpeg exited with error", "err", err)
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}
