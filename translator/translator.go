// Package translator converts WebGL2 (GLSL ES 3.00) shader sources to
// desktop GLSL 4.10 so a single source works on every OpenGL backend.
package translator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/richinsley/bungine/logger"
	gst "github.com/richinsley/goshadertranslator"
)

// Stage names accepted by Translate.
const (
	StageVertex   = "vertex"
	StageFragment = "fragment"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	initOnce   sync.Once
)

// GetTranslator returns the process-wide translator, creating it on
// first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	initOnce.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
		if initErr == nil {
			logger.Logger().Debug("shader translator ready")
		}
	})
	return translator, initErr
}

// Result is a translated shader.
type Result struct {
	Code string
	// Uniforms maps each uniform's source name to the name it has in Code.
	Uniforms map[string]string
}

// NeedsTranslation reports whether src is GLSL ES 3.00 source.
func NeedsTranslation(src string) bool {
	return strings.HasPrefix(strings.TrimSpace(src), "#version 300 es")
}

// Translate converts a WebGL2 shader for the given stage to GLSL 4.10.
func Translate(src, stage string) (*Result, error) {
	if stage != StageVertex && stage != StageFragment {
		return nil, fmt.Errorf("unknown shader stage %q", stage)
	}
	t, err := GetTranslator()
	if err != nil {
		return nil, fmt.Errorf("shader translator unavailable: %w", err)
	}
	out, err := t.TranslateShader(src, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	res := &Result{
		Code:     out.Code,
		Uniforms: make(map[string]string, len(out.Variables)),
	}
	for name, v := range out.Variables {
		res.Uniforms[name] = v.MappedName
	}
	return res, nil
}
