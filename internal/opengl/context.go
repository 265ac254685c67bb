package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"room-renderer/core"
)

// Init loads the GL function pointers and sets the fixed pipeline state the
// scene needs: depth testing and alpha blending for the translucent objects.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	core.LogInfo("OpenGL initialized", "version", version, "renderer", renderer)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

// BeginFrame sizes the viewport and clears the color and depth buffers.
func BeginFrame(width, height int, clear core.Color) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
