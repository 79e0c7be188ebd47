package graphics

import "github.com/go-gl/mathgl/mgl32"

// Shader is a linked vertex + fragment program.
type Shader interface {
	Resource
	Bind()
	Unbind()
	UploadUniformInt(name string, v int32) error
	UploadUniformFloat(name string, v float32) error
	UploadUniformFloat4(name string, v mgl32.Vec4) error
	UploadUniformMat4(name string, m mgl32.Mat4) error
	Destroy()
}

// VertexBuffer holds vertex data and the layout describing it.
type VertexBuffer interface {
	Resource
	Bind()
	Unbind()
	Layout() BufferLayout
	SetLayout(layout BufferLayout)
	Destroy()
}

// IndexBuffer holds triangle indices.
type IndexBuffer interface {
	Resource
	Bind()
	Unbind()
	Count() int
	Destroy()
}

// VertexArray binds vertex buffers and an index buffer together.
type VertexArray interface {
	Resource
	Bind()
	Unbind()
	// AddVertexBuffer requires vb to have a non-empty layout.
	AddVertexBuffer(vb VertexBuffer) error
	SetIndexBuffer(ib IndexBuffer) error
	VertexBuffers() []VertexBuffer
	IndexBuffer() IndexBuffer
	Destroy()
}

// Texture2D is a sampled 2D image.
type Texture2D interface {
	Resource
	Width() int
	Height() int
	Bind(slot uint32)
	Destroy()
}

// RendererAPI executes render commands against the current context.
type RendererAPI interface {
	Resource
	Init() error
	SetViewport(x, y, width, height int)
	SetClearColor(color mgl32.Vec4)
	Clear()
	DrawIndexed(va VertexArray) error
	// ReadPixels returns width*height RGBA8 pixels of the frame being
	// drawn, bottom row first.
	ReadPixels(x, y, width, height int) ([]byte, error)
}

// Input polls device state. Codes are the backend's own.
type Input interface {
	Resource
	IsKeyPressed(key int) bool
	IsMouseButtonPressed(button int) bool
	MousePosition() (x, y float32)
}
