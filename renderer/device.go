// renderer/device.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import "github.com/glpaint/glpaint/paint"

type ShaderStage int

const (
	VertexShader ShaderStage = iota
	FragmentShader
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// Capability is a piece of fixed-function GPU state that can be enabled
// and disabled.
type Capability int

const (
	CapBlend Capability = iota
	CapScissorTest
	CapFramebufferSRGB
)

// AttribType gives the component type of a vertex attribute array.
type AttribType int

const (
	AttribFloat AttribType = iota
	AttribUnsignedByte
)

// Device is the subset of OpenGL that the painter uses. All calls must be
// made from the thread that owns the GL context. The opengl package
// provides the implementation that is used with a real context.
type Device interface {
	// Shaders and programs. CompileShader and LinkProgram return false
	// along with the driver's info log if they fail.
	CreateShader(stage ShaderStage, source string) uint32
	CompileShader(shader uint32) (bool, string)
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32) (bool, string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform2f(location int32, x, y float32)

	// Textures. The Tex* calls apply to the currently bound 2D texture
	// and pixel data is always tightly packed RGBA8.
	GenTexture() uint32
	DeleteTexture(tex uint32)
	ActiveTexture(unit int)
	BindTexture(tex uint32)
	// TextureParameters sets clamp-to-edge wrapping and the min/mag
	// filters that correspond to filter.
	TextureParameters(filter paint.TextureFilter)
	TexImage2D(width, height int, rgba []byte)
	TexSubImage2D(x, y, width, height int, rgba []byte)

	// Buffers and vertex arrays. The Stream* calls bind the buffer to the
	// appropriate target and replace its contents with streaming usage.
	GenVertexArray() uint32
	DeleteVertexArray(vao uint32)
	BindVertexArray(vao uint32)
	GenBuffer() uint32
	DeleteBuffer(buf uint32)
	StreamIndices(buf uint32, indices []uint16)
	StreamFloats(buf uint32, data []float32)
	StreamBytes(buf uint32, data []byte)
	// VertexAttribPointer sources the attribute from the start of the
	// most recently streamed array buffer, tightly packed.
	VertexAttribPointer(location uint32, size int, typ AttribType, normalized bool)
	EnableVertexAttribArray(location uint32)
	DisableVertexAttribArray(location uint32)
	// DrawTriangles16 issues an indexed triangle-list draw of count
	// 16-bit indices from the bound element buffer.
	DrawTriangles16(count int)

	Enable(c Capability)
	Disable(c Capability)
	// BlendPremultipliedAlpha sets the blend function to (ONE,
	// ONE_MINUS_SRC_ALPHA).
	BlendPremultipliedAlpha()
	Scissor(x, y, width, height int32)
	Viewport(x, y, width, height int32)
}
