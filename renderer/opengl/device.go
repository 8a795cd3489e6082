// renderer/opengl/device.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package opengl implements renderer.Device using the OpenGL 3.2 core
// profile.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/glpaint/glpaint/log"
	"github.com/glpaint/glpaint/paint"
	"github.com/glpaint/glpaint/renderer"
	"github.com/glpaint/glpaint/util"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// Device issues GL calls on the current context. All of its methods
// must be called from the thread that the context is current on.
type Device struct {
	lg *log.Logger
}

var _ renderer.Device = (*Device)(nil)

// NewDevice loads the GL function pointers for the current context.
func NewDevice(lg *log.Logger) (*Device, error) {
	lg.Info("Starting OpenGL initialization")
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	lg.Infof("OpenGL vendor %s renderer %s version %s", gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION)))
	lg.Infof("GLSL version %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	return &Device{lg: lg}, nil
}

func ptr[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

///////////////////////////////////////////////////////////////////////////
// Shaders

func (d *Device) CreateShader(stage renderer.ShaderStage, source string) uint32 {
	shader := gl.CreateShader(util.Select(stage == renderer.VertexShader,
		uint32(gl.VERTEX_SHADER), uint32(gl.FRAGMENT_SHADER)))
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	return shader
}

func (d *Device) CompileShader(shader uint32) (bool, string) {
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
	return false, strings.TrimRight(infoLog, "\x00")
}

func (d *Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (d *Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (d *Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (d *Device) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (d *Device) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return false, strings.TrimRight(infoLog, "\x00")
}

func (d *Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (d *Device) UseProgram(program uint32) { gl.UseProgram(program) }

func (d *Device) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (d *Device) Uniform2f(location int32, x, y float32) { gl.Uniform2f(location, x, y) }

///////////////////////////////////////////////////////////////////////////
// Textures

func (d *Device) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (d *Device) DeleteTexture(tex uint32) { gl.DeleteTextures(1, &tex) }

func (d *Device) ActiveTexture(unit int) { gl.ActiveTexture(gl.TEXTURE0 + uint32(unit)) }

func (d *Device) BindTexture(tex uint32) { gl.BindTexture(gl.TEXTURE_2D, tex) }

func (d *Device) TextureParameters(filter paint.TextureFilter) {
	f := int32(util.Select(filter == paint.TextureFilterNearest, gl.NEAREST, gl.LINEAR))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, f)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, f)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func (d *Device) TexImage2D(width, height int, rgba []byte) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA,
		gl.UNSIGNED_BYTE, ptr(rgba))
}

func (d *Device) TexSubImage2D(x, y, width, height int, rgba []byte) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(x), int32(y), int32(width), int32(height), gl.RGBA,
		gl.UNSIGNED_BYTE, ptr(rgba))
}

///////////////////////////////////////////////////////////////////////////
// Buffers

func (d *Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Device) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (d *Device) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (d *Device) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (d *Device) DeleteBuffer(buf uint32) { gl.DeleteBuffers(1, &buf) }

func (d *Device) StreamIndices(buf uint32, indices []uint16) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 2*len(indices), ptr(indices), gl.STREAM_DRAW)
}

func (d *Device) StreamFloats(buf uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(data), ptr(data), gl.STREAM_DRAW)
}

func (d *Device) StreamBytes(buf uint32, data []byte) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), ptr(data), gl.STREAM_DRAW)
}

func (d *Device) VertexAttribPointer(location uint32, size int, typ renderer.AttribType, normalized bool) {
	xtype := util.Select(typ == renderer.AttribFloat, uint32(gl.FLOAT), uint32(gl.UNSIGNED_BYTE))
	gl.VertexAttribPointer(location, int32(size), xtype, normalized, 0, nil)
}

func (d *Device) EnableVertexAttribArray(location uint32) { gl.EnableVertexAttribArray(location) }

func (d *Device) DisableVertexAttribArray(location uint32) { gl.DisableVertexAttribArray(location) }

func (d *Device) DrawTriangles16(count int) {
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_SHORT, nil)
}

///////////////////////////////////////////////////////////////////////////
// State

func capability(c renderer.Capability) uint32 {
	switch c {
	case renderer.CapBlend:
		return gl.BLEND
	case renderer.CapScissorTest:
		return gl.SCISSOR_TEST
	case renderer.CapFramebufferSRGB:
		return gl.FRAMEBUFFER_SRGB
	default:
		panic(fmt.Sprintf("%d: unknown capability", c))
	}
}

func (d *Device) Enable(c renderer.Capability) { gl.Enable(capability(c)) }

func (d *Device) Disable(c renderer.Capability) { gl.Disable(capability(c)) }

func (d *Device) BlendPremultipliedAlpha() { gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA) }

func (d *Device) Scissor(x, y, width, height int32) { gl.Scissor(x, y, width, height) }

func (d *Device) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

// Clear clears the color buffer of the current framebuffer. It is not
// part of renderer.Device; the painter never clears.
func (d *Device) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// CheckError logs any pending GL errors, returning true if there were
// any.
func (d *Device) CheckError(where string) bool {
	found := false
	for {
		e := gl.GetError()
		if e == gl.NO_ERROR {
			return found
		}
		d.lg.Errorf("%s: GL error 0x%04x", where, e)
		found = true
	}
}
