// cmd/framereplay/device.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"github.com/glpaint/glpaint/paint"
	"github.com/glpaint/glpaint/renderer"
)

// countingDevice is a renderer.Device with no GPU behind it. It hands out
// object names, accepts every shader, and counts the work that would have
// been done.
type countingDevice struct {
	next uint32

	live         map[uint32]string
	draws        int
	indices      int
	textureBytes int
	bufferBytes  int
	scissors     int
}

var _ renderer.Device = (*countingDevice)(nil)

func newCountingDevice() *countingDevice {
	return &countingDevice{live: make(map[uint32]string)}
}

func (d *countingDevice) gen(kind string) uint32 {
	d.next++
	d.live[d.next] = kind
	return d.next
}

func (d *countingDevice) del(name uint32) { delete(d.live, name) }

func (d *countingDevice) CreateShader(renderer.ShaderStage, string) uint32 { return d.gen("shader") }
func (d *countingDevice) CompileShader(uint32) (bool, string) { return true, "" }
func (d *countingDevice) DeleteShader(s uint32) { d.del(s) }
func (d *countingDevice) CreateProgram() uint32 { return d.gen("program") }
func (d *countingDevice) AttachShader(uint32, uint32) {}
func (d *countingDevice) DetachShader(uint32, uint32) {}
func (d *countingDevice) LinkProgram(uint32) (bool, string) { return true, "" }
func (d *countingDevice) DeleteProgram(p uint32) { d.del(p) }
func (d *countingDevice) UseProgram(uint32) {}

// Every name gets a location; the painter only checks that each one is
// present.
func (d *countingDevice) GetUniformLocation(uint32, string) int32 { return 0 }
func (d *countingDevice) GetAttribLocation(uint32, string) int32 { return 0 }
func (d *countingDevice) Uniform1i(int32, int32) {}
func (d *countingDevice) Uniform2f(int32, float32, float32) {}

func (d *countingDevice) GenTexture() uint32 { return d.gen("texture") }
func (d *countingDevice) DeleteTexture(t uint32) { d.del(t) }
func (d *countingDevice) ActiveTexture(int) {}
func (d *countingDevice) BindTexture(uint32) {}
func (d *countingDevice) TextureParameters(paint.TextureFilter) {}

func (d *countingDevice) TexImage2D(w, h int, rgba []byte) {
	d.textureBytes += len(rgba)
}

func (d *countingDevice) TexSubImage2D(x, y, w, h int, rgba []byte) {
	d.textureBytes += len(rgba)
}

func (d *countingDevice) GenVertexArray() uint32 { return d.gen("vertex array") }
func (d *countingDevice) DeleteVertexArray(v uint32) { d.del(v) }
func (d *countingDevice) BindVertexArray(uint32) {}
func (d *countingDevice) GenBuffer() uint32 { return d.gen("buffer") }
func (d *countingDevice) DeleteBuffer(b uint32) { d.del(b) }
func (d *countingDevice) StreamIndices(_ uint32, idx []uint16) { d.bufferBytes += 2 * len(idx) }
func (d *countingDevice) StreamFloats(_ uint32, f []float32) { d.bufferBytes += 4 * len(f) }
func (d *countingDevice) StreamBytes(_ uint32, b []byte) { d.bufferBytes += len(b) }

func (d *countingDevice) VertexAttribPointer(uint32, int, renderer.AttribType, bool) {}
func (d *countingDevice) EnableVertexAttribArray(uint32) {}
func (d *countingDevice) DisableVertexAttribArray(uint32) {}

func (d *countingDevice) DrawTriangles16(count int) {
	d.draws++
	d.indices += count
}

func (d *countingDevice) Enable(renderer.Capability) {}
func (d *countingDevice) Disable(renderer.Capability) {}
func (d *countingDevice) BlendPremultipliedAlpha() {}

func (d *countingDevice) Scissor(x, y, w, h int32) { d.scissors++ }

func (d *countingDevice) Viewport(x, y, w, h int32) {}

// leaks returns the number of live objects of each kind.
func (d *countingDevice) leaks() map[string]int {
	m := make(map[string]int)
	for _, kind := range d.live {
		m[kind]++
	}
	return m
}
