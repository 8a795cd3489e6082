// cmd/glpaint-demo/triangle.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/glpaint/glpaint/renderer"
	"github.com/glpaint/glpaint/renderer/opengl"

	"github.com/go-gl/gl/v3.2-core/gl"
)

const triangleVertexShader = `#version 150
uniform float u_angle;
in vec2 a_pos;
in vec3 a_color;
out vec3 v_color;

void main() {
    float c = cos(u_angle);
    float s = sin(u_angle);
    gl_Position = vec4(c * a_pos.x - s * a_pos.y, s * a_pos.x + c * a_pos.y, 0.0, 1.0);
    v_color = a_color;
}
`

const triangleFragmentShader = `#version 150
in vec3 v_color;
out vec4 f_color;

void main() {
    f_color = vec4(v_color, 1.0);
}
`

// triangle is drawn with GL calls of its own before the GUI is painted
// over it.
type triangle struct {
	dev      *opengl.Device
	program  uint32
	vao      uint32
	buffers  [2]uint32
	angleLoc int32
}

func newTriangle(dev *opengl.Device) (*triangle, error) {
	program, err := renderer.NewShaderProgram(dev, triangleVertexShader, triangleFragmentShader)
	if err != nil {
		return nil, err
	}

	t := &triangle{dev: dev, program: program, vao: dev.GenVertexArray()}
	t.angleLoc = dev.GetUniformLocation(program, "u_angle")

	dev.BindVertexArray(t.vao)
	for i, attr := range []struct {
		name string
		size int
		data []float32
	}{
		{"a_pos", 2, []float32{0, 0.8, -0.7, -0.6, 0.7, -0.6}},
		{"a_color", 3, []float32{1, 0.2, 0.2, 0.2, 1, 0.2, 0.2, 0.2, 1}},
	} {
		loc := dev.GetAttribLocation(program, attr.name)
		if loc < 0 {
			t.Dispose()
			return nil, fmt.Errorf("%s: attribute not found in triangle program", attr.name)
		}
		t.buffers[i] = dev.GenBuffer()
		dev.StreamFloats(t.buffers[i], attr.data)
		dev.VertexAttribPointer(uint32(loc), attr.size, renderer.AttribFloat, false)
		dev.EnableVertexAttribArray(uint32(loc))
	}
	dev.BindVertexArray(0)

	return t, nil
}

func (t *triangle) draw(angle float32, canvasSize [2]int) {
	gl.Viewport(0, 0, int32(canvasSize[0]), int32(canvasSize[1]))
	t.dev.UseProgram(t.program)
	gl.Uniform1f(t.angleLoc, angle)
	t.dev.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	t.dev.BindVertexArray(0)
}

func (t *triangle) Dispose() {
	for _, b := range t.buffers {
		if b != 0 {
			t.dev.DeleteBuffer(b)
		}
	}
	t.dev.DeleteVertexArray(t.vao)
	t.dev.DeleteProgram(t.program)
}
