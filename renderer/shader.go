// renderer/shader.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed shaders/painter.vert
var painterVertexShader string

//go:embed shaders/painter.frag
var painterFragmentShader string

// ShaderError is returned when a shader fails to compile or a program
// fails to link; Log holds the driver's info log.
type ShaderError struct {
	Stage string // "vertex", "fragment", or "link"
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return "program link failed: " + strings.TrimSpace(e.Log)
	}
	return e.Stage + " shader compile failed: " + strings.TrimSpace(e.Log)
}

func compileShader(dev Device, stage ShaderStage, source string) (uint32, error) {
	shader := dev.CreateShader(stage, source)
	if ok, infoLog := dev.CompileShader(shader); !ok {
		dev.DeleteShader(shader)
		return 0, &ShaderError{Stage: stage.String(), Log: infoLog}
	}
	return shader, nil
}

// linkProgram links the given shaders into a new program. The shaders are
// detached from the program afterward but are not deleted.
func linkProgram(dev Device, shaders ...uint32) (uint32, error) {
	program := dev.CreateProgram()
	for _, s := range shaders {
		dev.AttachShader(program, s)
	}
	ok, infoLog := dev.LinkProgram(program)
	for _, s := range shaders {
		dev.DetachShader(program, s)
	}
	if !ok {
		dev.DeleteProgram(program)
		return 0, &ShaderError{Stage: "link", Log: infoLog}
	}
	return program, nil
}

// NewShaderProgram compiles and links a program from the given vertex and
// fragment shader sources. The intermediate shader objects are always
// deleted, whether or not it succeeds.
func NewShaderProgram(dev Device, vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(dev, VertexShader, vertexSource)
	if err != nil {
		return 0, err
	}
	defer dev.DeleteShader(vs)

	fs, err := compileShader(dev, FragmentShader, fragmentSource)
	if err != nil {
		return 0, err
	}
	defer dev.DeleteShader(fs)

	return linkProgram(dev, vs, fs)
}

// programLocations holds the attribute and uniform locations that the
// painter's program exposes.
type programLocations struct {
	pos, tc, srgba      uint32
	screenSize, sampler int32
}

func lookupLocations(dev Device, program uint32) (programLocations, error) {
	var loc programLocations
	attrib := func(name string) (uint32, error) {
		l := dev.GetAttribLocation(program, name)
		if l < 0 {
			return 0, fmt.Errorf("%s: vertex attribute not found in program", name)
		}
		return uint32(l), nil
	}
	uniform := func(name string) (int32, error) {
		l := dev.GetUniformLocation(program, name)
		if l < 0 {
			return 0, fmt.Errorf("%s: uniform not found in program", name)
		}
		return l, nil
	}

	var err error
	if loc.pos, err = attrib("a_pos"); err != nil {
		return loc, err
	}
	if loc.tc, err = attrib("a_tc"); err != nil {
		return loc, err
	}
	if loc.srgba, err = attrib("a_srgba"); err != nil {
		return loc, err
	}
	if loc.screenSize, err = uniform("u_screen_size"); err != nil {
		return loc, err
	}
	if loc.sampler, err = uniform("u_sampler"); err != nil {
		return loc, err
	}
	return loc, nil
}
