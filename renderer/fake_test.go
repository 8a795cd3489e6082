// renderer/fake_test.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"github.com/glpaint/glpaint/paint"
)

type fakeTexture struct {
	width, height int
	filter        paint.TextureFilter
	hasFilter     bool
	pixels        []byte
}

type fakeAttrib struct {
	buffer  uint32
	size    int
	enabled bool
}

// fakeDevice records the calls made to it and rasterizes triangles into a
// software framebuffer with (ONE, ONE_MINUS_SRC_ALPHA) blending, nearest
// texture sampling, and flat shading from each triangle's first vertex.
type fakeDevice struct {
	nextName uint32

	// Failure injection
	failCompile map[ShaderStage]bool
	failLink    bool
	missing     map[string]bool

	liveShaders, livePrograms map[uint32]bool
	shaderStage               map[uint32]ShaderStage

	textures     map[uint32]*fakeTexture
	boundTexture uint32
	deleted      []uint32

	texImageCalls, texSubImageCalls int

	buffers      map[uint32]any
	arrayBuffer  uint32
	elementBuf   uint32
	attribs      map[uint32]*fakeAttrib
	liveVAOs     map[uint32]bool
	program      uint32
	screenSize   [2]float32
	enabled      map[Capability]bool
	blendPremult bool
	scissor      [4]int32
	viewport     [4]int32

	draws     int
	scissors  [][4]int32
	drawTexes []uint32

	// Framebuffer, top row first, 0-255 per channel.
	fbWidth, fbHeight int
	fb                []float32
}

func newFakeDevice(w, h int) *fakeDevice {
	return &fakeDevice{
		nextName:     1,
		failCompile:  make(map[ShaderStage]bool),
		missing:      make(map[string]bool),
		liveShaders:  make(map[uint32]bool),
		livePrograms: make(map[uint32]bool),
		shaderStage:  make(map[uint32]ShaderStage),
		textures:     make(map[uint32]*fakeTexture),
		buffers:      make(map[uint32]any),
		attribs:      make(map[uint32]*fakeAttrib),
		liveVAOs:     make(map[uint32]bool),
		enabled:      make(map[Capability]bool),
		fbWidth:      w,
		fbHeight:     h,
		fb:           make([]float32, 4*w*h),
	}
}

func (f *fakeDevice) name() uint32 {
	n := f.nextName
	f.nextName++
	return n
}

func (f *fakeDevice) CreateShader(stage ShaderStage, source string) uint32 {
	s := f.name()
	f.liveShaders[s] = true
	f.shaderStage[s] = stage
	return s
}

func (f *fakeDevice) CompileShader(shader uint32) (bool, string) {
	if f.failCompile[f.shaderStage[shader]] {
		return false, "0:12(3): error: syntax error, unexpected '}'\n"
	}
	return true, ""
}

func (f *fakeDevice) DeleteShader(shader uint32) { delete(f.liveShaders, shader) }

func (f *fakeDevice) CreateProgram() uint32 {
	p := f.name()
	f.livePrograms[p] = true
	return p
}

func (f *fakeDevice) AttachShader(program, shader uint32) {}
func (f *fakeDevice) DetachShader(program, shader uint32) {}

func (f *fakeDevice) LinkProgram(program uint32) (bool, string) {
	if f.failLink {
		return false, "error: fragment shader input v_tc has no matching output\n"
	}
	return true, ""
}

func (f *fakeDevice) DeleteProgram(program uint32) { delete(f.livePrograms, program) }
func (f *fakeDevice) UseProgram(program uint32)    { f.program = program }

var fakeLocations = map[string]int32{
	"a_pos": 0, "a_tc": 1, "a_srgba": 2,
	"u_screen_size": 0, "u_sampler": 1,
}

func (f *fakeDevice) GetUniformLocation(program uint32, name string) int32 {
	if l, ok := fakeLocations[name]; ok && !f.missing[name] {
		return l
	}
	return -1
}

func (f *fakeDevice) GetAttribLocation(program uint32, name string) int32 {
	return f.GetUniformLocation(program, name)
}

func (f *fakeDevice) Uniform1i(location int32, v int32) {}

func (f *fakeDevice) Uniform2f(location int32, x, y float32) {
	if location == fakeLocations["u_screen_size"] {
		f.screenSize = [2]float32{x, y}
	}
}

func (f *fakeDevice) GenTexture() uint32 {
	t := f.name()
	f.textures[t] = &fakeTexture{}
	return t
}

func (f *fakeDevice) DeleteTexture(tex uint32) {
	delete(f.textures, tex)
	f.deleted = append(f.deleted, tex)
}

func (f *fakeDevice) ActiveTexture(unit int) {}
func (f *fakeDevice) BindTexture(tex uint32) { f.boundTexture = tex }

func (f *fakeDevice) TextureParameters(filter paint.TextureFilter) {
	t := f.textures[f.boundTexture]
	t.filter, t.hasFilter = filter, true
}

func (f *fakeDevice) TexImage2D(width, height int, rgba []byte) {
	t := f.textures[f.boundTexture]
	t.width, t.height = width, height
	t.pixels = append([]byte(nil), rgba...)
	f.texImageCalls++
}

func (f *fakeDevice) TexSubImage2D(x, y, width, height int, rgba []byte) {
	t := f.textures[f.boundTexture]
	for row := 0; row < height; row++ {
		dst := 4 * ((y+row)*t.width + x)
		copy(t.pixels[dst:dst+4*width], rgba[4*width*row:])
	}
	f.texSubImageCalls++
}

func (f *fakeDevice) GenVertexArray() uint32 {
	v := f.name()
	f.liveVAOs[v] = true
	return v
}

func (f *fakeDevice) DeleteVertexArray(vao uint32) { delete(f.liveVAOs, vao) }
func (f *fakeDevice) BindVertexArray(vao uint32)   {}

func (f *fakeDevice) GenBuffer() uint32 {
	b := f.name()
	f.buffers[b] = nil
	return b
}

func (f *fakeDevice) DeleteBuffer(buf uint32) { delete(f.buffers, buf) }

func (f *fakeDevice) StreamIndices(buf uint32, indices []uint16) {
	f.elementBuf = buf
	f.buffers[buf] = append([]uint16(nil), indices...)
}

func (f *fakeDevice) StreamFloats(buf uint32, data []float32) {
	f.arrayBuffer = buf
	f.buffers[buf] = append([]float32(nil), data...)
}

func (f *fakeDevice) StreamBytes(buf uint32, data []byte) {
	f.arrayBuffer = buf
	f.buffers[buf] = append([]byte(nil), data...)
}

func (f *fakeDevice) VertexAttribPointer(location uint32, size int, typ AttribType, normalized bool) {
	f.attribs[location] = &fakeAttrib{buffer: f.arrayBuffer, size: size}
}

func (f *fakeDevice) EnableVertexAttribArray(location uint32) { f.attribs[location].enabled = true }
func (f *fakeDevice) DisableVertexAttribArray(location uint32) {
	if a, ok := f.attribs[location]; ok {
		a.enabled = false
	}
}

func (f *fakeDevice) Enable(c Capability)      { f.enabled[c] = true }
func (f *fakeDevice) Disable(c Capability)     { f.enabled[c] = false }
func (f *fakeDevice) BlendPremultipliedAlpha() { f.blendPremult = true }

func (f *fakeDevice) Scissor(x, y, width, height int32) {
	f.scissor = [4]int32{x, y, width, height}
}

func (f *fakeDevice) Viewport(x, y, width, height int32) {
	f.viewport = [4]int32{x, y, width, height}
}

func (f *fakeDevice) DrawTriangles16(count int) {
	f.draws++
	f.scissors = append(f.scissors, f.scissor)
	f.drawTexes = append(f.drawTexes, f.boundTexture)

	indices := f.buffers[f.elementBuf].([]uint16)[:count]
	pos := f.buffers[f.attribs[0].buffer].([]float32)
	tc := f.buffers[f.attribs[1].buffer].([]float32)
	col := f.buffers[f.attribs[2].buffer].([]byte)
	tex := f.textures[f.boundTexture]

	for i := 0; i+2 < len(indices); i += 3 {
		var px [3][2]float32
		for j := range 3 {
			v := indices[i+j]
			// Points to pixels, origin at the upper left.
			px[j] = [2]float32{
				pos[2*v] / f.screenSize[0] * float32(f.viewport[2]),
				pos[2*v+1] / f.screenSize[1] * float32(f.viewport[3]),
			}
		}
		v0 := indices[i]
		texel := tex.sample(tc[2*v0], tc[2*v0+1])
		var src [4]float32
		for c := range 4 {
			src[c] = float32(col[4*int(v0)+c]) * texel[c] / 255
		}
		f.rasterize(px, src)
	}
}

func (t *fakeTexture) sample(u, v float32) [4]float32 {
	x := min(max(int(u*float32(t.width)), 0), t.width-1)
	y := min(max(int(v*float32(t.height)), 0), t.height-1)
	p := t.pixels[4*(y*t.width+x):]
	return [4]float32{float32(p[0]), float32(p[1]), float32(p[2]), float32(p[3])}
}

func edge(a, b [2]float32, x, y float32) float32 {
	return (b[0]-a[0])*(y-a[1]) - (b[1]-a[1])*(x-a[0])
}

func (f *fakeDevice) rasterize(tri [3][2]float32, src [4]float32) {
	for y := 0; y < f.fbHeight; y++ {
		for x := 0; x < f.fbWidth; x++ {
			if f.enabled[CapScissorTest] {
				yb := int32(f.fbHeight - 1 - y)
				sc := f.scissor
				if int32(x) < sc[0] || int32(x) >= sc[0]+sc[2] || yb < sc[1] || yb >= sc[1]+sc[3] {
					continue
				}
			}

			cx, cy := float32(x)+0.5, float32(y)+0.5
			e0, e1, e2 := edge(tri[0], tri[1], cx, cy), edge(tri[1], tri[2], cx, cy), edge(tri[2], tri[0], cx, cy)
			if !((e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0)) {
				continue
			}

			dst := f.fb[4*(y*f.fbWidth+x):]
			oneMinusSrcA := 1 - src[3]/255
			for c := range 4 {
				if f.enabled[CapBlend] {
					dst[c] = src[c] + dst[c]*oneMinusSrcA
				} else {
					dst[c] = src[c]
				}
			}
		}
	}
}

// pixel returns the framebuffer color at (x, y), with y measured from
// the top.
func (f *fakeDevice) pixel(x, y int) paint.Color32 {
	p := f.fb[4*(y*f.fbWidth+x):]
	var c paint.Color32
	for i := range 4 {
		c[i] = uint8(min(max(p[i]+0.5, 0), 255))
	}
	return c
}
