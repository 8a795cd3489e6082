// cmd/glpaint-demo/ui.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/glpaint/glpaint/imguiframe"
	"github.com/glpaint/glpaint/math"
	"github.com/glpaint/glpaint/paint"
	"github.com/glpaint/glpaint/renderer"
	"github.com/glpaint/glpaint/util"

	"github.com/AllenDang/cimgui-go/imgui"
)

const (
	waveWidth  = 320
	waveHeight = 192
)

var (
	waveBackground = paint.Color32{16, 16, 32, 255}
	waveForeground = paint.Color32{255, 220, 64, 255}
)

type demoUI struct {
	painter *renderer.Painter
	config  *Config

	wave       paint.TextureID
	wavePixels []paint.Color32

	quit bool
}

func newDemoUI(p *renderer.Painter, config *Config) *demoUI {
	ui := &demoUI{
		painter:    p,
		config:     config,
		wavePixels: make([]paint.Color32, waveWidth*waveHeight),
	}
	ui.renderWave(0)
	ui.wave = p.NewUserTexture([2]int{waveWidth, waveHeight}, ui.wavePixels, paint.TextureFilterNearest)
	return ui
}

func (ui *demoUI) renderWave(t float32) {
	amp := math.Clamp(ui.config.Amplitude, 0, 1) * waveHeight / 2
	for x := range waveWidth {
		phase := 2 * 3.14159265 * float32(x) / waveWidth
		y := waveHeight/2 + amp*math.Sin(phase+t)
		for row := range waveHeight {
			ui.wavePixels[row*waveWidth+x] = util.Select(math.Abs(float32(row)-y) < 2, waveForeground, waveBackground)
		}
	}
}

// updateWave redraws the wave texture for time t, in seconds.
func (ui *demoUI) updateWave(t float32) {
	ui.renderWave(t)
	ui.painter.UpdateUserTextureData(ui.wave, ui.wavePixels)
}

func (ui *demoUI) draw(fps float32) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 20}, imgui.CondFirstUseEver, imgui.Vec2{})
	if imgui.Begin("glpaint") {
		imgui.Text(fmt.Sprintf("%.1f fps", fps))
		imgui.InputTextV("Text", &ui.config.Text, 0, nil)
		imgui.SliderFloat("Amplitude", &ui.config.Amplitude, 0, 1)
		imgui.Image(imguiframe.EncodeTextureID(ui.wave), imgui.Vec2{X: waveWidth, Y: waveHeight})
		if imgui.Button("Quit") {
			ui.quit = true
		}
	}
	imgui.End()
}

func (ui *demoUI) Dispose() {
	ui.painter.FreeTexture(ui.wave)
}
