// cmd/glpaint-demo/main.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// glpaint-demo opens a window, draws a spinning triangle with raw OpenGL,
// and paints a small imgui user interface over it with renderer.Painter.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/glpaint/glpaint/capture"
	"github.com/glpaint/glpaint/imguiframe"
	"github.com/glpaint/glpaint/log"
	"github.com/glpaint/glpaint/platform"
	"github.com/glpaint/glpaint/renderer"
	"github.com/glpaint/glpaint/renderer/opengl"

	"github.com/apenwarr/fixconsole"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	// Command-line options are only used for developer features.
	logLevel    = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir      = flag.String("logdir", "", "log file directory")
	captureFile = flag.String("capture", "", "record painted frames to this file")
	configFile  = flag.String("config", "", "config file to use instead of the default")
)

func init() {
	// GLFW and OpenGL calls must all be made from the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	if err := fixconsole.FixConsoleIfNeeded(); err != nil {
		fmt.Printf("FixConsole: %v\n", err)
	}

	lg := log.New(*logLevel, *logDir)
	defer lg.CatchAndReportCrash()

	configPath := configFilePath(*configFile, lg)
	config, err := LoadOrMakeDefaultConfig(configPath, lg)
	if err != nil {
		lg.Warnf("%s: saved configuration is corrupt; using defaults: %v", configPath, err)
	}

	win, err := platform.NewWindow(&config.Config, lg)
	if err != nil {
		lg.Errorf("Unable to create application window: %v", err)
		os.Exit(1)
	}

	dev, err := opengl.NewDevice(lg)
	if err != nil {
		lg.Errorf("%v", err)
		os.Exit(1)
	}

	fb := win.FramebufferSize()
	painter, err := renderer.NewPainter(dev, fb[0], fb[1], lg)
	if err != nil {
		lg.Errorf("Unable to create painter: %v", err)
		os.Exit(1)
	}
	tri, err := newTriangle(dev)
	if err != nil {
		lg.Errorf("Unable to create triangle: %v", err)
		os.Exit(1)
	}

	var rec *capture.Recorder
	if *captureFile != "" {
		if rec, err = capture.Create(*captureFile, lg); err != nil {
			lg.Errorf("%v", err)
			os.Exit(1)
		}
	}

	ppp := config.PixelsPerPoint
	if ppp == 0 {
		ppp = win.ContentScale()
	}
	lg.Infof("Pixels per point: %.2f", ppp)

	clip := platform.InitClipboard(win, lg)
	state := platform.NewInputState(ppp, clip, lg)
	state.HandleEvent(platform.FramebufferSizeEvent{Width: fb[0], Height: fb[1]})

	frame := imguiframe.New(clip, lg)
	ui := newDemoUI(painter, config)

	lastTime := win.Time()
	for !win.ShouldClose() && !ui.quit {
		for _, ev := range win.PollEvents() {
			state.HandleEvent(ev)
			switch e := ev.(type) {
			case platform.FramebufferSizeEvent:
				painter.SetCanvasSize(e.Width, e.Height)
			case platform.KeyEvent:
				// Escape quits unless a text field has it.
				if e.Key == glfw.KeyEscape && e.Action == glfw.Press && !frame.WantsKeyboard() {
					ui.quit = true
				}
			}
		}

		now := win.Time()
		fps := float32(1 / max(now-lastTime, 1e-6))
		lastTime = now
		state.Input.Time = &now

		frame.Begin(state.Input.Take())
		ui.draw(fps)
		out := frame.End()

		ui.updateWave(float32(now))

		canvas := painter.CanvasSize()
		dev.Clear(0.1, 0.1, 0.12, 1)
		tri.draw(float32(now)/2, canvas)

		painter.PaintAndUpdateTextures(ppp, out.Primitives, out.Textures)
		if rec != nil {
			if err := rec.Record(ppp, canvas, out.Primitives, out.Textures); err != nil {
				lg.Errorf("%v", err)
				rec.Close()
				rec = nil
			}
		}
		dev.CheckError("frame")

		state.CopyToClipboard(out.Platform.CopiedText)
		win.SetCursorIcon(out.Platform.CursorIcon)
		win.SwapBuffers()
	}

	lg.Info("Renderer statistics", "stats", painter.TakeStats())

	if rec != nil {
		if err := rec.Close(); err != nil {
			lg.Errorf("%v", err)
		}
	}

	win.UpdateConfig()
	config.SaveIfChanged(configPath, lg)

	ui.Dispose()
	frame.Dispose()
	tri.Dispose()
	painter.Dispose()
	win.Dispose()
}
