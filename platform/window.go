// platform/window.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package platform creates the GLFW window and OpenGL context and turns
// the window's callbacks into events for the GUI toolkit.
package platform

import (
	"fmt"
	"runtime"

	"github.com/glpaint/glpaint/log"
	"github.com/glpaint/glpaint/paint"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Config struct {
	Title                 string
	InitialWindowSize     [2]int
	InitialWindowPosition [2]int

	EnableMSAA  bool
	EnableVSync bool
	Resizable   bool
}

func DefaultConfig() Config {
	return Config{
		Title:                 "glpaint",
		InitialWindowSize:     [2]int{800, 600},
		InitialWindowPosition: [2]int{100, 100},
		EnableVSync:           true,
		Resizable:             true,
	}
}

// Sanitize resets the window size and position if they are not sensible
// for a screen of the given resolution.
func (c *Config) Sanitize(screenWidth, screenHeight int) {
	if c.InitialWindowSize[0] <= 0 || c.InitialWindowSize[1] <= 0 ||
		(screenWidth > 0 && c.InitialWindowSize[0] > screenWidth) ||
		(screenHeight > 0 && c.InitialWindowSize[1] > screenHeight) {
		c.InitialWindowSize = [2]int{800, 600}
	}

	// If window position is out of bounds, create the window at (100, 100)
	if c.InitialWindowPosition[0] < 0 || c.InitialWindowPosition[1] < 0 ||
		(screenWidth > 0 && c.InitialWindowPosition[0] > screenWidth) ||
		(screenHeight > 0 && c.InitialWindowPosition[1] > screenHeight) {
		c.InitialWindowPosition = [2]int{100, 100}
	}
	if c.Title == "" {
		c.Title = "glpaint"
	}
}

// Window is a GLFW window with a current OpenGL 3.2 core context. Its
// callbacks queue WindowEvents that are returned by PollEvents.
type Window struct {
	window *glfw.Window
	config *Config
	lg     *log.Logger

	events []WindowEvent

	cursors       map[glfw.StandardCursor]*glfw.Cursor
	currentCursor paint.CursorIcon
	cursorHidden  bool
}

// NewWindow initializes GLFW and opens a window as described by config,
// which is updated with the sanitized values actually used. The window's
// context is made current on the calling thread, which should be locked
// to its OS thread.
func NewWindow(config *Config, lg *log.Logger) (*Window, error) {
	lg.Info("Starting GLFW initialization")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}
	lg.Infof("GLFW: %s", glfw.GetVersionString())

	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		vm := monitor.GetVideoMode()
		config.Sanitize(vm.Width, vm.Height)
	} else {
		config.Sanitize(0, 0)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolHint(config.Resizable))
	// Start with an invisible window so that we can position it first
	glfw.WindowHint(glfw.Visible, glfw.False)
	if config.EnableMSAA {
		glfw.WindowHint(glfw.Samples, 4)
	}

	window, err := glfw.CreateWindow(config.InitialWindowSize[0], config.InitialWindowSize[1], config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.SetPos(config.InitialWindowPosition[0], config.InitialWindowPosition[1])
	window.Show()
	window.MakeContextCurrent()

	w := &Window{
		window:  window,
		config:  config,
		lg:      lg,
		cursors: make(map[glfw.StandardCursor]*glfw.Cursor),
	}
	w.installCallbacks()
	w.EnableVSync(config.EnableVSync)

	lg.Info("Finished GLFW initialization")
	return w, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (w *Window) installCallbacks() {
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events = append(w.events, FramebufferSizeEvent{Width: width, Height: height})
	})
	w.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		w.events = append(w.events, MouseButtonEvent{Button: button, Action: action, Mods: mods})
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events = append(w.events, CursorPosEvent{X: x, Y: y})
	})
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		w.events = append(w.events, KeyEvent{Key: key, Scancode: scancode, Action: action, Mods: mods})
	})
	w.window.SetCharCallback(func(_ *glfw.Window, char rune) {
		w.events = append(w.events, CharEvent{Char: char})
	})
	w.window.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		w.events = append(w.events, ScrollEvent{X: x, Y: y})
	})
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.events = append(w.events, CloseEvent{})
	})
}

// PollEvents processes pending window system events and returns the
// events that were queued since the last call.
func (w *Window) PollEvents() []WindowEvent {
	glfw.PollEvents()
	ev := w.events
	w.events = nil
	return ev
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SetShouldClose(c bool) {
	w.window.SetShouldClose(c)
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) EnableVSync(sync bool) {
	if sync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

// Time returns the number of seconds since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) FramebufferSize() [2]int {
	fw, fh := w.window.GetFramebufferSize()
	return [2]int{fw, fh}
}

func (w *Window) WindowSize() [2]int {
	ww, wh := w.window.GetSize()
	return [2]int{ww, wh}
}

func (w *Window) WindowPosition() [2]int {
	x, y := w.window.GetPos()
	return [2]int{x, y}
}

// ContentScale returns the ratio between the window's content scale and
// a standard-density display; it's a reasonable pixels-per-point value.
func (w *Window) ContentScale() float32 {
	sx, sy := w.window.GetContentScale()
	if s := (sx + sy) / 2; s > 0 {
		return s
	}
	return 1
}

func (w *Window) SetTitle(title string) {
	if title != w.config.Title {
		w.window.SetTitle(title)
		w.config.Title = title
	}
}

// SetCursorIcon displays the GLFW cursor closest to the given icon.
// Cursors are created on first use.
func (w *Window) SetCursorIcon(icon paint.CursorIcon) {
	if icon == paint.CursorNone {
		if !w.cursorHidden {
			w.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
			w.cursorHidden = true
		}
		return
	}
	if w.cursorHidden {
		w.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		w.cursorHidden = false
	}
	if icon == w.currentCursor {
		return
	}

	shape := TranslateCursor(icon)
	c, ok := w.cursors[shape]
	if !ok {
		c = glfw.CreateStandardCursor(shape)
		w.cursors[shape] = c
	}
	w.window.SetCursor(c)
	w.currentCursor = icon
}

// Clipboard returns a Clipboard that uses GLFW's clipboard functions.
func (w *Window) Clipboard() Clipboard {
	return glfwClipboard{window: w.window}
}

// UpdateConfig records the window's current size and position in its
// config so that they can be saved.
func (w *Window) UpdateConfig() {
	w.config.InitialWindowSize = w.WindowSize()
	w.config.InitialWindowPosition = w.WindowPosition()
}

func (w *Window) Dispose() {
	for _, c := range w.cursors {
		c.Destroy()
	}
	w.window.Destroy()
	glfw.Terminate()
	w.lg.Info("Disposed window")
}
