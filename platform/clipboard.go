// platform/clipboard.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"errors"

	"github.com/glpaint/glpaint/log"

	atotto "github.com/atotto/clipboard"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.design/x/clipboard"
)

// Clipboard is the system clipboard, for text.
type Clipboard interface {
	GetText() (string, error)
	SetText(text string) error
}

// InitClipboard returns the best available system clipboard. It tries
// the native clipboard first, then the command-line clipboard tools, and
// finally the clipboard of the given window, which may be nil. It returns
// nil if none is available, in which case copy and paste are disabled.
func InitClipboard(w *Window, lg *log.Logger) Clipboard {
	err := clipboard.Init()
	if err == nil {
		lg.Info("Using native clipboard")
		return nativeClipboard{}
	}
	lg.Warnf("Native clipboard unavailable: %v", err)

	if !atotto.Unsupported {
		lg.Info("Using command-line clipboard")
		return commandClipboard{}
	}

	if w != nil {
		lg.Info("Using GLFW clipboard")
		return w.Clipboard()
	}

	lg.Warn("Failed to initialize clipboard; copy and paste are disabled")
	return nil
}

type nativeClipboard struct{}

func (nativeClipboard) GetText() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (nativeClipboard) SetText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

type commandClipboard struct{}

func (commandClipboard) GetText() (string, error) {
	return atotto.ReadAll()
}

func (commandClipboard) SetText(text string) error {
	return atotto.WriteAll(text)
}

var ErrNoWindow = errors.New("window has been destroyed")

type glfwClipboard struct {
	window *glfw.Window
}

func (cb glfwClipboard) GetText() (string, error) {
	if cb.window == nil {
		return "", ErrNoWindow
	}
	return cb.window.GetClipboardString(), nil
}

func (cb glfwClipboard) SetText(text string) error {
	if cb.window == nil {
		return ErrNoWindow
	}
	cb.window.SetClipboardString(text)
	return nil
}
