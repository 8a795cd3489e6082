// cmd/framereplay/main.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// framereplay paints the frames in a capture made with glpaint-demo
// -capture through the painter, without a GPU, and reports what the
// painter did.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/glpaint/glpaint/capture"
	"github.com/glpaint/glpaint/log"
	"github.com/glpaint/glpaint/paint"
	"github.com/glpaint/glpaint/renderer"
	"github.com/glpaint/glpaint/util"

	"github.com/goforj/godump"
)

var (
	logLevel      = flag.String("loglevel", "warn", "logging level: debug, info, warn, error")
	dumpFrame     = flag.Int("dump", -1, "dump the contents of the given frame")
	skipCallbacks = flag.Bool("skipcallbacks", false, "drop callback primitives rather than failing on them")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: framereplay [flags] capture-file\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	lg := log.NewWriter(os.Stderr, *logLevel)

	rd, err := capture.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer rd.Close()

	fmt.Printf("%s: recorded %s\n", flag.Arg(0), rd.Header.Created.Local().Format("2006-01-02 15:04:05"))

	stats, dev, err := replay(rd, lg, func(fr *capture.Frame) {
		if fr.Index == *dumpFrame {
			godump.Dump(summarize(fr))
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Println(stats.String())
	fmt.Printf("%d draw calls, %d indices, %.2f MiB of buffers, %.2f MiB of textures\n", dev.draws, dev.indices,
		float32(dev.bufferBytes)/(1024*1024), float32(dev.textureBytes)/(1024*1024))
	if leaks := dev.leaks(); len(leaks) > 0 {
		for _, kind := range util.SortedMapKeys(leaks) {
			fmt.Printf("leaked %d %s object(s)\n", leaks[kind], kind)
		}
		os.Exit(1)
	}
}

// replay paints every frame from rd and returns the accumulated painter
// statistics along with the device, which has been disposed of.
func replay(rd *capture.Reader, lg *log.Logger, visit func(*capture.Frame)) (renderer.RendererStats, *countingDevice, error) {
	dev := newCountingDevice()
	var stats renderer.RendererStats

	var painter *renderer.Painter
	for {
		fr, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return stats, dev, err
		}
		visit(fr)

		if painter == nil {
			if painter, err = renderer.NewPainter(dev, fr.CanvasSize[0], fr.CanvasSize[1], lg); err != nil {
				return stats, dev, err
			}
		} else {
			painter.SetCanvasSize(fr.CanvasSize[0], fr.CanvasSize[1])
		}

		prims := fr.ClippedPrimitives()
		if *skipCallbacks {
			prims = util.FilterSlice(prims, func(cp paint.ClippedPrimitive) bool {
				_, ok := cp.Primitive.(*paint.Mesh)
				return ok
			})
		}
		painter.PaintAndUpdateTextures(fr.PixelsPerPoint, prims, fr.TexturesDelta())
	}

	if painter != nil {
		stats = painter.TakeStats()
		painter.Dispose()
	}
	return stats, dev, nil
}

type frameSummary struct {
	Index          int
	PixelsPerPoint float32
	CanvasSize     [2]int
	TexturesSet    []string
	TexturesFreed  []string
	Meshes         int
	Vertices       int
	Indices        int
	Callbacks      int
}

func summarize(fr *capture.Frame) frameSummary {
	s := frameSummary{Index: fr.Index, PixelsPerPoint: fr.PixelsPerPoint, CanvasSize: fr.CanvasSize}
	for _, t := range fr.Set {
		kind := util.Select(t.Pos == nil, "full", "partial")
		s.TexturesSet = append(s.TexturesSet, fmt.Sprintf("%s %s %dx%d", t.ID, kind, t.Width, t.Height))
	}
	s.TexturesFreed = util.MapSlice(fr.Free, paint.TextureID.String)
	s.Meshes, s.Vertices, s.Indices = fr.NumMeshes()
	s.Callbacks = len(fr.Primitives) - s.Meshes
	return s
}
