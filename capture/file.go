// capture/file.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package capture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/glpaint/glpaint/log"
	"github.com/glpaint/glpaint/paint"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Recorder writes frames to a capture stream.
type Recorder struct {
	zw     *zstd.Encoder
	enc    *msgpack.Encoder
	closer io.Closer
	frames int
	lg     *log.Logger
}

// Create creates a capture file at path, replacing any existing one.
func Create(path string, lg *log.Logger) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	lg = lg.With("capture", path)
	r, err := NewRecorder(f, lg)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	lg.Info("recording frames")
	return r, nil
}

func NewRecorder(w io.Writer, lg *log.Logger) (*Recorder, error) {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest), zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	r := &Recorder{zw: zw, enc: msgpack.NewEncoder(zw), lg: lg}
	if err := r.enc.Encode(Header{Magic: Magic, Version: Version, Created: time.Now().UTC()}); err != nil {
		zw.Close()
		return nil, fmt.Errorf("capture header: %w", err)
	}
	return r, nil
}

// Record appends a frame with the arguments of a
// Painter.PaintAndUpdateTextures call.
func (r *Recorder) Record(ppp float32, canvasSize [2]int, prims []paint.ClippedPrimitive, delta paint.TexturesDelta) error {
	fr := Frame{
		Index:          r.frames,
		PixelsPerPoint: ppp,
		CanvasSize:     canvasSize,
		Free:           delta.Free,
	}
	for _, u := range delta.Set {
		fr.Set = append(fr.Set, newTextureRecord(u))
	}
	for _, cp := range prims {
		fr.Primitives = append(fr.Primitives, newPrimitiveRecord(cp))
	}

	if err := r.enc.Encode(&fr); err != nil {
		return fmt.Errorf("capture frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

func (r *Recorder) Frames() int {
	return r.frames
}

// Close flushes the stream and closes the underlying file, if the
// recorder was made by Create.
func (r *Recorder) Close() error {
	err := r.zw.Close()
	if r.closer != nil {
		err = errors.Join(err, r.closer.Close())
	}
	r.lg.Infof("capture closed after %d frames", r.frames)
	return err
}

// Reader reads frames from a capture stream.
type Reader struct {
	Header Header

	zr     *zstd.Decoder
	dec    *msgpack.Decoder
	closer io.Closer
}

var ErrNotCapture = errors.New("not a glpaint capture")

func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.closer = f
	return r, nil
}

func NewReader(rd io.Reader) (*Reader, error) {
	zr, err := zstd.NewReader(rd, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, err
	}

	r := &Reader{zr: zr, dec: msgpack.NewDecoder(zr)}
	if err := r.dec.Decode(&r.Header); err != nil {
		zr.Close()
		return nil, errors.Join(ErrNotCapture, err)
	}
	if r.Header.Magic != Magic {
		zr.Close()
		return nil, ErrNotCapture
	}
	if r.Header.Version != Version {
		zr.Close()
		return nil, fmt.Errorf("capture version %d: only version %d is supported", r.Header.Version, Version)
	}
	return r, nil
}

// Next returns the next frame in the stream, or io.EOF after the last
// one.
func (r *Reader) Next() (*Frame, error) {
	var fr Frame
	if err := r.dec.Decode(&fr); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("capture frame: %w", err)
	}
	return &fr, nil
}

func (r *Reader) Close() error {
	r.zr.Close()
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
