// Package record stores rendered frames as a zstd-compressed stream and plays them back.
//
// A recording is a fixed header followed by one compressed stream of frame records.
// Every record carries the xxhash64 digest of its cells so playback detects corruption.
package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/lixenwraith/ascii-cube/orient"
	"github.com/lixenwraith/ascii-cube/render"
	"github.com/lixenwraith/ascii-cube/scene"
)

// Sentinel errors
var (
	ErrBadMagic       = errors.New("not a cube recording")
	ErrBadVersion     = errors.New("unsupported recording version")
	ErrGridMismatch   = errors.New("frame grid does not match recording")
	ErrDigestMismatch = errors.New("frame digest mismatch")
	ErrTruncated      = errors.New("recording truncated")
)

const (
	magic   = "ACUBEREC"
	version = 1
)

// Compression codecs; only zstd is written
const (
	CompNone uint8 = 0
	CompZstd uint8 = 2
)

// fileHeader is the uncompressed prefix after the magic
type fileHeader struct {
	Version uint8
	Comp    uint8
	Width   uint16
	Height  uint16
	K1      float64
}

// frameHeader precedes each frame's cells inside the compressed stream
type frameHeader struct {
	Mode    uint8
	A, B, C float64
	Digest  uint64
}

// Frame is one recorded tick
type Frame struct {
	Mode   scene.Mode
	State  orient.State
	Buffer *render.FrameBuffer
}

// Writer appends frames to a recording
type Writer struct {
	enc    *zstd.Encoder
	grid   render.Grid
	frames int
}

// NewWriter writes the header for grid to w and returns a frame writer
// Close must be called to flush the compressed stream; it does not close w
func NewWriter(w io.Writer, grid render.Grid) (*Writer, error) {
	if grid.Width <= 0 || grid.Width > math.MaxUint16 || grid.Height <= 0 || grid.Height > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridMismatch, grid.Width, grid.Height)
	}
	if _, err := io.WriteString(w, magic); err != nil {
		return nil, err
	}
	hdr := fileHeader{
		Version: version,
		Comp:    CompZstd,
		Width:   uint16(grid.Width),
		Height:  uint16(grid.Height),
		K1:      grid.K1,
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return nil, err
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	return &Writer{enc: enc, grid: grid}, nil
}

// WriteFrame appends one frame; its buffer must use the recording's grid
func (w *Writer) WriteFrame(f Frame) error {
	if f.Buffer.Grid() != w.grid {
		return ErrGridMismatch
	}
	hdr := frameHeader{
		Mode:   uint8(f.Mode),
		A:      f.State.A,
		B:      f.State.B,
		C:      f.State.C,
		Digest: f.Buffer.Digest(),
	}
	if err := binary.Write(w.enc, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("frame %d: %w", w.frames, err)
	}
	if _, err := w.enc.Write(f.Buffer.Cells); err != nil {
		return fmt.Errorf("frame %d: %w", w.frames, err)
	}
	w.frames++
	return nil
}

// Frames returns the number of frames written
func (w *Writer) Frames() int {
	return w.frames
}

// Close flushes the compressed stream
func (w *Writer) Close() error {
	return w.enc.Close()
}

// Reader plays back a recording frame by frame
type Reader struct {
	dec   *zstd.Decoder
	src   io.Reader
	grid  render.Grid
	index int
}

// NewReader validates the header and prepares the frame stream
func NewReader(r io.Reader) (*Reader, error) {
	var m [len(magic)]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMagic, err)
	}
	if string(m[:]) != magic {
		return nil, ErrBadMagic
	}
	var hdr fileHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrTruncated, err)
	}
	if hdr.Version != version {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, hdr.Version)
	}
	if hdr.Width == 0 || hdr.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridMismatch, hdr.Width, hdr.Height)
	}

	rd := &Reader{
		grid: render.Grid{Width: int(hdr.Width), Height: int(hdr.Height), K1: hdr.K1},
		src:  r,
	}
	switch hdr.Comp {
	case CompZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		rd.dec = dec
		rd.src = dec
	case CompNone:
	default:
		return nil, fmt.Errorf("%w: compression %d", ErrBadVersion, hdr.Comp)
	}
	return rd, nil
}

// Grid returns the recorded output geometry
func (r *Reader) Grid() render.Grid {
	return r.grid
}

// Next returns the next frame, or io.EOF after the last one
func (r *Reader) Next() (Frame, error) {
	var hdr frameHeader
	if err := binary.Read(r.src, binary.LittleEndian, &hdr); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("%w: frame %d: %w", ErrTruncated, r.index, err)
	}

	buf := render.NewFrameBuffer(r.grid)
	if _, err := io.ReadFull(r.src, buf.Cells); err != nil {
		return Frame{}, fmt.Errorf("%w: frame %d: %w", ErrTruncated, r.index, err)
	}
	if buf.Digest() != hdr.Digest {
		return Frame{}, fmt.Errorf("%w: frame %d", ErrDigestMismatch, r.index)
	}

	mode := scene.Mode(hdr.Mode)
	if !mode.Valid() {
		return Frame{}, fmt.Errorf("frame %d: %w: %d", r.index, scene.ErrUnknownMode, hdr.Mode)
	}
	r.index++
	return Frame{
		Mode:   mode,
		State:  orient.State{A: hdr.A, B: hdr.B, C: hdr.C},
		Buffer: buf,
	}, nil
}

// Close releases the decoder; it does not close the underlying reader
func (r *Reader) Close() {
	if r.dec != nil {
		r.dec.Close()
	}
}
