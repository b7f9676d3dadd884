// SPDX-License-Identifier: MIT
package streamio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec names a compression format.
type Codec string

// Supported codecs.
const (
	CodecNone Codec = "none"
	CodecGzip Codec = "gzip"
	CodecZstd Codec = "zstd"
	CodecLZ4  Codec = "lz4"
)

// ErrUnknownCodec is returned for codec names outside the supported set.
var ErrUnknownCodec = errors.New("streamio: unknown codec")

// StdStream is the path naming stdin for Open and stdout for Create.
const StdStream = "-"

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// ParseCodec maps a user-facing name to a Codec. The empty string is CodecNone.
func ParseCodec(s string) (Codec, error) {
	switch c := Codec(strings.ToLower(strings.TrimSpace(s))); c {
	case "", CodecNone:
		return CodecNone, nil
	case CodecGzip, "gz", "bgzf":
		return CodecGzip, nil
	case CodecZstd, "zst":
		return CodecZstd, nil
	case CodecLZ4:
		return CodecLZ4, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCodec, s)
	}
}

// CodecForPath guesses the output codec from a file extension.
func CodecForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".bgz":
		return CodecGzip
	case ".zst", ".zstd":
		return CodecZstd
	case ".lz4":
		return CodecLZ4
	default:
		return CodecNone
	}
}

// Detect peeks at br and reports the codec its content starts with.
// Nothing is consumed.
func Detect(br *bufio.Reader) (Codec, error) {
	head, err := br.Peek(len(magicZstd))
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("streamio: peek: %w", err)
	}
	switch {
	case bytes.HasPrefix(head, magicGzip):
		return CodecGzip, nil
	case bytes.HasPrefix(head, magicZstd):
		return CodecZstd, nil
	case bytes.HasPrefix(head, magicLZ4):
		return CodecLZ4, nil
	default:
		return CodecNone, nil
	}
}

// NewReader wraps r with the decompressor its magic bytes call for.
// Closing the result releases the decompressor but not r.
func NewReader(r io.Reader) (io.ReadCloser, Codec, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	codec, err := Detect(br)
	if err != nil {
		return nil, "", err
	}

	switch codec {
	case CodecGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, codec, fmt.Errorf("streamio: gzip: %w", err)
		}
		// BGZF is a series of gzip members; keep reading across them.
		zr.Multistream(true)
		return zr, codec, nil
	case CodecZstd:
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, codec, fmt.Errorf("streamio: zstd: %w", err)
		}
		return dec.IOReadCloser(), codec, nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(br)), codec, nil
	default:
		return io.NopCloser(br), codec, nil
	}
}

// Open opens path (or stdin for "-") for reading with transparent decompression.
func Open(path string) (io.ReadCloser, error) {
	var f *os.File
	if path == StdStream {
		f = os.Stdin
	} else {
		var err error
		if f, err = os.Open(path); err != nil {
			return nil, fmt.Errorf("streamio: %w", err)
		}
	}
	rc, _, err := NewReader(f)
	if err != nil {
		closeFile(f)
		return nil, fmt.Errorf("streamio: %s: %w", path, err)
	}

	return &stack{Reader: rc, closers: []io.Closer{rc, fileCloser{f}}}, nil
}

// NewWriter wraps w with a compressor for codec.
// Closing the result flushes the compressor but does not close w.
func NewWriter(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case CodecNone, "":
		return nopWriteCloser{w}, nil
	case CodecGzip:
		zw, err := gzip.NewWriterLevel(w, gzip.DefaultCompression)
		if err != nil {
			return nil, fmt.Errorf("streamio: gzip: %w", err)
		}
		return zw, nil
	case CodecZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("streamio: zstd: %w", err)
		}
		return enc, nil
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
	}
}

// Create opens path (or stdout for "-") for writing through codec.
// The returned writer is buffered; Close flushes every layer in order.
func Create(path string, codec Codec) (io.WriteCloser, error) {
	var f *os.File
	if path == StdStream {
		f = os.Stdout
	} else {
		var err error
		if f, err = os.Create(path); err != nil {
			return nil, fmt.Errorf("streamio: %w", err)
		}
	}
	bw := bufio.NewWriterSize(f, 64<<10)
	cw, err := NewWriter(bw, codec)
	if err != nil {
		closeFile(f)
		return nil, err
	}

	return &writeStack{Writer: cw, closers: []io.Closer{cw, flusher{bw}, fileCloser{f}}}, nil
}

// stack reads from Reader and closes every layer, innermost last.
type stack struct {
	io.Reader
	closers []io.Closer
}

func (s *stack) Close() error { return closeAll(s.closers) }

type writeStack struct {
	io.Writer
	closers []io.Closer
}

func (s *writeStack) Close() error { return closeAll(s.closers) }

func closeAll(cs []io.Closer) error {
	var errs []error
	for _, c := range cs {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

type flusher struct{ *bufio.Writer }

func (f flusher) Close() error { return f.Flush() }

// fileCloser never closes the process's standard streams.
type fileCloser struct{ f *os.File }

func (c fileCloser) Close() error {
	if c.f == os.Stdin || c.f == os.Stdout {
		return nil
	}

	return c.f.Close()
}

func closeFile(f *os.File) { _ = fileCloser{f}.Close() }
