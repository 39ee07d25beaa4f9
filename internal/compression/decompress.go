// Package compression provides the stream codecs used for store backups.
package compression

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/paletto/internal/security"
)

// DefaultLimit caps the decompressed size of a backup.
const DefaultLimit = 32 * 1024 * 1024

// Format identifies a backup encoding.
type Format string

const (
	FormatPlain Format = "plain"
	FormatGzip  Format = "gzip"
	FormatXZ    Format = "xz"
)

var (
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	gzipMagic = []byte{0x1f, 0x8b}
)

// FormatForPath picks a format from a file extension; unknown extensions are plain.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return FormatXZ
	case ".gz":
		return FormatGzip
	default:
		return FormatPlain
	}
}

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPlain, FormatGzip, FormatXZ:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported compression format: %s (valid: plain, gzip, xz)", s)
	}
}

// NewWriter returns a writer that encodes to w in the given format.
// Closing the returned writer flushes the encoder but does not close w.
func NewWriter(w io.Writer, format Format) (io.WriteCloser, error) {
	switch format {
	case FormatXZ:
		xzw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzw, nil
	case FormatGzip:
		return gzip.NewWriter(w), nil
	case FormatPlain, "":
		return nopCloser{w}, nil
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}
}

// NewReader detects the encoding of r from its magic bytes and returns a
// decoding reader limited to maxBytes of output.
func NewReader(r io.Reader, maxBytes int64) (io.Reader, Format, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(xzMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("failed to read header: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, xzMagic):
		xzr, err := xz.NewReader(br)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create xz reader: %w", err)
		}
		return security.NewLimitedReader(xzr, maxBytes), FormatXZ, nil
	case bytes.HasPrefix(head, gzipMagic):
		gzr, err := gzip.NewReader(br)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return security.NewLimitedReader(gzr, maxBytes), FormatGzip, nil
	default:
		return security.NewLimitedReader(br, maxBytes), FormatPlain, nil
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
