package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

type Compression string

const (
	CompressionAuto Compression = "auto"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
	CompressionNone Compression = "none"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CompressionAuto, nil
	case CompressionAuto, CompressionGzip, CompressionZstd, CompressionLZ4, CompressionNone:
		return c, nil
	default:
		return "", fmt.Errorf("unsupported compression %q", s)
	}
}

// Sniff identifies the codec from the leading bytes of a stream. Streams that
// match no known frame header are treated as uncompressed.
func Sniff(header []byte) Compression {
	switch {
	case bytes.HasPrefix(header, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(header, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(header, lz4Magic):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Decompress wraps r so that reads yield decompressed bytes. Closing the
// returned reader releases the codec but not r.
func Decompress(r io.Reader, c Compression, bufferSize int) (io.ReadCloser, error) {
	buffered := bufio.NewReaderSize(r, bufferSize)

	if c == CompressionAuto {
		// a short or empty stream is left for the JSON reader to reject
		header, err := buffered.Peek(len(zstdMagic))
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return nil, errors.Wrap(err, "failed to read input header")
		}
		c = Sniff(header)
	}

	switch c {
	case CompressionGzip:
		zr, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open gzip stream")
		}
		return zr, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(buffered, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, errors.Wrap(err, "failed to open zstd stream")
		}
		return zr.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(buffered)), nil
	case CompressionNone:
		return io.NopCloser(buffered), nil
	default:
		return nil, fmt.Errorf("unsupported compression %q", c)
	}
}
