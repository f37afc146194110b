package source

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	config "github.com/thirdweb-dev/receipt-stats/configs"
)

// Stream is a decompressed view over an opened input. Close releases the
// codec first and then the underlying file or object body.
type Stream struct {
	io.Reader
	closers []io.Closer
}

func (s *Stream) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}

// Open resolves location (a local path or s3://bucket/key) and returns the
// decompressed byte stream.
func Open(ctx context.Context, location string, cfg *config.InputConfig) (*Stream, error) {
	compression, err := ParseCompression(cfg.Compression)
	if err != nil {
		return nil, err
	}

	var raw io.ReadCloser
	if isS3Location(location) {
		raw, err = openS3(ctx, location, &cfg.S3)
		if err != nil {
			return nil, err
		}
	} else {
		f, err := os.Open(location)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open input %s", location)
		}
		raw = f
	}

	decompressed, err := Decompress(raw, compression, cfg.BufferSize)
	if err != nil {
		raw.Close()
		return nil, errors.WithMessagef(err, "input %s", location)
	}

	return &Stream{
		Reader:  decompressed,
		closers: []io.Closer{decompressed, raw},
	}, nil
}
