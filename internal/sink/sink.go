package sink

import (
	"io"
	"os"

	"github.com/pkg/errors"
	config "github.com/thirdweb-dev/receipt-stats/configs"
	"github.com/thirdweb-dev/receipt-stats/internal/common"
)

// RowWriter receives one stats row per block in input order. Close flushes
// buffered rows and must be called on every exit path.
type RowWriter interface {
	Write(row common.ReceiptStats) error
	Close() error
}

// Create opens path for writing and returns the writer for format.
func Create(path string, format config.OutputFormat) (RowWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create output %s", path)
	}
	return New(f, format)
}

// New wraps w. The returned writer owns w and closes it when w is an
// io.Closer.
func New(w io.Writer, format config.OutputFormat) (RowWriter, error) {
	switch format {
	case config.OutputFormatCSV, "":
		return NewCSVWriter(w), nil
	case config.OutputFormatParquet:
		return NewParquetWriter(w), nil
	default:
		if c, ok := w.(io.Closer); ok {
			c.Close()
		}
		return nil, errors.Errorf("unsupported output format %q", format)
	}
}

func closeUnderlying(w io.Writer) error {
	if c, ok := w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
