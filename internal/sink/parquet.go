package sink

import (
	"io"

	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
	"github.com/thirdweb-dev/receipt-stats/internal/common"
)

var writerOptions = []parquet.WriterOption{
	parquet.Compression(&parquet.Zstd),
	parquet.DataPageStatistics(true),
}

// rows are buffered and written in batches to keep row groups reasonably sized
const parquetBatchSize = 4096

type ParquetWriter struct {
	out    io.Writer
	writer *parquet.GenericWriter[common.ReceiptStats]
	batch  []common.ReceiptStats
}

func NewParquetWriter(w io.Writer) *ParquetWriter {
	return &ParquetWriter{
		out:    w,
		writer: parquet.NewGenericWriter[common.ReceiptStats](w, writerOptions...),
		batch:  make([]common.ReceiptStats, 0, parquetBatchSize),
	}
}

func (p *ParquetWriter) Write(row common.ReceiptStats) error {
	p.batch = append(p.batch, row)
	if len(p.batch) >= parquetBatchSize {
		return p.flush()
	}
	return nil
}

func (p *ParquetWriter) flush() error {
	if len(p.batch) == 0 {
		return nil
	}
	if _, err := p.writer.Write(p.batch); err != nil {
		return errors.Wrap(err, "failed to write parquet rows")
	}
	p.batch = p.batch[:0]
	return nil
}

func (p *ParquetWriter) Close() error {
	flushErr := p.flush()
	closeWriterErr := p.writer.Close()
	closeErr := closeUnderlying(p.out)
	switch {
	case flushErr != nil:
		return flushErr
	case closeWriterErr != nil:
		return errors.Wrap(closeWriterErr, "failed to close parquet writer")
	default:
		return errors.Wrap(closeErr, "failed to close parquet output")
	}
}
