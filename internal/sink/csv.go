package sink

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/thirdweb-dev/receipt-stats/internal/common"
)

const csvBufferSize = 64 * 1024

// CSVWriter emits blockId,txCount,numLogs,numKeys,numDistinctKeys lines.
type CSVWriter struct {
	out  io.Writer
	buf  *bufio.Writer
	line []byte
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{
		out:  w,
		buf:  bufio.NewWriterSize(w, csvBufferSize),
		line: make([]byte, 0, 128),
	}
}

func (c *CSVWriter) Write(row common.ReceiptStats) error {
	line := c.line[:0]
	line = strconv.AppendUint(line, row.BlockID, 10)
	line = append(line, ',')
	line = strconv.AppendUint(line, row.TxCount, 10)
	line = append(line, ',')
	line = strconv.AppendUint(line, row.NumLogs, 10)
	line = append(line, ',')
	line = strconv.AppendUint(line, row.NumKeys, 10)
	line = append(line, ',')
	line = strconv.AppendUint(line, row.NumDistinctKeys, 10)
	line = append(line, '\n')
	c.line = line

	if _, err := c.buf.Write(line); err != nil {
		return errors.Wrap(err, "failed to write csv row")
	}
	return nil
}

func (c *CSVWriter) Close() error {
	flushErr := c.buf.Flush()
	closeErr := closeUnderlying(c.out)
	if flushErr != nil {
		return errors.Wrap(flushErr, "failed to flush csv output")
	}
	return errors.Wrap(closeErr, "failed to close csv output")
}
