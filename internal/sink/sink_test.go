package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	config "github.com/thirdweb-dev/receipt-stats/configs"
	"github.com/thirdweb-dev/receipt-stats/internal/common"
)

var rows = []common.ReceiptStats{
	{BlockID: 5, TxCount: 1, NumLogs: 1, NumKeys: 3, NumDistinctKeys: 2},
	{BlockID: 7, TxCount: 1, NumLogs: 1, NumKeys: 1, NumDistinctKeys: 1},
	{BlockID: 18446744073709551615},
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	for _, row := range rows {
		require.NoError(t, w.Write(row))
	}
	require.NoError(t, w.Close())

	assert.Equal(t, "5,1,1,3,2\n7,1,1,1,1\n18446744073709551615,0,0,0,0\n", buf.String())
}

func TestCSVWriterNoRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	require.NoError(t, w.Close())
	assert.Empty(t, buf.String())
}

func TestParquetWriterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewParquetWriter(&buf)
	for _, row := range rows {
		require.NoError(t, w.Write(row))
	}
	require.NoError(t, w.Close())

	got, err := parquet.Read[common.ReceiptStats](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestCreateWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.csv")
	w, err := Create(path, config.OutputFormatCSV)
	require.NoError(t, err)
	require.NoError(t, w.Write(rows[0]))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5,1,1,3,2\n", string(data))
}

func TestCreateUnwritablePath(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "stats.csv"), config.OutputFormatCSV)
	assert.Error(t, err)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml")
	assert.Error(t, err)
}
