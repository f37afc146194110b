package pipeline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/receipt-stats/internal/sink"
)

const archive = `[
	{"number":"5","transactions":[{"hash":"0xt1","logs":[{"address":"0xA","topics":["0xB","0xA"],"logIndex":"0x0"}]}]},
	{"number":"7","transactions":[{"hash":"0xt2","logs":[{"topics":["0xC"],"logIndex":"0x1"}]}]},
	{"number":"0x1a","logsBloom":"0x00","timestamp":"0x5f"},
	{"number":"11","transactions":[
		{"hash":"0xt3","logs":[{"address":"0xA","logIndex":"0x0"}]},
		{"hash":"0xt4","logs":[{"address":"0xA","logIndex":"0x1"}]},
		{"hash":"0xt5"}
	]}
]`

const expected = "5,1,1,3,2\n7,1,1,1,1\n26,0,0,0,0\n11,3,2,2,1\n"

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func run(t *testing.T, input string) (string, Summary, error) {
	t.Helper()
	var out bytes.Buffer
	w := sink.NewCSVWriter(&out)
	summary, err := Run(strings.NewReader(input), w)
	require.NoError(t, w.Close())
	return out.String(), summary, err
}

func TestRunEmitsOneRowPerBlockInOrder(t *testing.T) {
	logs := captureLogs(t)

	out, summary, err := run(t, archive)
	require.NoError(t, err)
	assert.Equal(t, expected, out)

	assert.Equal(t, uint64(4), summary.Blocks)
	assert.Equal(t, uint64(5), summary.Transactions)
	assert.Equal(t, uint64(4), summary.Logs)
	assert.Equal(t, uint64(6), summary.Keys)
	assert.Equal(t, uint64(3), summary.Warnings)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"message":"Null log address"`)
	assert.Contains(t, lines[0], `"blockId":7`)
	assert.Contains(t, lines[0], `"txId":"0xt2"`)
	assert.Contains(t, lines[0], `"logIndex":"0x1"`)
	assert.Contains(t, lines[1], `"message":"Null log topics"`)
	assert.Contains(t, lines[2], `"txId":"0xt4"`)
}

func TestRunIsIdempotent(t *testing.T) {
	captureLogs(t)

	first, _, err := run(t, archive)
	require.NoError(t, err)
	second, _, err := run(t, archive)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunKeepsRowsBeforeFatalBlockNumber(t *testing.T) {
	captureLogs(t)

	out, summary, err := run(t, `[{"number":"1"},{"number":"one"},{"number":"3"}]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 1")
	assert.Equal(t, "1,0,0,0,0\n", out)
	assert.Equal(t, uint64(1), summary.Blocks)
}

func TestRunStopsOnShapeMismatch(t *testing.T) {
	captureLogs(t)

	out, _, err := run(t, `[{"number":"1"},{"number":"2","transactions":"none"}]`)
	require.Error(t, err)
	assert.Equal(t, "1,0,0,0,0\n", out)
}

func TestRunRejectsMalformedTopLevel(t *testing.T) {
	captureLogs(t)

	for _, input := range []string{``, `{}`, `"blocks"`, `[{"number":"1"}`} {
		_, _, err := run(t, input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestRunEmptyArray(t *testing.T) {
	captureLogs(t)

	out, summary, err := run(t, `[]`)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, uint64(0), summary.Blocks)
}

func TestRunFailsOnMissingSeparator(t *testing.T) {
	captureLogs(t)

	out, summary, err := run(t, `[{"number":"1"} {"number":"2"}]`)
	require.Error(t, err)
	assert.Equal(t, "1,0,0,0,0\n", out)
	assert.Equal(t, uint64(1), summary.Blocks)
}

func TestRunTreatsMiscasedKeysAsAbsent(t *testing.T) {
	logs := captureLogs(t)

	out, summary, err := run(t, `[{"number":"9","transactions":[{"hash":"0xt1","logs":[{"Address":"0xA","topics":["0xB"],"logIndex":"0x0"}]}]}]`)
	require.NoError(t, err)
	assert.Equal(t, "9,1,1,1,1\n", out)
	assert.Equal(t, uint64(1), summary.Warnings)
	assert.Contains(t, logs.String(), `"message":"Null log address"`)

	_, _, err = run(t, `[{"NUMBER":"9"}]`)
	assert.Error(t, err)
}

func TestRunFailsOnNullTransaction(t *testing.T) {
	captureLogs(t)

	out, _, err := run(t, `[{"number":"1","transactions":[null]}]`)
	require.Error(t, err)
	assert.Empty(t, out)
}
