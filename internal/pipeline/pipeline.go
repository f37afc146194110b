package pipeline

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/receipt-stats/internal/aggregator"
	"github.com/thirdweb-dev/receipt-stats/internal/metrics"
	"github.com/thirdweb-dev/receipt-stats/internal/reader"
	"github.com/thirdweb-dev/receipt-stats/internal/sink"
)

type Summary struct {
	Blocks       uint64
	Transactions uint64
	Logs         uint64
	Keys         uint64
	Warnings     uint64
	Elapsed      time.Duration
}

func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("blocks", s.Blocks).
		Uint64("transactions", s.Transactions).
		Uint64("logs", s.Logs).
		Uint64("keys", s.Keys).
		Uint64("warnings", s.Warnings).
		Dur("elapsed", s.Elapsed)
}

// Run streams blocks from r, aggregates each one and writes its row to w
// before the next block is read. It stops at the first fatal error; rows
// already written stay in w. Run does not close w.
func Run(r io.Reader, w sink.RowWriter) (summary Summary, err error) {
	start := time.Now()
	defer func() {
		summary.Elapsed = time.Since(start)
		metrics.RunDuration.Set(summary.Elapsed.Seconds())
	}()

	br := reader.NewBlockReader(r)
	if err = br.Begin(); err != nil {
		return summary, err
	}

	for br.More() {
		block, err := br.Next()
		if err != nil {
			return summary, err
		}

		result, err := aggregator.Aggregate(block)
		if err != nil {
			return summary, errors.WithMessagef(err, "block at index %d", br.Decoded()-1)
		}
		reportWarnings(result.Warnings)

		if err := w.Write(result.Stats); err != nil {
			return summary, err
		}

		stats := result.Stats
		summary.Blocks++
		summary.Transactions += stats.TxCount
		summary.Logs += stats.NumLogs
		summary.Keys += stats.NumKeys
		summary.Warnings += uint64(len(result.Warnings))

		metrics.BlocksProcessed.Inc()
		metrics.TransactionsProcessed.Add(float64(stats.TxCount))
		metrics.LogsProcessed.Add(float64(stats.NumLogs))
		metrics.KeysProcessed.Add(float64(stats.NumKeys))
		metrics.LastProcessedBlock.Set(float64(stats.BlockID))
	}

	if err = br.End(); err != nil {
		return summary, err
	}
	return summary, nil
}

func reportWarnings(warnings []aggregator.Warning) {
	for _, w := range warnings {
		metrics.MalformedLogs.WithLabelValues(string(w.Kind)).Inc()
		log.Warn().
			Uint64("blockId", w.BlockID).
			Str("txId", w.TxHash).
			Str("logIndex", w.LogIndex).
			Msg(w.Message())
	}
}
