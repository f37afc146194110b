package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline Metrics
var (
	BlocksProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "receipt_stats_blocks_processed_total",
		Help: "The total number of blocks aggregated and emitted",
	})

	TransactionsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "receipt_stats_transactions_processed_total",
		Help: "The total number of transactions seen across all blocks",
	})

	LogsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "receipt_stats_logs_processed_total",
		Help: "The total number of logs seen across all blocks",
	})

	KeysProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "receipt_stats_keys_processed_total",
		Help: "The total number of key occurrences (addresses and topics)",
	})

	LastProcessedBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "receipt_stats_last_processed_block",
		Help: "The height of the last block emitted",
	})
)

// Data quality Metrics
var (
	MalformedLogs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "receipt_stats_malformed_logs_total",
		Help: "The number of logs with a missing address or topic list",
	}, []string{"kind"})
)

// Run Metrics
var (
	RunDuration = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "receipt_stats_run_duration_seconds",
		Help: "Wall clock duration of the last run",
	})

	RunSuccess = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "receipt_stats_run_success",
		Help: "1 if the last run completed, 0 if it aborted",
	})
)

// WriteTextfile dumps the default registry in the text exposition format,
// for pickup by a node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
