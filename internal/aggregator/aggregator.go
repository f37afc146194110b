package aggregator

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/thirdweb-dev/receipt-stats/internal/common"
)

type WarningKind string

const (
	WarningNullAddress WarningKind = "null_address"
	WarningNullTopics  WarningKind = "null_topics"
)

// Warning is a data-quality problem found in a single log. It never stops
// the run; the missing piece simply contributes nothing.
type Warning struct {
	Kind     WarningKind
	BlockID  uint64
	TxHash   string
	LogIndex string
}

func (w Warning) Message() string {
	switch w.Kind {
	case WarningNullAddress:
		return "Null log address"
	case WarningNullTopics:
		return "Null log topics"
	default:
		return string(w.Kind)
	}
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: blockId=%d, txId=%s, logIndex=%s", w.Message(), w.BlockID, w.TxHash, w.LogIndex)
}

// Result is the outcome of aggregating one block.
type Result struct {
	Stats    common.ReceiptStats
	Warnings []Warning
}

// missing identifiers are reported the way the archive tooling prints them
const missingField = "null"

// Aggregate computes the receipt statistics of a single block. The returned
// error is fatal for the whole run; warnings are carried in the result.
func Aggregate(block *common.Block) (Result, error) {
	number, ok := block.Number.Get()
	if !ok {
		return Result{}, errors.New("block number is missing")
	}
	blockID, err := common.ParseBlockNumber(number)
	if err != nil {
		return Result{}, errors.WithStack(err)
	}

	result := Result{Stats: common.ReceiptStats{BlockID: blockID}}
	transactions, ok := block.Transactions.Get()
	if !ok {
		return result, nil
	}

	stats := &result.Stats
	stats.TxCount = uint64(len(transactions))
	distinctKeys := common.NewSet[string]()

	for i := range transactions {
		tx := &transactions[i]
		logs, ok := tx.Logs.Get()
		if !ok {
			continue
		}
		stats.NumLogs += uint64(len(logs))

		for j := range logs {
			l := &logs[j]
			if address, ok := l.Address.Get(); ok {
				stats.NumKeys++
				distinctKeys.Add(address)
			} else {
				result.Warnings = append(result.Warnings, newWarning(WarningNullAddress, blockID, tx, l))
			}

			if topics, ok := l.Topics.Get(); ok {
				stats.NumKeys += uint64(len(topics))
				distinctKeys.AddAll(topics)
			} else {
				result.Warnings = append(result.Warnings, newWarning(WarningNullTopics, blockID, tx, l))
			}
		}
	}

	stats.NumDistinctKeys = uint64(distinctKeys.Size())
	return result, nil
}

func newWarning(kind WarningKind, blockID uint64, tx *common.Transaction, l *common.Log) Warning {
	return Warning{
		Kind:     kind,
		BlockID:  blockID,
		TxHash:   tx.Hash.Or(missingField),
		LogIndex: l.LogIndex.Or(missingField),
	}
}
