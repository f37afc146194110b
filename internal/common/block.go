package common

type Block struct {
	Number       Optional[string]        `json:"number"`
	LogsBloom    Optional[string]        `json:"logsBloom"`
	Timestamp    Optional[string]        `json:"timestamp"`
	Transactions Optional[[]Transaction] `json:"transactions"`
}

func (b *Block) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errNullElement("block")
	}
	type plain Block
	return JSON.Unmarshal(data, (*plain)(b))
}

// ReceiptStats is the per-block summary row.
type ReceiptStats struct {
	BlockID         uint64 `parquet:"block_id"`
	TxCount         uint64 `parquet:"tx_count"`
	NumLogs         uint64 `parquet:"num_logs"`
	NumKeys         uint64 `parquet:"num_keys"`
	NumDistinctKeys uint64 `parquet:"num_distinct_keys"`
}
