package common

type Transaction struct {
	Hash        Optional[string] `json:"hash"`
	BlockNumber Optional[string] `json:"blockNumber"`
	BlockHash   Optional[string] `json:"blockHash"`
	Logs        Optional[[]Log]  `json:"logs"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errNullElement("transaction")
	}
	type plain Transaction
	return JSON.Unmarshal(data, (*plain)(t))
}
