package common

import "fmt"

type Log struct {
	Address  Optional[string]   `json:"address"`
	Topics   Optional[[]string] `json:"topics"`
	LogIndex Optional[string]   `json:"logIndex"`
}

func (l *Log) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errNullElement("log")
	}
	// topics are read as pointers so a null entry can be told apart from ""
	var raw struct {
		Address  Optional[string]    `json:"address"`
		Topics   Optional[[]*string] `json:"topics"`
		LogIndex Optional[string]    `json:"logIndex"`
	}
	if err := JSON.Unmarshal(data, &raw); err != nil {
		return err
	}

	*l = Log{Address: raw.Address, LogIndex: raw.LogIndex}
	if topics, ok := raw.Topics.Get(); ok {
		values := make([]string, len(topics))
		for i, topic := range topics {
			if topic == nil {
				return fmt.Errorf("Topics: topic %d is null", i)
			}
			values[i] = *topic
		}
		l.Topics = Some(values)
	}
	return nil
}
