package common

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// JSON is the codec for archive records. Keys match struct tags exactly, so
// "Address" does not bind to the address field.
var JSON = jsoniter.Config{
	CaseSensitive:          true,
	ValidateJsonRawMessage: true,
}.Froze()

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func errNullElement(kind string) error {
	return fmt.Errorf("%s is null", kind)
}
