package common

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/math"
)

// ParseBlockNumber decodes a block height written either in decimal or as a
// 0x-prefixed hexadecimal numeral.
func ParseBlockNumber(s string) (uint64, error) {
	// math.ParseUint64 treats the empty string as zero
	if s == "" {
		return 0, fmt.Errorf("empty block number")
	}
	n, ok := math.ParseUint64(s)
	if !ok {
		return 0, fmt.Errorf("invalid block number %q", s)
	}
	return n, nil
}
