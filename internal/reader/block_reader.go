package reader

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/thirdweb-dev/receipt-stats/internal/common"
)

const iteratorBufferSize = 64 * 1024

// BlockReader walks a JSON array of blocks one element at a time. Only the
// element being decoded is held in memory.
type BlockReader struct {
	iter  *jsoniter.Iterator
	index int
	done  bool
}

func NewBlockReader(r io.Reader) *BlockReader {
	return &BlockReader{iter: jsoniter.Parse(common.JSON, r, iteratorBufferSize)}
}

// Begin checks that the input holds a top-level array.
func (br *BlockReader) Begin() error {
	next := br.iter.WhatIsNext()
	if err := br.err(); err != nil {
		return err
	}
	if next != jsoniter.ArrayValue {
		return fmt.Errorf("malformed input: expected a top-level array")
	}
	return nil
}

// More consumes the opening bracket or the separator before the next block
// and reports whether a block follows. Every true result must be followed by
// exactly one call to Next.
func (br *BlockReader) More() bool {
	if br.done || br.iter.Error != nil {
		return false
	}
	more := br.iter.ReadArray()
	if br.iter.Error != nil {
		return false
	}
	if !more {
		br.done = true
	}
	return more
}

// Next decodes the next block. Any shape mismatch is returned as an error and
// leaves the reader unusable.
func (br *BlockReader) Next() (*common.Block, error) {
	var block common.Block
	br.iter.ReadVal(&block)
	if err := br.err(); err != nil {
		return nil, errors.WithMessagef(err, "failed to decode block at index %d", br.index)
	}
	br.index++
	return &block, nil
}

// End reports whether the array was closed cleanly. It fails when the
// stream ended early or the elements were not separated by commas.
func (br *BlockReader) End() error {
	if err := br.err(); err != nil {
		return errors.WithMessagef(err, "malformed input after block %d", br.index)
	}
	if !br.done {
		return fmt.Errorf("malformed input: array not terminated after block %d", br.index)
	}
	return nil
}

// Decoded returns how many blocks have been decoded so far.
func (br *BlockReader) Decoded() int {
	return br.index
}

func (br *BlockReader) err() error {
	switch err := br.iter.Error; err {
	case nil:
		return nil
	case io.EOF:
		return errors.New("unexpected end of input")
	default:
		return errors.WithStack(err)
	}
}
