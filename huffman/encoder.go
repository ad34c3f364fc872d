package huffman

import (
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

// ErrNoCode indicates a value was encoded that has no entry in the table.
var ErrNoCode = errors.New("no code for value")

// Encoder writes byte values to a bit stream using a fixed code table. It
// does not own the writer; the caller aligns or closes the underlying
// bitio.Writer once all values are written.
type Encoder struct {
	w     *bitio.Writer
	table *CodeTable
}

// NewEncoder returns an Encoder emitting codes from table into w.
func NewEncoder(w *bitio.Writer, table *CodeTable) *Encoder {
	return &Encoder{w: w, table: table}
}

// Write encodes every byte of p. n < len(p) only when err is non-nil.
func (e *Encoder) Write(p []byte) (n int, err error) {
	for i, b := range p {
		code := e.table[b]
		if code.Empty() {
			return i, fmt.Errorf("%w: %#02x", ErrNoCode, b)
		}
		if err := writeCode(e.w, code); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// writeCode appends code to w, whole bytes first, then the remainder.
func writeCode(w *bitio.Writer, code BitString) error {
	full := code.Len / 8
	for i := 0; i < full; i++ {
		if err := w.WriteBits(uint64(code.Packed[i]), 8); err != nil {
			return err
		}
	}
	rem := code.Len % 8
	if rem == 0 {
		return nil
	}
	tail := code.Packed[full] >> uint(8-rem)
	return w.WriteBits(uint64(tail), uint8(rem))
}
