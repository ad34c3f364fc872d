package huffman

import "encoding/binary"

// Frequencies accumulates how often each byte value occurs in an input. It
// also records the order in which values were first seen; Build consumes
// that order, so two inputs with equal counts but different first
// occurrences may build different trees. The zero value is ready to use.
type Frequencies struct {
	counts [256]uint64
	seen   [256]bool
	order  []byte
	total  uint64
}

// Add accumulates one chunk of input.
func (f *Frequencies) Add(p []byte) {
	for _, b := range p {
		if !f.seen[b] {
			f.seen[b] = true
			f.order = append(f.order, b)
		}
		f.counts[b]++
	}
	f.total += uint64(len(p))
}

// Count returns the number of occurrences recorded for b.
func (f *Frequencies) Count(b byte) uint64 {
	return f.counts[b]
}

// Total returns the number of bytes accumulated.
func (f *Frequencies) Total() uint64 {
	return f.total
}

// Distinct returns the number of distinct byte values seen.
func (f *Frequencies) Distinct() int {
	return len(f.order)
}

// Symbols returns the distinct byte values in first-seen order. The
// returned slice is owned by f and must not be modified.
func (f *Frequencies) Symbols() []byte {
	return f.order
}

// Fingerprint returns a key identifying the exact tree-construction input:
// every (value, count) pair in first-seen order. Two Frequencies with equal
// fingerprints build identical trees and code tables.
func (f *Frequencies) Fingerprint() string {
	buf := make([]byte, 0, len(f.order)*9)
	for _, b := range f.order {
		buf = append(buf, b)
		buf = binary.LittleEndian.AppendUint64(buf, f.counts[b])
	}
	return string(buf)
}
