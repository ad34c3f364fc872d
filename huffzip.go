// Package huffzip implements a lossless byte-stream compressor built on
// static Huffman coding. Compress reads an input twice, first to count byte
// frequencies and then to encode, and writes a self-describing stream that
// Decompress restores byte for byte. The stream layout is documented in
// format.go.
package huffzip

import (
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/sirupsen/logrus"
)

// defaultChunkSize is the read granularity of both passes.
const defaultChunkSize = 32 * 1024

var (
	// ErrCorruptHeader indicates the stream ends inside the length field.
	ErrCorruptHeader = errors.New("corrupt header")
	// ErrCorruptTree indicates the serialized tree is malformed or the
	// stream ends before the promised number of values was decoded.
	ErrCorruptTree = errors.New("corrupt tree or data")
	// ErrInternal indicates a fault in the codec itself rather than in its
	// inputs, such as an input that changed between the two passes.
	ErrInternal = errors.New("internal error")
)

// ProgressFunc receives progress percentages in [0, 100]. Within one
// operation the reported values never decrease, and an operation on a
// zero-length input reports 100 exactly once. The callback runs on the
// calling goroutine and must not block.
type ProgressFunc func(percent int)

type config struct {
	progress  ProgressFunc
	chunkSize int
	log       *logrus.Logger
	cache     *CodecCache
}

// Option is a functional option for a single Compress or Decompress call.
type Option func(*config)

// WithProgress registers fn to observe operation progress.
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithChunkSize sets the read granularity in bytes. Values below 1 keep the
// default of 32 KiB.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.chunkSize = n
		}
	}
}

// WithLogger routes codec debug logging to l.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithCodecCache reuses previously built trees and code tables for inputs
// with identical frequency profiles.
func WithCodecCache(cc *CodecCache) Option {
	return func(c *config) {
		c.cache = cc
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		chunkSize: defaultChunkSize,
		log:       discard,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// discard swallows debug logging unless the caller installs a logger.
var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// progressMeter turns processed/total byte counts into deduplicated
// percentage callbacks.
type progressMeter struct {
	fn   ProgressFunc
	last int
}

func newProgressMeter(fn ProgressFunc) *progressMeter {
	return &progressMeter{fn: fn, last: -1}
}

// update reports the integer percentage of done out of total, skipping
// values already reported. total must be positive and done must not exceed
// it. The 128-bit multiply keeps done*100 exact for any uint64 input.
func (m *progressMeter) update(done, total uint64) {
	if m.fn == nil {
		return
	}
	hi, lo := bits.Mul64(done, 100)
	pct, _ := bits.Div64(hi, lo, total)
	if int(pct) == m.last {
		return
	}
	m.last = int(pct)
	m.fn(m.last)
}

// finish reports 100, for operations with nothing to count.
func (m *progressMeter) finish() {
	m.update(1, 1)
}

// recoverInternal converts a panic escaping the codec into ErrInternal.
func recoverInternal(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: panic: %v", ErrInternal, r)
	}
}
