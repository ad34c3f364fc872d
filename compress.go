package huffzip

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/icza/bitio"

	"github.com/MeanZhang/huffzip/huffman"
)

// Compress reads src to its end twice, once to count byte frequencies and
// once to encode, and writes the compressed stream to dst. Sources that can
// seek are rewound between the passes; anything else is spilled to a
// temporary file during the first pass and re-read from there.
func Compress(src io.Reader, dst io.Writer, opts ...Option) (err error) {
	defer recoverInternal(&err)
	return compress(src, dst, newConfig(opts))
}

func compress(src io.Reader, dst io.Writer, cfg *config) error {
	freq := new(huffman.Frequencies)
	input, cleanup, err := countPass(src, freq, cfg.chunkSize)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		return err
	}

	meter := newProgressMeter(cfg.progress)
	counted := &countingWriter{w: dst}
	out := bufio.NewWriter(counted)
	total := freq.Total()

	if err := writeHeader(out, total); err != nil {
		return err
	}
	if total == 0 {
		if err := out.Flush(); err != nil {
			return fmt.Errorf("flushing output: %w", err)
		}
		meter.finish()
		cfg.log.Debugf("compressed 0 bytes into %d", counted.n)
		return nil
	}

	codec, err := buildCodec(freq, cfg)
	if err != nil {
		return err
	}

	bw := bitio.NewWriter(out)
	if err := writeTree(bw, codec.Root); err != nil {
		return err
	}

	enc := huffman.NewEncoder(bw, codec.Table)
	buf := make([]byte, cfg.chunkSize)
	var done uint64
	for {
		n, rerr := input.Read(buf)
		if n > 0 {
			if _, werr := enc.Write(buf[:n]); werr != nil {
				if errors.Is(werr, huffman.ErrNoCode) {
					return fmt.Errorf("%w: %v (input changed between passes)", ErrInternal, werr)
				}
				return fmt.Errorf("writing data: %w", werr)
			}
			done += uint64(n)
			if done > total {
				return fmt.Errorf("%w: input grew between passes: %d of %d bytes", ErrInternal, done, total)
			}
			meter.update(done, total)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("reading input: %w", rerr)
		}
	}
	if done != total {
		return fmt.Errorf("%w: input shrank between passes: %d of %d bytes", ErrInternal, done, total)
	}

	if err := bw.Close(); err != nil {
		return fmt.Errorf("writing data: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	cfg.log.Debugf("compressed %d bytes into %d (%d distinct values)", total, counted.n, freq.Distinct())
	return nil
}

// countPass feeds every byte of src into freq and arranges a second read of
// the same bytes. The returned reader is positioned where src originally
// was; cleanup, when non-nil, must be called once the second pass is done.
func countPass(src io.Reader, freq *huffman.Frequencies, chunkSize int) (io.Reader, func(), error) {
	if s, ok := src.(io.ReadSeeker); ok {
		if start, err := s.Seek(0, io.SeekCurrent); err == nil {
			if err := scan(s, freq, chunkSize); err != nil {
				return nil, nil, err
			}
			if _, err := s.Seek(start, io.SeekStart); err != nil {
				return nil, nil, fmt.Errorf("rewinding input: %w", err)
			}
			return s, nil, nil
		}
		// Seek can fail on readers that only claim the interface, such as
		// an os.File backed by a pipe. Fall through to the spill path.
	}

	tmp, err := os.CreateTemp("", "huffzip-*")
	if err != nil {
		return nil, nil, fmt.Errorf("creating spill file: %w", err)
	}
	cleanup := func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}
	if err := scan(io.TeeReader(src, tmp), freq, chunkSize); err != nil {
		return nil, cleanup, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, cleanup, fmt.Errorf("rewinding spill file: %w", err)
	}
	return tmp, cleanup, nil
}

// scan reads r to its end in chunkSize steps, accumulating counts.
func scan(r io.Reader, freq *huffman.Frequencies, chunkSize int) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			freq.Add(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

// buildCodec returns the codec for freq, consulting the configured cache
// first.
func buildCodec(freq *huffman.Frequencies, cfg *config) (*huffman.Codec, error) {
	if cfg.cache == nil {
		codec, err := huffman.NewCodec(freq)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return codec, nil
	}
	fp := freq.Fingerprint()
	if codec, ok := cfg.cache.get(fp); ok {
		cfg.log.Debug("codec cache hit")
		return codec, nil
	}
	codec, err := huffman.NewCodec(freq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	cfg.cache.add(fp, codec)
	return codec, nil
}

// countingWriter tracks how many bytes reached the destination.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
