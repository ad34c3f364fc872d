package huffzip

import (
	"bufio"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/MeanZhang/huffzip/huffman"
)

// Decompress reads one compressed stream from src and writes the restored
// bytes to dst. Bytes following the compressed stream are left unread.
func Decompress(src io.Reader, dst io.Writer, opts ...Option) (err error) {
	defer recoverInternal(&err)
	return decompress(src, dst, newConfig(opts))
}

func decompress(src io.Reader, dst io.Writer, cfg *config) error {
	in := bufio.NewReader(src)
	total, err := readHeader(in)
	if err != nil {
		return err
	}

	meter := newProgressMeter(cfg.progress)
	if total == 0 {
		meter.finish()
		cfg.log.Debugf("decompressed 0 bytes")
		return nil
	}

	br := bitio.NewReader(in)
	root, err := readTree(br)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(dst)
	dec := huffman.NewDecoder(br, root)
	buf := make([]byte, cfg.chunkSize)
	var done uint64
	for done < total {
		step := uint64(len(buf))
		if rest := total - done; rest < step {
			step = rest
		}
		n, rerr := dec.Read(buf[:step])
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return fmt.Errorf("writing output: %w", werr)
			}
			done += uint64(n)
			meter.update(done, total)
		}
		if rerr != nil {
			if streamEnded(rerr) {
				return fmt.Errorf("%w: data ends after %d of %d bytes", ErrCorruptTree, done, total)
			}
			return fmt.Errorf("reading data: %w", rerr)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	cfg.log.Debugf("decompressed %d bytes", total)
	return nil
}
