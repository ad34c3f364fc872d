package huffzip

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/MeanZhang/huffzip/huffman"
)

// Wire format (version 1), integers little-endian:
//
//	length = uint64  // bytes in the original input
//	tree   = preorder tree bits (huffman.WriteTree), zero-padded to the
//	         next byte boundary
//	data   = one code per input byte, MSB-first, the final byte
//	         zero-padded on the right
//
// A zero-length input is exactly the 8 length bytes; no tree or data
// follows. The tree encoding is self-delimiting and the data stream is
// terminated by the decoder emitting exactly length values, so neither
// section carries its own size.

const headerSize = 8

func writeHeader(w io.Writer, length uint64) error {
	var buf [headerSize]byte
	binary.LittleEndian.PutUint64(buf[:], length)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

func readHeader(r io.Reader) (uint64, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if streamEnded(err) {
			return 0, fmt.Errorf("%w: stream shorter than the length field", ErrCorruptHeader)
		}
		return 0, fmt.Errorf("reading header: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func writeTree(w *bitio.Writer, root *huffman.Node) error {
	if err := huffman.WriteTree(w, root); err != nil {
		return fmt.Errorf("writing tree: %w", err)
	}
	if _, err := w.Align(); err != nil {
		return fmt.Errorf("writing tree: %w", err)
	}
	return nil
}

func readTree(r *bitio.Reader) (*huffman.Node, error) {
	root, err := huffman.ReadTree(r)
	if err != nil {
		if streamEnded(err) || errors.Is(err, huffman.ErrTreeDepth) {
			return nil, fmt.Errorf("%w: %v", ErrCorruptTree, err)
		}
		return nil, fmt.Errorf("reading tree: %w", err)
	}
	r.Align()
	return root, nil
}

// streamEnded reports whether err means the input ran out rather than
// failed.
func streamEnded(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
