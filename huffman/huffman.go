// Package huffman implements the static Huffman coding core used by huffzip:
// frequency accounting, deterministic tree construction, code derivation, a
// preorder wire encoding for trees, and bit-level encoding and decoding of
// value streams.
//
// The package operates on in-memory structures and bitio streams. The
// container format, chunked I/O and progress reporting live in the parent
// package.
package huffman

// Codec bundles the products of one tree construction: the tree, used by the
// decoder and the wire encoding, and the code table derived from it, used by
// the encoder. A Codec is immutable once built and may be shared across
// goroutines.
type Codec struct {
	Root  *Node
	Table *CodeTable
}

// NewCodec builds the tree and code table for f.
func NewCodec(f *Frequencies) (*Codec, error) {
	root, err := Build(f)
	if err != nil {
		return nil, err
	}
	return &Codec{Root: root, Table: NewCodeTable(root)}, nil
}
