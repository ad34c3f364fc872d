package huffman

import (
	"errors"

	"github.com/icza/bitio"
)

// Trees travel in preorder: an internal node is a 0 bit followed by its left
// and right subtrees, a leaf is a 1 bit followed by the 8-bit value. Weights
// are not persisted; decoding only ever walks the shape. The encoding is
// self-delimiting, so it needs no length prefix.

// maxTreeDepth bounds recursion while reading. A tree over a 256-value
// alphabet is at most 255 edges deep, so anything deeper cannot have been
// produced by WriteTree.
const maxTreeDepth = 255

// ErrTreeDepth indicates a serialized tree exceeds maxTreeDepth.
var ErrTreeDepth = errors.New("tree exceeds maximum depth")

// WriteTree writes the preorder encoding of the tree rooted at n to w.
func WriteTree(w *bitio.Writer, n *Node) error {
	if n.Leaf() {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return w.WriteBits(uint64(n.Value), 8)
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := WriteTree(w, n.Left); err != nil {
		return err
	}
	return WriteTree(w, n.Right)
}

// ReadTree reads one preorder-encoded tree from r. Node weights are not
// recoverable from the wire and are left zero.
func ReadTree(r *bitio.Reader) (*Node, error) {
	return readTree(r, 0)
}

func readTree(r *bitio.Reader, depth int) (*Node, error) {
	if depth > maxTreeDepth {
		return nil, ErrTreeDepth
	}
	leaf, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if leaf {
		value, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		return &Node{Value: byte(value)}, nil
	}
	left, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Left: left, Right: right}, nil
}
