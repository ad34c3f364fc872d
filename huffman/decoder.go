package huffman

import "github.com/icza/bitio"

// Decoder reads byte values back out of a bit stream by walking a tree.
type Decoder struct {
	r    *bitio.Reader
	root *Node
}

// NewDecoder returns a Decoder resolving codes from r against the tree
// rooted at root.
func NewDecoder(r *bitio.Reader, root *Node) *Decoder {
	return &Decoder{r: r, root: root}
}

// Read fills p with decoded values, one tree walk per byte: a 0 bit descends
// left, a 1 bit descends right, and reaching a leaf emits its value. When
// the tree is a single leaf there is nothing to walk; every value still
// consumes one bit, whose content is ignored.
//
// Read returns fewer than len(p) values only when the bit stream ends
// early. The caller bounds the total value count, so the zero padding of the
// stream's final byte is never consumed as data.
func (d *Decoder) Read(p []byte) (n int, err error) {
	if d.root.Leaf() {
		for i := range p {
			if _, err := d.r.ReadBool(); err != nil {
				return i, err
			}
			p[i] = d.root.Value
		}
		return len(p), nil
	}
	for i := range p {
		node := d.root
		for !node.Leaf() {
			right, err := d.r.ReadBool()
			if err != nil {
				return i, err
			}
			if right {
				node = node.Right
			} else {
				node = node.Left
			}
		}
		p[i] = node.Value
	}
	return len(p), nil
}
