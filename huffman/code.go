package huffman

import "strings"

// BitString is a packed, MSB-first bit string. Bits of the final byte of
// Packed beyond Len are always zero.
type BitString struct {
	Packed []byte
	Len    int
}

// appendBit returns a copy of bs extended by one bit. Sibling codes share a
// prefix, so the extension must never alias the parent's backing array.
func (bs BitString) appendBit(bit byte) BitString {
	packed := make([]byte, (bs.Len+8)/8)
	copy(packed, bs.Packed)
	if bit != 0 {
		packed[bs.Len/8] |= 0x80 >> uint(bs.Len%8)
	}
	return BitString{Packed: packed, Len: bs.Len + 1}
}

// Bit returns bit i, counting from the most significant bit of Packed[0].
func (bs BitString) Bit(i int) byte {
	return (bs.Packed[i/8] >> uint(7-i%8)) & 1
}

// Empty reports whether bs holds no bits.
func (bs BitString) Empty() bool {
	return bs.Len == 0
}

// String renders the bits as a "0"/"1" string.
func (bs BitString) String() string {
	var sb strings.Builder
	sb.Grow(bs.Len)
	for i := 0; i < bs.Len; i++ {
		sb.WriteByte('0' + bs.Bit(i))
	}
	return sb.String()
}

// CodeTable maps every byte value to its code. Entries for values absent
// from the input are empty.
type CodeTable [256]BitString

// NewCodeTable derives the code table for the tree rooted at root.
// Descending to a left child appends a 0 bit, to a right child a 1 bit. A
// root that is itself a leaf has no edges to walk; its single value is
// assigned the one-bit code "0".
func NewCodeTable(root *Node) *CodeTable {
	table := new(CodeTable)
	if root.Leaf() {
		table[root.Value] = BitString{}.appendBit(0)
		return table
	}
	var walk func(n *Node, code BitString)
	walk = func(n *Node, code BitString) {
		if n.Leaf() {
			table[n.Value] = code
			return
		}
		walk(n.Left, code.appendBit(0))
		walk(n.Right, code.appendBit(1))
	}
	walk(root, BitString{})
	return table
}
