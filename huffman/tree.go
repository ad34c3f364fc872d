package huffman

import (
	"errors"
	"sort"
)

// ErrNoSymbols indicates a tree was requested for an input with no bytes.
var ErrNoSymbols = errors.New("no symbols to build a tree from")

// Node is a node of a Huffman tree. A leaf carries the byte value it
// encodes; an internal node always has two children. Weight is the total
// occurrence count of every value below the node.
type Node struct {
	Value  byte
	Weight uint64
	Left   *Node
	Right  *Node
}

// Leaf reports whether n encodes a value.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// Build constructs the Huffman tree for f using the sorted-list method. One
// leaf is created per distinct value, ordered by weight ascending with ties
// kept in first-seen order. Each round merges the two lightest trees, first
// as the left child and second as the right, then reinserts the merged tree
// in front of the first tree of equal or greater weight. Construction is
// deterministic for a given Frequencies, so identical inputs always produce
// identical trees and identical compressed output.
func Build(f *Frequencies) (*Node, error) {
	if f.Distinct() == 0 {
		return nil, ErrNoSymbols
	}
	forest := make([]*Node, 0, f.Distinct())
	for _, b := range f.Symbols() {
		forest = append(forest, &Node{Value: b, Weight: f.Count(b)})
	}
	sort.SliceStable(forest, func(i, j int) bool {
		return forest[i].Weight < forest[j].Weight
	})
	for len(forest) > 1 {
		merged := &Node{
			Weight: forest[0].Weight + forest[1].Weight,
			Left:   forest[0],
			Right:  forest[1],
		}
		forest = forest[2:]
		i := 0
		for i < len(forest) && forest[i].Weight < merged.Weight {
			i++
		}
		forest = append(forest, nil)
		copy(forest[i+1:], forest[i:])
		forest[i] = merged
	}
	return forest[0], nil
}
