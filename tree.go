package huffman

import (
	"container/heap"
	"fmt"
)

// nodeKind tags the variant stored in a node.
type nodeKind uint8

const (
	leafNode     nodeKind = iota // a real symbol
	phantomNode                  // zero-weight sibling of a lone symbol; never coded
	internalNode                 // a merge of two subtrees
)

// node is one vertex of a Tree. Which fields are meaningful depends on kind:
//
//	leafNode:     symbol, weight
//	phantomNode:  weight (always 0)
//	internalNode: weight, left, right (arena indices)
//
// The weight of an internal node is the sum of its children's weights.
type node struct {
	weight      uint64
	left, right int32
	symbol      rune
	kind        nodeKind
}

// Tree is a Huffman prefix tree held in an arena of nodes addressed by index.
// A Tree is immutable once BuildTree returns it.
type Tree struct {
	nodes []node
	root  int32
}

// BuildTree runs the classic greedy merge over freqs: the two lightest nodes
// are repeatedly joined under a new internal node until one root remains.
//
// Ties between equal weights are broken by arena index, which is creation
// order: leaves are created in ascending symbol order and merged nodes in
// merge order. The first node popped becomes the left child. The result is
// therefore identical across runs and platforms.
//
// A single-symbol table gets a phantom sibling on the right so the real
// symbol still receives the one-digit code "0".
func BuildTree(freqs Frequencies) (*Tree, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("%w: empty frequency table", ErrInvalidInput)
	}
	symbols := freqs.symbols()
	t := &Tree{nodes: make([]node, 0, 2*len(symbols))}
	for _, s := range symbols {
		t.add(node{kind: leafNode, symbol: s, weight: freqs[s]})
	}

	if len(symbols) == 1 {
		phantom := t.add(node{kind: phantomNode})
		t.root = t.add(node{kind: internalNode, weight: t.nodes[0].weight, left: 0, right: phantom})
		return t, nil
	}

	h := &nodeHeap{tree: t, order: make([]int32, len(symbols))}
	for i := range h.order {
		h.order[i] = int32(i)
	}
	heap.Init(h)
	for h.Len() > 1 {
		left := heap.Pop(h).(int32)
		right := heap.Pop(h).(int32)
		merged := t.add(node{
			kind:   internalNode,
			weight: t.nodes[left].weight + t.nodes[right].weight,
			left:   left,
			right:  right,
		})
		heap.Push(h, merged)
	}
	t.root = heap.Pop(h).(int32)
	return t, nil
}

// add appends n to the arena and returns its index.
func (t *Tree) add(n node) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

// Weight returns the weight of the root, the total symbol count.
func (t *Tree) Weight() uint64 { return t.nodes[t.root].weight }

// Leaves returns the number of real symbols in the tree.
func (t *Tree) Leaves() int {
	n := 0
	for i := range t.nodes {
		if t.nodes[i].kind == leafNode {
			n++
		}
	}
	return n
}

// nodeHeap is a min-heap of arena indices ordered by (weight, index).
type nodeHeap struct {
	tree  *Tree
	order []int32
}

// Len implements heap.Interface and returns the number of elements.
func (h *nodeHeap) Len() int { return len(h.order) }

// Less implements heap.Interface ordering by ascending weight, breaking ties
// by the lower arena index.
func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.order[i], h.order[j]
	wa, wb := h.tree.nodes[a].weight, h.tree.nodes[b].weight
	if wa != wb {
		return wa < wb
	}
	return a < b
}

// Swap implements heap.Interface swap.
func (h *nodeHeap) Swap(i, j int) { h.order[i], h.order[j] = h.order[j], h.order[i] }

// Push implements heap.Interface push.
func (h *nodeHeap) Push(x any) { h.order = append(h.order, x.(int32)) }

// Pop implements heap.Interface pop.
func (h *nodeHeap) Pop() any {
	n := len(h.order)
	x := h.order[n-1]
	h.order = h.order[:n-1]
	return x
}
