package huffman

// Codes walks the tree depth first, appending '0' when descending left and
// '1' when descending right, and records the path to every real leaf. The
// phantom leaf of a single-symbol tree is skipped.
func (t *Tree) Codes() CodeTable {
	type visit struct {
		idx  int32
		path []byte
	}
	codes := make(CodeTable, len(t.nodes)/2+1)
	stack := []visit{{idx: t.root}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[v.idx]
		switch n.kind {
		case leafNode:
			codes[n.symbol] = string(v.path)
		case internalNode:
			// Push right first so the left subtree is visited first.
			stack = append(stack,
				visit{idx: n.right, path: extend(v.path, digitOne)},
				visit{idx: n.left, path: extend(v.path, digitZero)},
			)
		}
	}
	return codes
}

// extend returns a copy of path with d appended; siblings must not share
// the backing array.
func extend(path []byte, d byte) []byte {
	out := make([]byte, len(path)+1)
	copy(out, path)
	out[len(path)] = d
	return out
}
