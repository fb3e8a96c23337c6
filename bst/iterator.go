// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Iterator - in-order traversal state over one tree version
//
// Nodes carry no parent pointers, as they are shared between
// versions, so the pending ancestors are kept on an explicit stack.
type Iterator struct {
	stack []*Node
}

// Iterate - create an iterator positioned before the lowest key
func (tree *Tree) Iterate() *Iterator {
	it := &Iterator{}
	it.descend(tree.root)
	return it
}

// Next - return the next node in ascending key order, nil when the
// traversal is finished
func (it *Iterator) Next() *Node {
	n := len(it.stack)
	if 0 == n {
		return nil
	}
	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.descend(p.right)
	return p
}

// internal: stack the whole left spine of a sub-tree
func (it *Iterator) descend(p *Node) {
	for ; nil != p; p = p.left {
		it.stack = append(it.stack, p)
	}
}
