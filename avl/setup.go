// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    Item  // key for ordering
	height int   // edges to the deepest empty sub-tree
	nodes  int   // number of nodes in this sub-tree
}

// Tree - an immutable version of a tree, holds the root node
type Tree struct {
	root *Node
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root: nil,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.root.size()
}

// Height - height of the tree, -1 for an empty tree
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Left - return the left sub-tree of a node, nil if none
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right sub-tree of a node, nil if none
func (p *Node) Right() *Node {
	return p.right
}

// Height - cached height of a possibly empty sub-tree
// -1 for an empty sub-tree, 0 for a leaf
func (p *Node) Height() int {
	if nil == p {
		return -1
	}
	return p.height
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// allocate a node for a new version of the tree, the branches are
// shared with older versions and are never modified; cached height
// and count are recomputed here so they are consistent before the
// node escapes the operation building it
func newNode(key Item, left *Node, right *Node) *Node {
	height := left.Height()
	if right.Height() > height {
		height = right.Height()
	}
	return &Node{
		left:   left,
		right:  right,
		key:    key,
		height: 1 + height,
		nodes:  1 + left.size() + right.size(),
	}
}

// internal: node count of a possibly empty sub-tree
func (p *Node) size() int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// internal: balance factor, left height less right height
func (p *Node) balance() int {
	return p.left.Height() - p.right.Height()
}
