// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordertree/fault"
)

// delete: tree balancer
// the left branch has shrunk, rotate if the right is now too tall
func balanceLeft(p *Node) *Node {
	if -2 == p.balance() {
		if p.right.balance() <= 0 {
			// single RR rotation
			return rotateLeft(p)
		}
		// double RL rotation
		return rotateRightLeft(p)
	}
	return p
}

// delete: tree balancer
// the right branch has shrunk, rotate if the left is now too tall
func balanceRight(p *Node) *Node {
	if 2 == p.balance() {
		if p.left.balance() >= 0 {
			// single LL rotation
			return rotateRight(p)
		}
		// double LR rotation
		return rotateLeftRight(p)
	}
	return p
}

// DeleteMin - remove the lowest key
// returns that key and the new version of the tree; the receiver is
// unchanged
//
// The tree must not be empty: calling DeleteMin on an empty tree is a
// programmer error and panics with fault.ErrDeleteMinFromEmptyTree.
func (tree *Tree) DeleteMin() (Item, *Tree) {
	if nil == tree.root {
		panic(fault.ErrDeleteMinFromEmptyTree)
	}
	key, root := deleteMin(tree.root)
	return key, &Tree{root: root}
}

// internal: remove the leftmost node of a non-empty sub-tree
func deleteMin(p *Node) (Item, *Node) {
	if nil == p.left {
		// this node holds the minimum, promote its right branch
		return p.key, p.right
	}
	min, left := deleteMin(p.left)
	return min, balanceLeft(newNode(p.key, left, p.right))
}

// Delete - remove a key from the tree
// returns the new version of the tree; the receiver is unchanged
//
// Deleting a key that is not present is a no-op that returns the
// receiver itself.
func (tree *Tree) Delete(key Item) *Tree {
	if nil == key {
		panic(fault.ErrNilKey)
	}
	root, removed := remove(key, tree.root)
	if !removed {
		return tree
	}
	return &Tree{root: root}
}

// internal routine for delete
func remove(key Item, p *Node) (*Node, bool) {
	if nil == p {
		return nil, false
	}

	switch p.key.Compare(key) {
	case +1: // p.key > key
		left, removed := remove(key, p.left)
		if !removed {
			return p, false
		}
		return balanceLeft(newNode(p.key, left, p.right)), true

	case -1: // p.key < key
		right, removed := remove(key, p.right)
		if !removed {
			return p, false
		}
		return balanceRight(newNode(p.key, p.left, right)), true

	default: // this is the node to remove
		if nil == p.right {
			return p.left, true
		}
		if nil == p.left {
			return p.right, true
		}
		// two branches: replace by the minimum of the right
		// branch, the smallest key greater than all of the left
		// branch
		min, right := deleteMin(p.right)
		return balanceRight(newNode(min, p.left, right)), true
	}
}
