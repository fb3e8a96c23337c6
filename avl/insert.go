// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordertree/fault"
)

// Insert - add a key to the tree
// returns the new version of the tree; the receiver is unchanged
//
// Inserting a key that is already present is a no-op that returns the
// receiver itself, sharing the original root.
func (tree *Tree) Insert(key Item) *Tree {
	if nil == key {
		panic(fault.ErrNilKey)
	}
	root, added := insert(key, tree.root)
	if !added {
		return tree
	}
	return &Tree{root: root}
}

// internal routine for insert
//
// A branch grows by at most one level per insertion, so at most one
// rotation (single or double) along the path restores the balance.
// The side of the grandchild that received the new key decides
// between them, determined by comparing the new key with the child.
func insert(key Item, p *Node) (*Node, bool) {
	if nil == p {
		return newNode(key, nil, nil), true
	}

	switch p.key.Compare(key) {
	case +1: // p.key > key
		left, added := insert(key, p.left)
		if !added {
			return p, false
		}
		p = newNode(p.key, left, p.right)
		if 2 == p.balance() {
			// left branch has grown
			if 1 == p.left.key.Compare(key) {
				// new key below the left child, single LL
				p = rotateRight(p)
			} else {
				// new key above the left child, double LR
				p = rotateLeftRight(p)
			}
		}
		return p, true

	case -1: // p.key < key
		right, added := insert(key, p.right)
		if !added {
			return p, false
		}
		p = newNode(p.key, p.left, right)
		if -2 == p.balance() {
			// right branch has grown
			if -1 == p.right.key.Compare(key) {
				// new key above the right child, single RR
				p = rotateLeft(p)
			} else {
				// new key below the right child, double RL
				p = rotateRightLeft(p)
			}
		}
		return p, true

	default: // duplicate key
		return p, false
	}
}
