// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

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
		return newNode(p.key, left, p.right), true

	case -1: // p.key < key
		right, added := insert(key, p.right)
		if !added {
			return p, false
		}
		return newNode(p.key, p.left, right), true

	default: // duplicate key
		return p, false
	}
}
