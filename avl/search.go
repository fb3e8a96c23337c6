// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
// returns the node and its in-order index, or nil and -1 if the key
// is not present
func (tree *Tree) Search(key Item) (*Node, int) {
	return search(key, tree.root, 0)
}

func search(key Item, p *Node, index int) (*Node, int) {
	if nil == p {
		return nil, -1
	}

	switch p.key.Compare(key) {
	case +1: // p.key > key
		return search(key, p.left, index)
	case -1: // p.key < key
		return search(key, p.right, index+p.left.size()+1)
	default:
		return p, index + p.left.size()
	}
}
