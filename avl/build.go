// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Build - fold a list of keys into a tree by repeated insertion
//
// The insertion order can change the shape of the resulting tree but
// never the set of keys it holds nor the balance of the tree;
// duplicates in the list are ignored.
func Build(keys []Item) *Tree {
	tree := New()
	for _, key := range keys {
		tree = tree.Insert(key)
	}
	return tree
}
