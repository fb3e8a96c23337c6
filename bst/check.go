// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
)

// CheckOrder - verify the search tree order invariant: for every
// node all keys in its left branch compare lower and all keys in its
// right branch compare higher
func (tree *Tree) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

// internal: order consistency checker
func checkOrder(p *Node, lo Item, hi Item) bool {
	if nil == p {
		return true
	}
	if nil != lo && p.key.Compare(lo) <= 0 {
		fmt.Printf("order fail at node: %v  not above: %v\n", p.key, lo)
		return false
	}
	if nil != hi && p.key.Compare(hi) >= 0 {
		fmt.Printf("order fail at node: %v  not below: %v\n", p.key, hi)
		return false
	}
	if !checkOrder(p.left, lo, p.key) {
		return false
	}
	return checkOrder(p.right, p.key, hi)
}

// CheckCounts - verify the cached sub-tree node counts
func (tree *Tree) CheckCounts() bool {
	_, ok := checkCounts(tree.root)
	return ok
}

// internal: count consistency checker
func checkCounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, ok := checkCounts(p.left)
	if !ok {
		return 0, false
	}
	nr, ok := checkCounts(p.right)
	if !ok {
		return 0, false
	}
	n := 1 + nl + nr
	if n != p.nodes {
		fmt.Printf("count fail at node: %v  actual: %d  expected: %d\n", p.key, p.nodes, n)
		return 0, false
	}
	return n, true
}
