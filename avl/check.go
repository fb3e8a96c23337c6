// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

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

// CheckHeights - verify the cached heights against the real depth of
// every sub-tree
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

// internal: height consistency checker
func checkHeights(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	hl, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		fmt.Printf("height fail at node: %v  actual: %d  expected: %d\n", p.key, p.height, h)
		return 0, false
	}
	return h, true
}

// CheckBalance - verify that the branch heights of every node differ
// by at most one
func (tree *Tree) CheckBalance() bool {
	return checkBalance(tree.root)
}

// internal: balance invariant checker
func checkBalance(p *Node) bool {
	if nil == p {
		return true
	}
	b := p.balance()
	if b < -1 || b > 1 {
		fmt.Printf("balance fail at node: %v  factor: %d\n", p.key, b)
		return false
	}
	if !checkBalance(p.left) {
		return false
	}
	return checkBalance(p.right)
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
