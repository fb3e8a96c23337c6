// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// The rotations are pure: each one allocates replacements for the
// nodes it restructures and leaves all other subtrees shared, so they
// are safe to apply even when the pivot is still referenced by an
// older tree version.

// rotateRight - single LL rotation for a left-heavy node
// the left child becomes the root of the sub-tree
func rotateRight(p *Node) *Node {
	p1 := p.left
	return newNode(p1.key, p1.left, newNode(p.key, p1.right, p.right))
}

// rotateLeft - single RR rotation for a right-heavy node
// the right child becomes the root of the sub-tree
func rotateLeft(p *Node) *Node {
	p1 := p.right
	return newNode(p1.key, newNode(p.key, p.left, p1.left), p1.right)
}

// rotateLeftRight - double LR rotation
// for a left-heavy node whose left child leans right: rotate the left
// child left, then the node right
func rotateLeftRight(p *Node) *Node {
	return rotateRight(newNode(p.key, rotateLeft(p.left), p.right))
}

// rotateRightLeft - double RL rotation
// for a right-heavy node whose right child leans left: rotate the
// right child right, then the node left
func rotateRightLeft(p *Node) *Node {
	return rotateLeft(newNode(p.key, p.left, rotateRight(p.right)))
}
