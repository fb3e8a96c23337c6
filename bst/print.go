// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// with the right branch above and the left branch below each node
func (tree *Tree) Print(printCounts bool) int {
	return printTree(tree.root, "", root, printCounts)
}

// internal print - returns the maximum depth of the tree
func printTree(p *Node, prefix string, br branch, printCounts bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(p.right, prefix+t, right, printCounts)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	if printCounts {
		fmt.Printf("%q [%d,%d]\n", p.key, p.left.size(), p.right.size())
	} else {
		fmt.Printf("%q\n", p.key)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(p.left, prefix+t, left, printCounts)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
