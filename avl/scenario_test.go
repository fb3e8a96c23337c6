// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordertree/avl"
)

// inserting an ascending run must trigger a single left rotation and
// leave the middle key at the root
func TestAscendingRunRotation(t *testing.T) {
	tree := avl.New().
		Insert(intItem(1)).
		Insert(intItem(2)).
		Insert(intItem(3))

	root := tree.Root()
	assert.Equal(t, intItem(2), root.Key(), "root key")
	assert.Equal(t, intItem(1), root.Left().Key(), "left key")
	assert.Equal(t, intItem(3), root.Right().Key(), "right key")
	assert.Equal(t, 1, tree.Height(), "tree height")
	assert.True(t, tree.CheckBalance(), "balance invariant")
}

// the mirrored descending run takes a single right rotation
func TestDescendingRunRotation(t *testing.T) {
	tree := avl.New().
		Insert(intItem(3)).
		Insert(intItem(2)).
		Insert(intItem(1))

	root := tree.Root()
	assert.Equal(t, intItem(2), root.Key(), "root key")
	assert.Equal(t, intItem(1), root.Left().Key(), "left key")
	assert.Equal(t, intItem(3), root.Right().Key(), "right key")
	assert.Equal(t, 1, tree.Height(), "tree height")
}

// zig-zag insertions take the double rotations
func TestDoubleRotation(t *testing.T) {
	// left-right: 3 then 1 then 2
	tree := avl.Build([]avl.Item{intItem(3), intItem(1), intItem(2)})
	assert.Equal(t, intItem(2), tree.Root().Key(), "LR root key")
	assert.Equal(t, 1, tree.Height(), "LR tree height")

	// right-left: 1 then 3 then 2
	tree = avl.Build([]avl.Item{intItem(1), intItem(3), intItem(2)})
	assert.Equal(t, intItem(2), tree.Root().Key(), "RL root key")
	assert.Equal(t, 1, tree.Height(), "RL tree height")
}

// the build example: the root settles on 6 and the tree stays within
// the logarithmic height bound
func TestBuildScenario(t *testing.T) {
	addList := []int{6, 0, 8, 4, 12, 9, 7, 5, 3, 2, 1}

	keys := make([]avl.Item, len(addList))
	for i, key := range addList {
		keys[i] = intItem(key)
	}
	tree := avl.Build(keys)

	assert.Equal(t, len(addList), tree.Count(), "count")
	assert.Equal(t, intItem(6), tree.Root().Key(), "root key")
	assert.Equal(t, intItem(0), tree.First().Key(), "minimum")
	assert.Equal(t, intItem(12), tree.Last().Key(), "maximum")

	// ceiling of log2(11+1) is 4
	assert.True(t, tree.Height() <= 4, "height %d above bound", tree.Height())
	assert.True(t, tree.CheckHeights(), "height consistency")
	assert.True(t, tree.CheckBalance(), "balance invariant")
}
