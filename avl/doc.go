// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced binary search tree with structural
// sharing between versions
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs, reworked here so
// that no node is ever modified after creation: every insert or
// delete returns a new tree version built from new nodes along the
// affected path, sharing all other subtrees with previous versions.
// Prior versions stay valid, so any number of go routines may read
// any version without locking; writers extending the same logical
// tree must be serialised by the caller.
//
// Each node caches its height (edges to the deepest empty sub-tree,
// -1 for an empty tree, 0 for a leaf).  The heights of the two
// branches of any node never differ by more than one; at most one
// single or double rotation per insertion restores this.
//
// Keys must be mutually comparable: the Compare implementation of a
// key is expected to panic (normally on a failed type assertion) when
// given a value it cannot be ordered against.
package avl
