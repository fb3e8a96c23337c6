// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree with structural
// sharing between versions
//
// Every mutating operation returns a new tree version built from new
// nodes along the affected path only; all other subtrees are shared
// with the previous version, which remains a valid unchanged tree.
// Because nodes are never modified after creation, any number of go
// routines may read any version without locking.  Writers extending
// the same logical tree must be serialised by the caller, e.g. by
// funnelling all updates through a single owner go routine that hands
// out the newest root.
//
// Keys must be mutually comparable: the Compare implementation of a
// key is expected to panic (normally on a failed type assertion) when
// given a value it cannot be ordered against.
package bst
