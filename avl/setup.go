// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/uniquewords/counter"
)

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0 or +1 for less, equal or greater, and equality
// must be consistent with ordering
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root        *node
	count       int
	balanced    bool
	rotations   counter.Counter
	comparisons counter.Counter

	// reclaimed nodes
	pool       *node
	freeNodes  int
	totalNodes int
}

// New - create an initially empty tree
//
// balanced selects AVL rebalancing, it cannot be changed later
func New(balanced bool) *Tree {
	return &Tree{
		root:     nil,
		count:    0,
		balanced: balanced,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return 0 == tree.count
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the root node, -1 for an empty tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Balanced - true if the tree rebalances itself
func (tree *Tree) Balanced() bool {
	return tree.balanced
}

// Rotations - total rotations performed by inserts and deletes
func (tree *Tree) Rotations() uint64 {
	return tree.rotations.Uint64()
}

// Comparisons - total nodes visited by Find
func (tree *Tree) Comparisons() uint64 {
	return tree.comparisons.Uint64()
}

// ResetStatistics - zero the rotation and comparison counters
func (tree *Tree) ResetStatistics() {
	tree.rotations.Reset()
	tree.comparisons.Reset()
}
