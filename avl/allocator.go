// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node struct {
	left    *node // left sub-tree
	right   *node // right sub-tree
	key     Item  // key part for ordering
	height  int   // -1 for empty, 0 for a leaf
	balance int   // height(left) - height(right)
}

// allocate a new leaf, reuses reclaimed nodes if any are available
func (tree *Tree) newNode(key Item) *node {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		tree.totalNodes += 1
		return &node{
			key: key,
		}
	}
	p := tree.pool
	tree.pool = p.left
	p.key = key
	p.left = nil
	p.right = nil
	p.height = 0
	p.balance = 0
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the tree's pool
func (tree *Tree) freeNode(p *node) {
	p.left = tree.pool // use as free list pointer
	p.right = nil
	p.key = nil
	p.height = 0
	p.balance = 0
	tree.freeNodes += 1

	tree.pool = p
}
