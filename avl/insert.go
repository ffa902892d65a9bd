// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new item into the tree
//
// always adds a node, even if an equal item is already present
func (tree *Tree) Insert(key Item) {
	tree.root = tree.insert(key, tree.root)
	tree.count += 1
}

// internal routine for insert, returns the possibly updated sub-tree root
func (tree *Tree) insert(key Item, p *node) *node {
	if nil == p { // insert new node
		return tree.newNode(key)
	}
	if p.key.Compare(key) >= 0 { // p.key >= key
		p.left = tree.insert(key, p.left)
	} else {
		p.right = tree.insert(key, p.right)
	}
	p.update()
	return tree.rebalance(p)
}
