// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns false, leaving the tree unchanged, if the item is not present
func (tree *Tree) Delete(key Item) bool {
	if _, found := tree.Find(key); !found {
		return false
	}
	tree.count -= 1
	tree.root = tree.delete(key, tree.root)
	return true
}

// internal delete routine, returns the possibly updated sub-tree root
func (tree *Tree) delete(key Item, p *node) *node {
	if nil == p { // key not in tree
		return nil
	}
	switch c := p.key.Compare(key); {
	case 0 == c: // found: delete p
		if nil != p.left && nil != p.right {
			// take over the successor's key, then remove the successor
			successor := p.right.first()
			p.key = successor.key
			p.right = tree.delete(successor.key, p.right)
			break
		}
		q := p.left
		if nil == q {
			q = p.right
		}
		tree.freeNode(p) // return deleted node to pool
		return q
	case c > 0: // p.key > key
		p.left = tree.delete(key, p.left)
	default: // p.key < key
		p.right = tree.delete(key, p.right)
	}
	p.update()
	return tree.rebalance(p)
}
