// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - find a specific item
//
// returns the stored item, which compares equal to key, and true if
// present; every node visited adds one to the comparison count
func (tree *Tree) Find(key Item) (Item, bool) {
	p := tree.root
	for nil != p {
		tree.comparisons.Increment()
		switch c := p.key.Compare(key); {
		case 0 == c:
			return p.key, true
		case c > 0: // p.key > key
			p = p.left
		default: // p.key < key
			p = p.right
		}
	}
	return nil, false
}

// First - return the item with the lowest key value
func (tree *Tree) First() (Item, bool) {
	p := tree.root.first()
	if nil == p {
		return nil, false
	}
	return p.key, true
}

// internal: lowest node in a sub-tree
func (p *node) first() *node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the item with the highest key value
func (tree *Tree) Last() (Item, bool) {
	p := tree.root.last()
	if nil == p {
		return nil, false
	}
	return p.key, true
}

// internal: highest node in a sub-tree
func (p *node) last() *node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
