// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly empty sub-tree
func height(p *node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute cached height and balance factor from the children
func (p *node) update() {
	if nil == p {
		return
	}
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.balance = hl - hr
}

// restore the balance of a sub-tree whose children are already balanced
// returns the new sub-tree root
func (tree *Tree) rebalance(p *node) *node {
	if !tree.balanced || nil == p {
		return p
	}
	switch {
	case p.balance < -1: // right heavy
		if p.right.balance > 0 {
			// double RL rotation, right child leans left
			p.right = tree.rotateRight(p.right)
		}
		return tree.rotateLeft(p)

	case p.balance > 1: // left heavy
		if p.left.balance < 0 {
			// double LR rotation, left child leans right
			p.left = tree.rotateLeft(p.left)
		}
		return tree.rotateRight(p)
	}
	return p
}

// single left rotation
//
//	  x                y
//	 / \              / \
//	a   y     →      x   c
//	   / \          / \
//	  b   c        a   b
func (tree *Tree) rotateLeft(x *node) *node {
	tree.rotations.Increment()
	y := x.right
	x.right = y.left
	y.left = x
	x.update()
	y.update()
	return y
}

// single right rotation, mirror image of rotateLeft
func (tree *Tree) rotateRight(y *node) *node {
	tree.rotations.Increment()
	x := y.left
	y.left = x.right
	x.right = y
	y.update()
	x.update()
	return x
}
