// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"iter"
	"strings"
)

// Description - the state of a single node as seen by a traversal
type Description struct {
	Item    Item
	Height  int
	Balance int
}

// String - item:H<height>:B<balance>
func (d Description) String() string {
	return fmt.Sprintf("%v:H%d:B%d", d.Item, d.Height, d.Balance)
}

// All - in-order sequence of node descriptions
//
// the sequence is lazy and can be ranged over repeatedly, the tree
// must not be modified while a range is in progress
func (tree *Tree) All() iter.Seq[Description] {
	return func(yield func(Description) bool) {
		tree.root.walk(func(p *node) bool {
			return yield(Description{
				Item:    p.key,
				Height:  p.height,
				Balance: p.balance,
			})
		})
	}
}

// Items - in-order sequence of the stored items
func (tree *Tree) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		tree.root.walk(func(p *node) bool {
			return yield(p.key)
		})
	}
}

// internal: left, root, right traversal; stops early if f returns false
func (p *node) walk(f func(*node) bool) bool {
	if nil == p {
		return true
	}
	if !p.left.walk(f) {
		return false
	}
	if !f(p) {
		return false
	}
	return p.right.walk(f)
}

// String - in-order dump of all nodes
func (tree *Tree) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for d := range tree.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(d.String())
	}
	b.WriteByte(']')
	return b.String()
}
