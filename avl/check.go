// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/uniquewords/fault"
)

// Check - verify the structure of the tree
//
// returns nil if in-order items are non-decreasing, cached heights
// and balance factors match the children, a balanced tree has no
// balance factor outside -1…+1 and the node count is consistent
func (tree *Tree) Check() error {
	n, err := tree.checkNode(tree.root)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: reachable: %d  count: %d", fault.ErrCountMismatch, n, tree.count)
	}
	if tree.totalNodes-tree.freeNodes != tree.count {
		return fmt.Errorf("%w: allocated: %d  free: %d  count: %d", fault.ErrPoolCorrupt, tree.totalNodes, tree.freeNodes, tree.count)
	}

	var previous Item
	for key := range tree.Items() {
		if nil != previous && previous.Compare(key) > 0 {
			return fmt.Errorf("%w: %v before %v", fault.ErrOrderViolation, previous, key)
		}
		previous = key
	}
	return nil
}

// internal: consistency checker, returns the number of nodes in the sub-tree
func (tree *Tree) checkNode(p *node) (int, error) {
	if nil == p {
		return 0, nil
	}
	nl, err := tree.checkNode(p.left)
	if nil != err {
		return 0, err
	}
	nr, err := tree.checkNode(p.right)
	if nil != err {
		return 0, err
	}

	hl := height(p.left)
	hr := height(p.right)
	h := hl
	if hr > h {
		h = hr
	}
	if p.height != 1+h {
		return 0, fmt.Errorf("%w: node: %v  actual: %d  expected: %d", fault.ErrHeightMismatch, p.key, p.height, 1+h)
	}
	if p.balance != hl-hr {
		return 0, fmt.Errorf("%w: node: %v  actual: %d  expected: %d", fault.ErrBalanceMismatch, p.key, p.balance, hl-hr)
	}
	if tree.balanced && (p.balance < -1 || p.balance > 1) {
		return 0, fmt.Errorf("%w: node: %v  balance: %d", fault.ErrUnbalanced, p.key, p.balance)
	}
	return 1 + nl + nr, nil
}
