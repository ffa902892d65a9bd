// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered binary search tree with optional AVL
// height balancing
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches its height (an empty sub-tree is -1, a leaf is 0)
// and its balance factor (height of left minus height of right).
// All operations recurse from the root and replace sub-tree roots on
// the way back up; when balancing is enabled, single or double
// rotations keep every balance factor within -1…+1.
//
// A tree created with balancing disabled is a plain unbalanced BST,
// which is useful for comparing rotation and comparison counts.
//
// Insert never de-duplicates: an item equal to an existing one is
// stored as a new node in the left sub-tree.  Callers that want a set
// should Find before Insert.
package avl
