// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package benchmark - time the collection of unique words into a tree
package benchmark

import (
	"fmt"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/uniquewords/avl"
	"github.com/bitmark-inc/uniquewords/words"
)

// Result - statistics from a single run
type Result struct {
	Balanced    bool
	Words       int // words read from the source
	Unique      int // words stored in the tree
	Rotations   uint64
	Comparisons uint64
	Height      int
	Elapsed     time.Duration
	Tree        *avl.Tree
}

// Run - add every word not already present in a new tree
//
// each word is looked up before insertion, so the tree ends up as a
// set of the source's distinct words
func Run(log *logger.L, source words.Source, balanced bool) *Result {

	tree := avl.New(balanced)
	n := 0

	log.Debugf("start: balanced: %v", balanced)

	start := time.Now()
	for w, ok := source.First(); ok; w, ok = source.Next() {
		n += 1
		key := words.Word(w)
		if _, found := tree.Find(key); !found {
			tree.Insert(key)
		}
	}
	elapsed := time.Since(start)

	result := &Result{
		Balanced:    balanced,
		Words:       n,
		Unique:      tree.Count(),
		Rotations:   tree.Rotations(),
		Comparisons: tree.Comparisons(),
		Height:      tree.Height(),
		Elapsed:     elapsed,
		Tree:        tree,
	}

	log.Infof("balanced: %v  words: %d  unique: %d  height: %d  rotations: %d  comparisons: %d  elapsed: %s",
		balanced, result.Words, result.Unique, result.Height, result.Rotations, result.Comparisons, elapsed)

	return result
}

// Compare - run the same source through a balanced and a naive tree
func Compare(log *logger.L, source words.Source) (*Result, *Result) {
	balanced := Run(log, source, true)
	naive := Run(log, source, false)
	return balanced, naive
}

// String - human readable report
func (r *Result) String() string {
	name := "naive"
	if r.Balanced {
		name = "balanced"
	}
	ms := r.Elapsed.Milliseconds()

	var b strings.Builder
	fmt.Fprintf(&b, "Runtime of %s tree: %d seconds and %d milliseconds.\n", name, ms/1000, ms%1000)
	fmt.Fprintf(&b, "  words:        %d\n", r.Words)
	fmt.Fprintf(&b, "  unique words: %d\n", r.Unique)
	fmt.Fprintf(&b, "  height:       %d\n", r.Height)
	fmt.Fprintf(&b, "  rotations:    %d\n", r.Rotations)
	fmt.Fprintf(&b, "  comparisons:  %d\n", r.Comparisons)
	return b.String()
}
