// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Unique words benchmark
//
// This program reads a text corpus, adds every distinct word to a
// search tree and reports the time taken together with the tree's
// height, rotation count and comparison count.  The tree can be run
// balanced, naive or both for comparison.  With --watch the corpus
// is re-read each time the file is written.
package main
