// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package words - split a text corpus into a restartable sequence of words
//
// Words are found using Unicode word boundaries; a boundary segment
// is kept only if it contains at least one letter or number, so
// punctuation and white space are discarded.
package words
