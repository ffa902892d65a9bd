// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package words

import (
	"strings"
)

//go:generate mockgen -destination=mocks/source.go -package=mocks github.com/bitmark-inc/uniquewords/words Source

// Source - an ordered, finite sequence of words
//
// First restarts the sequence and returns its first word; Next
// advances and returns the following word.  Both return false once
// the sequence is exhausted.
type Source interface {
	First() (string, bool)
	Next() (string, bool)
}

// Word - a string that can be stored in an avl.Tree
type Word string

// Compare - lexical ordering of words
func (w Word) Compare(x interface{}) int {
	return strings.Compare(string(w), string(x.(Word)))
}

// String - the word itself
func (w Word) String() string {
	return string(w)
}

// List - a Source over a fixed list of words
type List struct {
	words []string
	index int
}

// NewList - create a source that yields the given words in order
func NewList(words ...string) *List {
	return &List{
		words: words,
		index: 0,
	}
}

// First - restart and return the first word
func (l *List) First() (string, bool) {
	l.index = 0
	return l.current()
}

// Next - advance and return the next word
func (l *List) Next() (string, bool) {
	if l.index < len(l.words) {
		l.index += 1
	}
	return l.current()
}

// Count - total number of words in the sequence
func (l *List) Count() int {
	return len(l.words)
}

func (l *List) current() (string, bool) {
	if l.index >= len(l.words) {
		return "", false
	}
	return l.words[l.index], true
}
