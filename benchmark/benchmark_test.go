// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark_test

import (
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/uniquewords/benchmark"
	"github.com/bitmark-inc/uniquewords/words"
	"github.com/bitmark-inc/uniquewords/words/mocks"
)

func TestRunWithMockSource(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockSource(ctl)
	gomock.InOrder(
		s.EXPECT().First().Return("b", true).Times(1),
		s.EXPECT().Next().Return("a", true).Times(1),
		s.EXPECT().Next().Return("b", true).Times(1),
		s.EXPECT().Next().Return("c", true).Times(1),
		s.EXPECT().Next().Return("", false).Times(1),
	)

	r := benchmark.Run(logger.New("test"), s, true)

	assert.True(t, r.Balanced, "balanced")
	assert.Equal(t, 4, r.Words, "words")
	assert.Equal(t, 3, r.Unique, "unique")
	assert.Equal(t, 1, r.Height, "height")
	assert.Equal(t, uint64(0), r.Rotations, "rotations")

	// b: empty tree, a: b, b: b, c: b
	assert.Equal(t, uint64(3), r.Comparisons, "comparisons")
	assert.Equal(t, "[a:H0:B0, b:H1:B0, c:H0:B0]", r.Tree.String(), "tree")
}

func TestRunUnique(t *testing.T) {
	source := words.NewList("the", "war", "and", "the", "peace", "and", "the", "war")

	r := benchmark.Run(logger.New("test"), source, true)
	assert.Equal(t, 8, r.Words, "words")
	assert.Equal(t, 4, r.Unique, "unique")
	assert.NoError(t, r.Tree.Check(), "tree check")

	// a set: strictly increasing
	var previous words.Word
	n := 0
	for item := range r.Tree.Items() {
		w := item.(words.Word)
		if n > 0 && previous.Compare(w) >= 0 {
			t.Fatalf("out of order: %q then %q", previous, w)
		}
		previous = w
		n += 1
	}
	assert.Equal(t, 4, n, "items")
}

func TestCompare(t *testing.T) {
	alphabet := make([]string, 0, 26)
	for c := 'a'; c <= 'z'; c += 1 {
		alphabet = append(alphabet, string(c))
	}
	source := words.NewList(alphabet...)

	balanced, naive := benchmark.Compare(logger.New("test"), source)

	assert.Equal(t, 26, balanced.Unique, "balanced unique")
	assert.Equal(t, 26, naive.Unique, "naive unique")

	assert.Equal(t, 25, naive.Height, "naive height")
	assert.Equal(t, uint64(0), naive.Rotations, "naive rotations")

	assert.Equal(t, 4, balanced.Height, "balanced height")
	assert.True(t, balanced.Rotations > 0, "balanced rotations")
	assert.True(t, balanced.Comparisons < naive.Comparisons, "balanced comparisons: %d  naive: %d", balanced.Comparisons, naive.Comparisons)
}

func TestResultString(t *testing.T) {
	r := benchmark.Run(logger.New("test"), words.NewList("one", "two", "one"), false)
	s := r.String()
	assert.True(t, strings.HasPrefix(s, "Runtime of naive tree: 0 seconds and "), "runtime line: %q", s)
	assert.Contains(t, s, "unique words: 2\n", "unique count")
	assert.Contains(t, s, "words:        3\n", "word count")
}
