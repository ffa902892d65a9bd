// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"

	"github.com/bitmark-inc/uniquewords/fault"
)

// longest line accepted from a corpus
const maximumLineLength = 1024 * 1024

// Options - control word extraction
type Options struct {
	FoldCase      bool // apply Unicode case folding so "The" and "the" are one word
	MinimumLength int  // discard words with fewer runes than this
}

// Book - the words of a text corpus
type Book struct {
	List
	Name string
}

// ReadFile - open and read a corpus file
func ReadFile(fileName string, options Options) (*Book, error) {
	f, err := os.Open(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", fault.ErrCorpusFileMissing, fileName)
		}
		return nil, err
	}
	defer f.Close()

	book, err := Read(f, options)
	if nil != err {
		return nil, err
	}
	book.Name = fileName
	return book, nil
}

// Read - extract all words from a reader
func Read(r io.Reader, options Options) (*Book, error) {
	if options.MinimumLength < 0 {
		return nil, fault.ErrInvalidMinimumLength
	}

	var fold cases.Caser
	if options.FoldCase {
		fold = cases.Fold()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maximumLineLength)

	words := make([]string, 0, 1024)
	for scanner.Scan() {
		line := scanner.Text()
		state := -1
		for len(line) > 0 {
			var word string
			word, line, state = uniseg.FirstWordInString(line, state)
			if !isWord(word) {
				continue
			}
			if options.FoldCase {
				word = fold.String(word)
			}
			if utf8.RuneCountInString(word) < options.MinimumLength {
				continue
			}
			words = append(words, word)
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	return &Book{
		List: List{
			words: words,
		},
	}, nil
}

// a segment is a word if it has any letter or number
func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
