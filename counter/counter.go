// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - statistics counters owned by a single structure
//
// A counter is not synchronised; it must only be updated by the
// goroutine that owns the structure containing it.
package counter

// Counter - a monotonic 64 bit event count
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	*ic += 1
	return uint64(*ic)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	*ic += Counter(n)
	return uint64(*ic)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return uint64(*ic)
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == *ic
}

// Reset - set to zero, returns the previous value
func (ic *Counter) Reset() uint64 {
	n := uint64(*ic)
	*ic = 0
	return n
}
