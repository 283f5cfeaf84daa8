// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - atomic connection counting
package counter

import (
	"sync/atomic"
)

// Counter - a count shared between goroutines
type Counter uint64

// Acquire - increment unless the count has reached limit
//
// returns false without changing the count when at the limit
func (c *Counter) Acquire(limit uint64) bool {
	for {
		current := atomic.LoadUint64((*uint64)(c))
		if current >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), current, current+1) {
			return true
		}
	}
}

// Release - undo a successful Acquire
func (c *Counter) Release() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current count
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - true when nothing is held
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
