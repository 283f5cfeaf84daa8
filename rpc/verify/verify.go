// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package verify - admission checks for signed requests
package verify

import (
	"encoding/hex"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/operation"
)

// DefaultWindow - accepted clock difference for a request timestamp
const DefaultWindow = 5 * time.Minute

// Verifier - checks a signed request before it reaches the ledger
type Verifier interface {
	Verify(op operation.Signed) error
}

// Guard - signature, network, timestamp and replay checks
type Guard struct {
	log     *logger.L
	window  time.Duration
	testing bool
	seen    *cache.Cache
	now     func() time.Time
	started int64
}

// New - create a guard
//
// signatures are remembered for twice the window so a request cannot
// be replayed while its timestamp is still acceptable
//
// seen signatures are not persisted, so requests signed at or before
// the second the guard was created are refused; a restart cannot
// re-admit anything signed earlier
func New(log *logger.L, window time.Duration, isTesting bool) *Guard {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Guard{
		log:     log,
		window:  window,
		testing: isTesting,
		seen:    cache.New(2*window, window),
		now:     time.Now,
		started: time.Now().Unix(),
	}
}

// Verify - admit a request at most once
func (g *Guard) Verify(op operation.Signed) error {
	header := op.Identity()
	if nil == header.Caller {
		return fault.ErrMissingIdentity
	}
	if header.Caller.IsTesting() != g.testing {
		return fault.ErrWrongNetworkForKey
	}

	now := g.now()
	timestamp := time.Unix(int64(header.Timestamp), 0)
	if timestamp.Before(now.Add(-g.window)) || timestamp.After(now.Add(g.window)) {
		g.log.Debugf("request time: %s  now: %s", timestamp, now)
		return fault.ErrRequestExpired
	}
	if int64(header.Timestamp) <= g.started {
		g.log.Debugf("request time: %s  precedes start", timestamp)
		return fault.ErrRequestBeforeStart
	}

	if err := operation.Verify(op); nil != err {
		return err
	}

	// Add fails if the key is present
	key := hex.EncodeToString(header.Signature)
	if err := g.seen.Add(key, struct{}{}, cache.DefaultExpiration); nil != err {
		g.log.Warnf("replayed request from: %s", header.Caller)
		return fault.ErrRequestReplayed
	}
	return nil
}
