// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/operation"
	"github.com/donald-oputims/cipher-market/rpc/fixtures"
	"github.com/donald-oputims/cipher-market/rpc/verify"
)

const testTime = 1600000000

func newGuard() *verify.Guard {
	g := verify.New(logger.New(fixtures.LogCategory), time.Minute, true)
	g.SetClock(func() time.Time { return time.Unix(testTime, 0) })
	return g
}

func TestVerify(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g := newGuard()

	op := &operation.Purchase{AssetId: 1}
	operation.Sign(op, fixtures.BuyerKey, testTime)

	assert.Nil(t, g.Verify(op), "first request")
	assert.Equal(t, fault.ErrRequestReplayed, g.Verify(op), "replay accepted")

	// a fresh signature on the same operation is a new request
	operation.Sign(op, fixtures.BuyerKey, testTime+1)
	assert.Nil(t, g.Verify(op), "new timestamp")
}

func TestVerifyRejects(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g := newGuard()

	old := &operation.Purchase{AssetId: 1}
	operation.Sign(old, fixtures.BuyerKey, testTime-61)
	assert.Equal(t, fault.ErrRequestExpired, g.Verify(old), "old request")

	future := &operation.Purchase{AssetId: 1}
	operation.Sign(future, fixtures.BuyerKey, testTime+61)
	assert.Equal(t, fault.ErrRequestExpired, g.Verify(future), "future request")

	live := &operation.Purchase{AssetId: 1}
	operation.Sign(live, fixtures.LiveKey, testTime)
	assert.Equal(t, fault.ErrWrongNetworkForKey, g.Verify(live), "live key on test chain")

	forged := &operation.Purchase{AssetId: 1}
	operation.Sign(forged, fixtures.BuyerKey, testTime)
	forged.Caller = fixtures.CreatorKey.Account()
	assert.Equal(t, fault.ErrInvalidSignature, g.Verify(forged), "forged caller")

	anonymous := &operation.Purchase{AssetId: 1}
	assert.Equal(t, fault.ErrMissingIdentity, g.Verify(anonymous), "no caller")
}

func TestVerifyAfterRestart(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	op := &operation.Purchase{AssetId: 1}
	operation.Sign(op, fixtures.BuyerKey, testTime)

	before := newGuard()
	assert.Nil(t, before.Verify(op), "first request")

	// a new guard has no memory of the signatures already admitted
	after := newGuard()
	after.SetStarted(time.Unix(testTime, 0))
	assert.Equal(t, fault.ErrRequestBeforeStart, after.Verify(op), "replay after restart")

	operation.Sign(op, fixtures.BuyerKey, testTime-10)
	assert.Equal(t, fault.ErrRequestBeforeStart, after.Verify(op), "earlier request after restart")

	operation.Sign(op, fixtures.BuyerKey, testTime+1)
	assert.Nil(t, after.Verify(op), "request signed after restart")
}
