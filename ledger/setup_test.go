// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/donald-oputims/cipher-market/balance"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/fixtures"
	"github.com/donald-oputims/cipher-market/ledger"
)

type testClock struct {
	height uint64
}

func (c *testClock) Height() uint64 {
	return c.height
}

var (
	testDescription = strings.Repeat("d", 20)
	testCategory    = "music"
	testToken       = strings.Repeat("T", 40)
)

const buyerFunds = 1000000

func setup(t *testing.T) (*ledger.Ledger, *testClock) {
	err := fixtures.SetupTestDatabase()
	if nil != err {
		t.Fatalf("setup database error: %s", err)
	}

	clock := &testClock{height: 10}
	conf := &ledger.Configuration{
		Owner:    fixtures.Owner,
		Platform: fixtures.Platform,
		FeeRate:  ledger.DefaultFeeRate,
		Allocations: []ledger.Allocation{
			{Account: fixtures.Buyer, Amount: buyerFunds},
			{Account: fixtures.Other, Amount: buyerFunds},
		},
	}
	l, err := ledger.New(conf, balance.New(logger.New(fixtures.LogCategory)), clock)
	if nil != err {
		t.Fatalf("new ledger error: %s", err)
	}
	return l, clock
}

func teardown() {
	fixtures.TeardownTestDatabase()
}

func TestNewSeedsProtocolState(t *testing.T) {
	l, _ := setup(t)
	defer teardown()

	state := l.State()
	assert.Equal(t, uint64(1), state.NextAssetId, "next asset id")
	assert.Equal(t, uint64(ledger.DefaultFeeRate), state.FeeRate, "fee rate")
	assert.Equal(t, uint64(0), state.TotalVolume, "volume")
	assert.True(t, fixtures.Owner.Equal(state.Owner), "owner")
	assert.True(t, fixtures.Platform.Equal(state.Platform), "platform")

	assert.Equal(t, uint64(buyerFunds), l.Balance(fixtures.Buyer), "allocation")
	assert.Equal(t, uint64(0), l.Balance(fixtures.Creator), "unfunded account")
}

func TestOwnerCannotChange(t *testing.T) {
	l, clock := setup(t)
	defer teardown()

	_, err := l.CreateListing(fixtures.Creator, 5, testDescription, testCategory, testToken)
	assert.Nil(t, err, "create")

	values := balance.New(logger.New(fixtures.LogCategory))

	// same owner reopens without reseeding
	same, err := ledger.New(&ledger.Configuration{Owner: fixtures.Owner, FeeRate: 50}, values, clock)
	assert.Nil(t, err, "reopen with same owner")
	state := same.State()
	assert.Equal(t, uint64(2), state.NextAssetId, "counters reset")
	assert.Equal(t, uint64(ledger.DefaultFeeRate), state.FeeRate, "fee rate reset")
	assert.True(t, fixtures.Owner.Equal(state.Platform), "platform default")
	assert.Equal(t, uint64(buyerFunds), same.Balance(fixtures.Buyer), "allocation applied twice")

	_, err = ledger.New(&ledger.Configuration{Owner: fixtures.Other}, values, clock)
	assert.Equal(t, fault.ErrOwnerCannotChange, err, "owner changed")
}

func TestNewInvalidConfiguration(t *testing.T) {
	err := fixtures.SetupTestDatabase()
	assert.Nil(t, err, "setup")
	defer teardown()

	values := balance.New(logger.New(fixtures.LogCategory))
	clock := &testClock{}

	_, err = ledger.New(&ledger.Configuration{}, values, clock)
	assert.Equal(t, fault.ErrMissingParameters, err, "missing owner")

	_, err = ledger.New(&ledger.Configuration{Owner: fixtures.Owner, FeeRate: 101}, values, clock)
	assert.Equal(t, fault.ErrFeeRateOutOfRange, err, "fee rate")

	_, err = ledger.New(&ledger.Configuration{Owner: fixtures.Owner}, values, nil)
	assert.Equal(t, fault.ErrMissingParameters, err, "missing clock")
}
