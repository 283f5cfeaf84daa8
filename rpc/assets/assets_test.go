// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/ledger"
	"github.com/donald-oputims/cipher-market/mode"
	"github.com/donald-oputims/cipher-market/operation"
	"github.com/donald-oputims/cipher-market/record"
	"github.com/donald-oputims/cipher-market/rpc/assets"
	"github.com/donald-oputims/cipher-market/rpc/fixtures"
	"github.com/donald-oputims/cipher-market/rpc/mocks"
)

func normalMode(_ mode.Mode) bool { return true }

func TestAssetsCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	v := mocks.NewMockVerifier(ctl)
	m := mocks.NewMockMarketplace(ctl)

	a := assets.New(logger.New(fixtures.LogCategory), normalMode, v, m)

	arg := operation.CreateListing{
		Price:       1000,
		Description: strings.Repeat("d", 20),
		Category:    "music",
		Token:       strings.Repeat("T", 40),
	}
	operation.Sign(&arg, fixtures.CreatorKey, 1600000000)

	v.EXPECT().Verify(&arg).Return(nil).Times(1)
	m.EXPECT().CreateListing(arg.Caller, arg.Price, arg.Description, arg.Category, arg.Token).Return(uint64(1), nil).Times(1)

	var reply assets.CreateReply
	err := a.Create(&arg, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, uint64(1), reply.AssetId, "wrong asset id")
}

func TestAssetsCreateRejected(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	v := mocks.NewMockVerifier(ctl)
	m := mocks.NewMockMarketplace(ctl)

	arg := operation.CreateListing{Price: 1}

	// not in normal mode: nothing is verified or stored
	a := assets.New(logger.New(fixtures.LogCategory), func(_ mode.Mode) bool { return false }, v, m)
	var reply assets.CreateReply
	err := a.Create(&arg, &reply)
	assert.Equal(t, fault.ErrNotAvailableDuringStartup, err, "wrong error")

	// failed verification never reaches the ledger
	a = assets.New(logger.New(fixtures.LogCategory), normalMode, v, m)
	v.EXPECT().Verify(&arg).Return(fault.ErrInvalidSignature).Times(1)
	err = a.Create(&arg, &reply)
	assert.Equal(t, fault.ErrInvalidSignature, err, "wrong error")
}

func TestAssetsUpdateAndRemove(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	v := mocks.NewMockVerifier(ctl)
	m := mocks.NewMockMarketplace(ctl)

	a := assets.New(logger.New(fixtures.LogCategory), normalMode, v, m)

	update := operation.UpdatePrice{AssetId: 3, Price: 70}
	operation.Sign(&update, fixtures.CreatorKey, 1600000000)
	remove := operation.RemoveListing{AssetId: 3}
	operation.Sign(&remove, fixtures.BuyerKey, 1600000000)

	v.EXPECT().Verify(gomock.Any()).Return(nil).Times(2)
	m.EXPECT().UpdatePrice(update.Caller, uint64(3), uint64(70)).Return(nil).Times(1)
	m.EXPECT().RemoveListing(remove.Caller, uint64(3)).Return(fault.ErrNotAssetCreator).Times(1)

	var reply assets.ChangeReply
	err := a.UpdatePrice(&update, &reply)
	assert.Nil(t, err, "wrong UpdatePrice")
	assert.Equal(t, uint64(3), reply.AssetId, "wrong asset id")

	err = a.Remove(&remove, &reply)
	assert.Equal(t, fault.ErrNotAssetCreator, err, "wrong Remove")
}

func TestAssetsGetAndList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketplace(ctl)
	a := assets.New(logger.New(fixtures.LogCategory), normalMode, mocks.NewMockVerifier(ctl), m)

	asset := &record.Asset{
		Creator:     fixtures.CreatorKey.Account(),
		Price:       10,
		Description: strings.Repeat("d", 20),
		Category:    "art",
	}
	m.EXPECT().Asset(uint64(1)).Return(asset, true).Times(1)
	m.EXPECT().Asset(uint64(2)).Return(nil, false).Times(1)
	m.EXPECT().ListAssets(uint64(1), 5).Return([]ledger.AssetEntry{{AssetId: 1, Asset: asset}}, uint64(2), nil).Times(1)

	var reply assets.GetReply
	err := a.Get(&assets.GetArguments{AssetId: 1}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.True(t, reply.Found, "not found")
	assert.Equal(t, asset, reply.Asset, "wrong asset")

	reply = assets.GetReply{}
	err = a.Get(&assets.GetArguments{AssetId: 2}, &reply)
	assert.Nil(t, err, "absent asset is an error")
	assert.False(t, reply.Found, "found")

	var list assets.ListReply
	err = a.List(&assets.ListArguments{Start: 1, Count: 5}, &list)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 1, len(list.Assets), "wrong count")
	assert.Equal(t, uint64(2), list.Next, "wrong next")

	err = a.List(&assets.ListArguments{Start: 1, Count: 0}, &list)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}
