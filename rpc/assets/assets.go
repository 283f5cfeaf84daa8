// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/ledger"
	"github.com/donald-oputims/cipher-market/mode"
	"github.com/donald-oputims/cipher-market/operation"
	"github.com/donald-oputims/cipher-market/record"
	"github.com/donald-oputims/cipher-market/rpc/ratelimit"
	"github.com/donald-oputims/cipher-market/rpc/verify"
)

// Assets
// ------

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// Assets - type for the RPC
type Assets struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Verifier     verify.Verifier
	Market       ledger.Marketplace
}

// New - create the asset registry RPC
func New(log *logger.L, isNormalMode func(mode.Mode) bool, verifier verify.Verifier, market ledger.Marketplace) *Assets {
	return &Assets{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		IsNormalMode: isNormalMode,
		Verifier:     verifier,
		Market:       market,
	}
}

// admit a signed request
func (assets *Assets) admit(op operation.Signed) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}
	if !assets.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	return assets.Verifier.Verify(op)
}

// Create a listing
// ----------------

// CreateReply - result of listing an asset
type CreateReply struct {
	AssetId uint64 `json:"assetId,string"`
}

// Create - list a new asset
func (assets *Assets) Create(arguments *operation.CreateListing, reply *CreateReply) error {

	if err := assets.admit(arguments); nil != err {
		return err
	}

	assets.Log.Infof("Assets.Create: caller: %s  price: %d  category: %q", arguments.Caller, arguments.Price, arguments.Category)

	assetId, err := assets.Market.CreateListing(
		arguments.Caller,
		arguments.Price,
		arguments.Description,
		arguments.Category,
		arguments.Token,
	)
	if nil != err {
		return err
	}

	reply.AssetId = assetId
	return nil
}

// Change an asset
// ---------------

// ChangeReply - result of a price change or removal
type ChangeReply struct {
	AssetId uint64 `json:"assetId,string"`
}

// UpdatePrice - creator changes the price of an asset
func (assets *Assets) UpdatePrice(arguments *operation.UpdatePrice, reply *ChangeReply) error {

	if err := assets.admit(arguments); nil != err {
		return err
	}

	assets.Log.Infof("Assets.UpdatePrice: %d  price: %d", arguments.AssetId, arguments.Price)

	err := assets.Market.UpdatePrice(arguments.Caller, arguments.AssetId, arguments.Price)
	if nil != err {
		return err
	}

	reply.AssetId = arguments.AssetId
	return nil
}

// Remove - creator delists an asset
func (assets *Assets) Remove(arguments *operation.RemoveListing, reply *ChangeReply) error {

	if err := assets.admit(arguments); nil != err {
		return err
	}

	assets.Log.Infof("Assets.Remove: %d", arguments.AssetId)

	err := assets.Market.RemoveListing(arguments.Caller, arguments.AssetId)
	if nil != err {
		return err
	}

	reply.AssetId = arguments.AssetId
	return nil
}

// Get asset data
// --------------

// GetArguments - arguments for RPC
type GetArguments struct {
	AssetId uint64 `json:"assetId,string"`
}

// GetReply - result of get asset
type GetReply struct {
	Found bool          `json:"found"`
	Asset *record.Asset `json:"asset,omitempty"`
}

// Get - details of an asset
func (assets *Assets) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	assets.Log.Debugf("Assets.Get: %d", arguments.AssetId)

	reply.Asset, reply.Found = assets.Market.Asset(arguments.AssetId)
	return nil
}

// List assets
// -----------

// ListArguments - arguments for RPC
type ListArguments struct {
	Start uint64 `json:"start,string"` // first asset id
	Count int    `json:"count"`        // number of records
}

// ListReply - result of list assets
type ListReply struct {
	Assets []ledger.AssetEntry `json:"assets"`
	Next   uint64              `json:"next,string"` // Start value for the next call, zero at end
}

// List - page through assets in identifier order
func (assets *Assets) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(assets.Limiter, arguments.Count, ledger.MaximumListCount); nil != err {
		return err
	}

	assets.Log.Debugf("Assets.List: %+v", arguments)

	entries, next, err := assets.Market.ListAssets(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Assets = entries
	reply.Next = next
	return nil
}
