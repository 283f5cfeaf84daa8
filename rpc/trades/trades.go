// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trades

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/ledger"
	"github.com/donald-oputims/cipher-market/mode"
	"github.com/donald-oputims/cipher-market/operation"
	"github.com/donald-oputims/cipher-market/record"
	"github.com/donald-oputims/cipher-market/rpc/ratelimit"
	"github.com/donald-oputims/cipher-market/rpc/verify"
)

// Trades
// ------

const (
	rateLimitTrades = 200
	rateBurstTrades = 100
)

// Trades - type for the RPC
type Trades struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	IsTesting    bool
	Verifier     verify.Verifier
	Market       ledger.Marketplace
}

// New - create the purchase RPC
func New(log *logger.L, isNormalMode func(mode.Mode) bool, isTesting bool, verifier verify.Verifier, market ledger.Marketplace) *Trades {
	return &Trades{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitTrades, rateBurstTrades),
		IsNormalMode: isNormalMode,
		IsTesting:    isTesting,
		Verifier:     verifier,
		Market:       market,
	}
}

// Purchase an asset
// -----------------

// PurchaseReply - result of a purchase
type PurchaseReply struct {
	Receipt *ledger.Receipt `json:"receipt"`
}

// Purchase - buy a licence for an asset
func (trades *Trades) Purchase(arguments *operation.Purchase, reply *PurchaseReply) error {

	if err := ratelimit.Limit(trades.Limiter); nil != err {
		return err
	}
	if !trades.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := trades.Verifier.Verify(arguments); nil != err {
		return err
	}

	trades.Log.Infof("Trades.Purchase: asset id: %d  buyer: %s", arguments.AssetId, arguments.Caller)

	receipt, err := trades.Market.Purchase(arguments.Caller, arguments.AssetId)
	if nil != err {
		return err
	}

	reply.Receipt = receipt
	return nil
}

// Get a trade
// -----------

// GetArguments - arguments for RPC
type GetArguments struct {
	Buyer   *account.Account `json:"buyer"` // base58
	AssetId uint64           `json:"assetId,string"`
}

// GetReply - result of get trade
type GetReply struct {
	Found bool          `json:"found"`
	Trade *record.Trade `json:"trade,omitempty"`
}

// Get - the trade of a buyer for an asset
func (trades *Trades) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(trades.Limiter); nil != err {
		return err
	}
	if err := trades.checkAccount(arguments.Buyer); nil != err {
		return err
	}

	trades.Log.Debugf("Trades.Get: buyer: %s  asset id: %d", arguments.Buyer, arguments.AssetId)

	reply.Trade, reply.Found = trades.Market.Trade(arguments.Buyer, arguments.AssetId)
	return nil
}

// Licences of a buyer
// -------------------

// LicencesArguments - arguments for RPC
type LicencesArguments struct {
	Buyer *account.Account `json:"buyer"` // base58
}

// LicencesReply - result of licences
type LicencesReply struct {
	Licences []ledger.Licence `json:"licences"`
}

// Licences - every asset a buyer has purchased
func (trades *Trades) Licences(arguments *LicencesArguments, reply *LicencesReply) error {

	if err := ratelimit.Limit(trades.Limiter); nil != err {
		return err
	}
	if err := trades.checkAccount(arguments.Buyer); nil != err {
		return err
	}

	trades.Log.Debugf("Trades.Licences: buyer: %s", arguments.Buyer)

	licences, err := trades.Market.Licences(arguments.Buyer)
	if nil != err {
		return err
	}

	reply.Licences = licences
	return nil
}

func (trades *Trades) checkAccount(a *account.Account) error {
	if nil == a {
		return fault.ErrMissingIdentity
	}
	if a.IsTesting() != trades.IsTesting {
		return fault.ErrWrongNetworkForKey
	}
	return nil
}
