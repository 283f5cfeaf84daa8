// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credentials

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/ledger"
	"github.com/donald-oputims/cipher-market/mode"
	"github.com/donald-oputims/cipher-market/operation"
	"github.com/donald-oputims/cipher-market/rpc/ratelimit"
	"github.com/donald-oputims/cipher-market/rpc/verify"
)

const (
	rateLimitCredentials = 100
	rateBurstCredentials = 50
)

// Credentials - type for the RPC
type Credentials struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Verifier     verify.Verifier
	Market       ledger.Marketplace
}

// New - create the access gate RPC
func New(log *logger.L, isNormalMode func(mode.Mode) bool, verifier verify.Verifier, market ledger.Marketplace) *Credentials {
	return &Credentials{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitCredentials, rateBurstCredentials),
		IsNormalMode: isNormalMode,
		Verifier:     verifier,
		Market:       market,
	}
}

// GetReply - the encrypted token, returned verbatim
type GetReply struct {
	AssetId uint64 `json:"assetId,string"`
	Token   string `json:"token"`
}

// Get - encrypted token for a buyer of the asset
//
// the request is signed so only the buyer can present their identity
func (credentials *Credentials) Get(arguments *operation.GetCredentials, reply *GetReply) error {

	if err := ratelimit.Limit(credentials.Limiter); nil != err {
		return err
	}
	if !credentials.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := credentials.Verifier.Verify(arguments); nil != err {
		return err
	}

	credentials.Log.Infof("Credentials.Get: asset id: %d  requester: %s", arguments.AssetId, arguments.Caller)

	token, err := credentials.Market.GetCredentials(arguments.Caller, arguments.AssetId)
	if nil != err {
		return err
	}

	reply.AssetId = arguments.AssetId
	reply.Token = token
	return nil
}
