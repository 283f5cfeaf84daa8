// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

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
	rateLimitProtocol = 200
	rateBurstProtocol = 100
)

// Protocol - type for the RPC
type Protocol struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Verifier     verify.Verifier
	Market       ledger.Marketplace
}

// New - create the protocol administration RPC
func New(log *logger.L, isNormalMode func(mode.Mode) bool, verifier verify.Verifier, market ledger.Marketplace) *Protocol {
	return &Protocol{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitProtocol, rateBurstProtocol),
		IsNormalMode: isNormalMode,
		Verifier:     verifier,
		Market:       market,
	}
}

// SetFeeRateReply - the new rate
type SetFeeRateReply struct {
	FeeRate uint64 `json:"feeRate"`
}

// SetFeeRate - owner replaces the fee rate
func (protocol *Protocol) SetFeeRate(arguments *operation.SetFeeRate, reply *SetFeeRateReply) error {

	if err := ratelimit.Limit(protocol.Limiter); nil != err {
		return err
	}
	if !protocol.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}
	if err := protocol.Verifier.Verify(arguments); nil != err {
		return err
	}

	protocol.Log.Infof("Protocol.SetFeeRate: %d  caller: %s", arguments.FeeRate, arguments.Caller)

	err := protocol.Market.SetFeeRate(arguments.Caller, arguments.FeeRate)
	if nil != err {
		return err
	}

	reply.FeeRate = arguments.FeeRate
	return nil
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// Info - current protocol parameters
func (protocol *Protocol) Info(_ *InfoArguments, reply *ledger.ProtocolState) error {

	if err := ratelimit.Limit(protocol.Limiter); nil != err {
		return err
	}

	*reply = protocol.Market.State()
	return nil
}
