// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package participants

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/ledger"
	"github.com/donald-oputims/cipher-market/record"
	"github.com/donald-oputims/cipher-market/rpc/ratelimit"
)

const (
	rateLimitParticipants = 200
	rateBurstParticipants = 100
)

// Participants - type for the RPC
type Participants struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	IsTesting bool
	Market    ledger.Marketplace
}

// New - create the participant directory RPC
func New(log *logger.L, isTesting bool, market ledger.Marketplace) *Participants {
	return &Participants{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitParticipants, rateBurstParticipants),
		IsTesting: isTesting,
		Market:    market,
	}
}

// GetArguments - arguments for RPC
type GetArguments struct {
	Account *account.Account `json:"account"` // base58
}

// GetReply - statistics and balance of an account
type GetReply struct {
	Found   bool            `json:"found"`
	Profile *record.Profile `json:"profile,omitempty"`
	Balance uint64          `json:"balance"`
}

// Get - trading statistics and spendable balance
func (participants *Participants) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(participants.Limiter); nil != err {
		return err
	}
	if nil == arguments.Account {
		return fault.ErrMissingIdentity
	}
	if arguments.Account.IsTesting() != participants.IsTesting {
		return fault.ErrWrongNetworkForKey
	}

	participants.Log.Debugf("Participants.Get: %s", arguments.Account)

	reply.Profile, reply.Found = participants.Market.Participant(arguments.Account)
	reply.Balance = participants.Market.Balance(arguments.Account)
	return nil
}
