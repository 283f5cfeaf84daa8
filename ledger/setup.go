// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/record"
	"github.com/donald-oputims/cipher-market/storage"
)

// fee rate limits in parts per thousand
const (
	DefaultFeeRate = 25
	MaximumFeeRate = 100
	feeDivisor     = 1000
)

// keys in the protocol pool
var (
	nextAssetIdKey = []byte("next_asset_id")
	feeRateKey     = []byte("fee_rate")
	totalVolumeKey = []byte("total_volume")
	ownerKey       = []byte("owner")
)

// Allocation - value issued to an account when the database is created
type Allocation struct {
	Account *account.Account
	Amount  uint64
}

// Configuration - fixed parameters of the ledger
type Configuration struct {
	Owner       *account.Account // protocol owner, fixed on first run
	Platform    *account.Account // receives fees, defaults to owner
	FeeRate     uint64           // initial fee rate for a new database
	Allocations []Allocation     // initial balances for a new database
}

// Ledger - the marketplace state machine
type Ledger struct {
	sync.RWMutex

	log      *logger.L
	owner    *account.Account
	platform *account.Account
	values   ValueLedger
	clock    SequenceSource
}

// New - open the marketplace over the initialised storage
//
// a new database is seeded with the owner, the protocol counters and
// any allocations; an existing database must have the same owner
func New(conf *Configuration, values ValueLedger, clock SequenceSource) (*Ledger, error) {
	if nil == conf || nil == conf.Owner || nil == values || nil == clock {
		return nil, fault.ErrMissingParameters
	}
	if conf.FeeRate > MaximumFeeRate {
		return nil, fault.ErrFeeRateOutOfRange
	}

	platform := conf.Platform
	if nil == platform {
		platform = conf.Owner
	}

	l := &Ledger{
		log:      logger.New("ledger"),
		owner:    conf.Owner,
		platform: platform,
		values:   values,
		clock:    clock,
	}

	storedOwner := storage.Pool.Protocol.Get(ownerKey)
	if nil != storedOwner {
		owner, err := account.AccountFromBytes(storedOwner)
		if nil != err {
			return nil, err
		}
		if !owner.Equal(conf.Owner) {
			l.log.Criticalf("configured owner: %s  stored owner: %s", conf.Owner, owner)
			return nil, fault.ErrOwnerCannotChange
		}
		l.log.Infof("owner: %s  platform: %s", owner, platform)
		return l, nil
	}

	l.log.Infof("new database  owner: %s  fee rate: %d", conf.Owner, conf.FeeRate)

	trx, err := storage.NewTransaction()
	if nil != err {
		return nil, err
	}

	trx.Put(storage.Pool.Protocol, ownerKey, conf.Owner.Bytes())
	trx.PutN(storage.Pool.Protocol, nextAssetIdKey, 1)
	trx.PutN(storage.Pool.Protocol, feeRateKey, conf.FeeRate)
	trx.PutN(storage.Pool.Protocol, totalVolumeKey, 0)

	for _, a := range conf.Allocations {
		if nil == a.Account {
			trx.Abort()
			return nil, fault.ErrMissingParameters
		}
		err := values.Credit(trx, a.Account, a.Amount)
		if nil != err {
			trx.Abort()
			return nil, err
		}
		l.log.Infof("allocate: %d to: %s", a.Amount, a.Account)
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}
	return l, nil
}

// corrupted records cannot be recovered from
func mustUnpackAsset(log *logger.L, packed []byte) *record.Asset {
	asset, err := record.UnpackAsset(packed)
	if nil != err {
		log.Criticalf("corrupt asset record: %x  error: %s", packed, err)
		logger.Panicf("corrupt asset record: %s", err)
	}
	return asset
}

func mustUnpackTrade(log *logger.L, packed []byte) *record.Trade {
	trade, err := record.UnpackTrade(packed)
	if nil != err {
		log.Criticalf("corrupt trade record: %x  error: %s", packed, err)
		logger.Panicf("corrupt trade record: %s", err)
	}
	return trade
}

func mustUnpackProfile(log *logger.L, packed []byte) *record.Profile {
	profile, err := record.UnpackProfile(packed)
	if nil != err {
		log.Criticalf("corrupt profile record: %x  error: %s", packed, err)
		logger.Panicf("corrupt profile record: %s", err)
	}
	return profile
}

func mustUnpackCredential(log *logger.L, packed []byte) *record.Credential {
	credential, err := record.UnpackCredential(packed)
	if nil != err {
		log.Criticalf("corrupt credential record: %x  error: %s", packed, err)
		logger.Panicf("corrupt credential record: %s", err)
	}
	return credential
}
