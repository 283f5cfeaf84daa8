// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/record"
	"github.com/donald-oputims/cipher-market/storage"
)

// MaximumListCount - largest page of assets
const MaximumListCount = 100

// Asset - details of an asset
func (l *Ledger) Asset(assetId uint64) (*record.Asset, bool) {
	l.RLock()
	defer l.RUnlock()

	packed := storage.Pool.Assets.Get(record.AssetKey(assetId))
	if nil == packed {
		return nil, false
	}
	return mustUnpackAsset(l.log, packed), true
}

// ListAssets - page through assets in identifier order
//
// returns the entries and the start value for the following page,
// which is zero when no assets were found
func (l *Ledger) ListAssets(start uint64, count int) ([]AssetEntry, uint64, error) {
	if count <= 0 || count > MaximumListCount {
		return nil, 0, fault.ErrInvalidCount
	}

	l.RLock()
	defer l.RUnlock()

	elements, err := storage.Pool.Assets.NewFetchCursor().Seek(record.AssetKey(start)).Fetch(count)
	if nil != err {
		return nil, 0, err
	}

	entries := make([]AssetEntry, 0, len(elements))
	next := uint64(0)
	for _, e := range elements {
		assetId, ok := record.AssetIdFromKey(e.Key)
		if !ok {
			l.log.Errorf("list: invalid asset key: %x", e.Key)
			continue
		}
		entries = append(entries, AssetEntry{
			AssetId: assetId,
			Asset:   mustUnpackAsset(l.log, e.Value),
		})
		next = assetId + 1
	}
	return entries, next, nil
}

// Trade - the trade recorded for a buyer and asset
func (l *Ledger) Trade(buyer *account.Account, assetId uint64) (*record.Trade, bool) {
	if nil == buyer {
		return nil, false
	}

	l.RLock()
	defer l.RUnlock()

	packed := storage.Pool.Trades.Get(record.TradeKey(buyer, assetId))
	if nil == packed {
		return nil, false
	}
	return mustUnpackTrade(l.log, packed), true
}

// Licences - every asset a buyer has purchased
func (l *Ledger) Licences(buyer *account.Account) ([]Licence, error) {
	if nil == buyer {
		return nil, fault.ErrMissingIdentity
	}

	l.RLock()
	defer l.RUnlock()

	prefix := buyer.Bytes()
	licences := make([]Licence, 0)
	err := storage.Pool.Trades.NewPrefixCursor(prefix).Map(func(key []byte, value []byte) error {
		assetId, ok := record.AssetIdFromKey(key[len(prefix):])
		if !ok {
			l.log.Errorf("licences: invalid trade key: %x", key)
			return nil
		}
		licences = append(licences, Licence{
			AssetId: assetId,
			Trade:   mustUnpackTrade(l.log, value),
		})
		return nil
	})
	if nil != err {
		return nil, err
	}
	return licences, nil
}

// Participant - trading statistics for an account
func (l *Ledger) Participant(a *account.Account) (*record.Profile, bool) {
	if nil == a {
		return nil, false
	}

	l.RLock()
	defer l.RUnlock()

	packed := storage.Pool.Participants.Get(a.Bytes())
	if nil == packed {
		return nil, false
	}
	return mustUnpackProfile(l.log, packed), true
}

// Balance - spendable value held by an account
func (l *Ledger) Balance(a *account.Account) uint64 {
	if nil == a {
		return 0
	}

	l.RLock()
	defer l.RUnlock()

	return l.values.Balance(a)
}

// State - the protocol parameters
func (l *Ledger) State() ProtocolState {
	l.RLock()
	defer l.RUnlock()

	next, _ := storage.Pool.Protocol.GetN(nextAssetIdKey)
	feeRate, _ := storage.Pool.Protocol.GetN(feeRateKey)
	volume, _ := storage.Pool.Protocol.GetN(totalVolumeKey)

	return ProtocolState{
		Owner:       l.owner,
		Platform:    l.platform,
		NextAssetId: next,
		FeeRate:     feeRate,
		TotalVolume: volume,
	}
}

// FeeRate - current fee rate in parts per thousand
func (l *Ledger) FeeRate() uint64 {
	return l.State().FeeRate
}

// TotalVolume - number of completed purchases
func (l *Ledger) TotalVolume() uint64 {
	return l.State().TotalVolume
}
