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

// Purchase - buy a licence for an asset
//
// the price is split between the creator and the platform, the asset
// stays listed so other buyers may also purchase it
func (l *Ledger) Purchase(buyer *account.Account, assetId uint64) (*Receipt, error) {
	l.Lock()
	defer l.Unlock()

	if nil == buyer {
		return nil, fault.ErrMissingIdentity
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	asset, ok := l.readAsset(trx, assetId)
	if !ok {
		return nil, fault.ErrAssetNotFound
	}
	if err := l.checkAllocated(trx, assetId); nil != err {
		return nil, err
	}
	if !asset.Available() {
		return nil, fault.ErrAssetDelisted
	}
	seller := asset.Creator
	if seller.Equal(buyer) {
		return nil, fault.ErrSelfPurchase
	}

	feeRate, _ := trx.GetN(storage.Pool.Protocol, feeRateKey)
	fee, revenue := SplitPrice(asset.Price, feeRate)

	err = l.values.Transfer(trx, revenue, buyer, seller)
	if nil != err {
		l.log.Warnf("purchase: asset id: %d  buyer: %s  seller transfer error: %s", assetId, buyer, err)
		return nil, err
	}
	err = l.values.Transfer(trx, fee, buyer, l.platform)
	if nil != err {
		l.log.Warnf("purchase: asset id: %d  buyer: %s  fee transfer error: %s", assetId, buyer, err)
		return nil, err
	}

	height := l.clock.Height()

	trade := &record.Trade{
		Block:     height,
		PricePaid: asset.Price,
		Seller:    seller,
	}
	trx.Put(storage.Pool.Trades, record.TradeKey(buyer, assetId), trade.Pack())

	profile := &record.Profile{}
	sellerKey := seller.Bytes()
	if packed := trx.Get(storage.Pool.Participants, sellerKey); nil != packed {
		profile = mustUnpackProfile(l.log, packed)
	}
	profile.TotalTrades += 1
	profile.LastActivity = height
	trx.Put(storage.Pool.Participants, sellerKey, profile.Pack())

	volume, _ := trx.GetN(storage.Pool.Protocol, totalVolumeKey)
	trx.PutN(storage.Pool.Protocol, totalVolumeKey, volume+1)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	l.log.Infof("purchase: asset id: %d  buyer: %s  price: %d  fee: %d  height: %d", assetId, buyer, asset.Price, fee, height)

	return &Receipt{
		AssetId: assetId,
		Buyer:   buyer,
		Seller:  seller,
		Price:   asset.Price,
		Fee:     fee,
		Revenue: revenue,
		Block:   height,
	}, nil
}

// SplitPrice - fee and seller revenue for a price at a fee rate
//
// the fee is truncated so fee + revenue == price
func SplitPrice(price uint64, feeRate uint64) (fee uint64, revenue uint64) {
	if feeRate > MaximumFeeRate {
		feeRate = MaximumFeeRate
	}
	// split to avoid overflow of price * rate
	fee = (price/feeDivisor)*feeRate + (price%feeDivisor)*feeRate/feeDivisor
	return fee, price - fee
}

// GetCredentials - return the encrypted token to a buyer of the asset
func (l *Ledger) GetCredentials(requester *account.Account, assetId uint64) (string, error) {
	l.RLock()
	defer l.RUnlock()

	if nil == requester {
		return "", fault.ErrMissingIdentity
	}

	key := record.AssetKey(assetId)
	if !storage.Pool.Trades.Has(record.TradeKey(requester, assetId)) {
		return "", fault.ErrNotPurchased
	}

	next, _ := storage.Pool.Protocol.GetN(nextAssetIdKey)
	if assetId >= next {
		return "", fault.ErrStaleAssetId
	}

	packed := storage.Pool.Credentials.Get(key)
	if nil == packed {
		return "", fault.ErrCredentialNotFound
	}

	l.log.Debugf("credentials: asset id: %d  requester: %s", assetId, requester)
	return mustUnpackCredential(l.log, packed).Token, nil
}
