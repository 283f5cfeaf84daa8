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

// CreateListing - register a new asset and its credential
//
// returns the sequentially assigned asset identifier
func (l *Ledger) CreateListing(creator *account.Account, price uint64, description string, category string, token string) (uint64, error) {
	l.Lock()
	defer l.Unlock()

	if nil == creator {
		return 0, fault.ErrMissingIdentity
	}
	if 0 == price {
		return 0, fault.ErrPriceIsZero
	}
	if err := record.CheckDescription(description); nil != err {
		return 0, err
	}
	if err := record.CheckCategory(category); nil != err {
		return 0, err
	}
	if err := record.CheckToken(token); nil != err {
		return 0, err
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return 0, err
	}
	defer trx.Abort()

	assetId, _ := trx.GetN(storage.Pool.Protocol, nextAssetIdKey)
	key := record.AssetKey(assetId)

	if trx.Has(storage.Pool.Assets, key) {
		l.log.Criticalf("create: asset id: %d already in use", assetId)
		return 0, fault.ErrAssetIdentifierInUse
	}

	height := l.clock.Height()

	asset := &record.Asset{
		Creator:     creator,
		Price:       price,
		Description: description,
		Category:    category,
		Status:      record.Active,
		ListedAt:    height,
	}
	credential := &record.Credential{
		Token: token,
	}

	trx.Put(storage.Pool.Assets, key, asset.Pack())
	trx.Put(storage.Pool.Credentials, key, credential.Pack())
	trx.PutN(storage.Pool.Protocol, nextAssetIdKey, assetId+1)

	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	l.log.Infof("create: asset id: %d  creator: %s  price: %d  height: %d", assetId, creator, price, height)
	return assetId, nil
}

// UpdatePrice - creator changes the price of an asset
func (l *Ledger) UpdatePrice(caller *account.Account, assetId uint64, newPrice uint64) error {
	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	asset, err := l.checkCreator(trx, caller, assetId, true)
	if nil != err {
		return err
	}
	if 0 == newPrice {
		return fault.ErrPriceIsZero
	}

	asset.Price = newPrice
	trx.Put(storage.Pool.Assets, record.AssetKey(assetId), asset.Pack())

	err = trx.Commit()
	if nil != err {
		return err
	}

	l.log.Infof("update price: asset id: %d  price: %d", assetId, newPrice)
	return nil
}

// RemoveListing - creator permanently delists an asset
//
// the credential and all trades are kept so existing buyers keep access
func (l *Ledger) RemoveListing(caller *account.Account, assetId uint64) error {
	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	asset, err := l.checkCreator(trx, caller, assetId, false)
	if nil != err {
		return err
	}

	asset.Status = record.Delisted
	trx.Put(storage.Pool.Assets, record.AssetKey(assetId), asset.Pack())

	err = trx.Commit()
	if nil != err {
		return err
	}

	l.log.Infof("remove: asset id: %d", assetId)
	return nil
}

// fetch an asset that the caller created
func (l *Ledger) checkCreator(trx storage.Transaction, caller *account.Account, assetId uint64, checkAllocated bool) (*record.Asset, error) {
	asset, ok := l.readAsset(trx, assetId)
	if !ok {
		return nil, fault.ErrAssetNotFound
	}
	if checkAllocated {
		if err := l.checkAllocated(trx, assetId); nil != err {
			return nil, err
		}
	}
	if !asset.Creator.Equal(caller) {
		return nil, fault.ErrNotAssetCreator
	}
	return asset, nil
}

func (l *Ledger) readAsset(trx storage.Transaction, assetId uint64) (*record.Asset, bool) {
	packed := trx.Get(storage.Pool.Assets, record.AssetKey(assetId))
	if nil == packed {
		return nil, false
	}
	return mustUnpackAsset(l.log, packed), true
}

// identifiers at or beyond the next id were never issued
func (l *Ledger) checkAllocated(trx storage.Transaction, assetId uint64) error {
	next, _ := trx.GetN(storage.Pool.Protocol, nextAssetIdKey)
	if assetId >= next {
		return fault.ErrStaleAssetId
	}
	return nil
}
