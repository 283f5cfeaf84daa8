// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/util"
)

// Pack - asset as stored bytes
//
//   creator ++ price ++ description ++ category ++ status ++ listed at
func (asset *Asset) Pack() []byte {
	buffer := util.AppendBytes(nil, asset.Creator.Bytes())
	buffer = util.AppendVarint64(buffer, asset.Price)
	buffer = util.AppendBytes(buffer, []byte(asset.Description))
	buffer = util.AppendBytes(buffer, []byte(asset.Category))
	buffer = util.AppendVarint64(buffer, uint64(asset.Status))
	return util.AppendVarint64(buffer, asset.ListedAt)
}

// UnpackAsset - stored bytes to asset
func UnpackAsset(buffer []byte) (*Asset, error) {
	creator, buffer, err := takeAccount(buffer)
	if nil != err {
		return nil, err
	}

	price, buffer, ok := util.TakeVarint64(buffer)
	if !ok {
		return nil, fault.ErrNotRecordPack
	}
	description, buffer, ok := util.TakeBytes(buffer)
	if !ok {
		return nil, fault.ErrNotRecordPack
	}
	category, buffer, ok := util.TakeBytes(buffer)
	if !ok {
		return nil, fault.ErrNotRecordPack
	}
	status, buffer, ok := util.TakeVarint64(buffer)
	if !ok || status > uint64(Delisted) {
		return nil, fault.ErrNotRecordPack
	}
	listedAt, buffer, ok := util.TakeVarint64(buffer)
	if !ok || 0 != len(buffer) {
		return nil, fault.ErrNotRecordPack
	}

	return &Asset{
		Creator:     creator,
		Price:       price,
		Description: string(description),
		Category:    string(category),
		Status:      Status(status),
		ListedAt:    listedAt,
	}, nil
}

// Pack - credential as stored bytes
func (credential *Credential) Pack() []byte {
	return util.AppendBytes(nil, []byte(credential.Token))
}

// UnpackCredential - stored bytes to credential
func UnpackCredential(buffer []byte) (*Credential, error) {
	token, buffer, ok := util.TakeBytes(buffer)
	if !ok || 0 != len(buffer) {
		return nil, fault.ErrNotRecordPack
	}
	return &Credential{
		Token: string(token),
	}, nil
}

// Pack - trade as stored bytes
//
//   block ++ price paid ++ seller
func (trade *Trade) Pack() []byte {
	buffer := util.AppendVarint64(nil, trade.Block)
	buffer = util.AppendVarint64(buffer, trade.PricePaid)
	return util.AppendBytes(buffer, trade.Seller.Bytes())
}

// UnpackTrade - stored bytes to trade
func UnpackTrade(buffer []byte) (*Trade, error) {
	block, buffer, ok := util.TakeVarint64(buffer)
	if !ok {
		return nil, fault.ErrNotRecordPack
	}
	pricePaid, buffer, ok := util.TakeVarint64(buffer)
	if !ok {
		return nil, fault.ErrNotRecordPack
	}
	seller, buffer, err := takeAccount(buffer)
	if nil != err {
		return nil, err
	}
	if 0 != len(buffer) {
		return nil, fault.ErrNotRecordPack
	}
	return &Trade{
		Block:     block,
		PricePaid: pricePaid,
		Seller:    seller,
	}, nil
}

// Pack - profile as stored bytes
func (profile *Profile) Pack() []byte {
	buffer := util.AppendVarint64(nil, profile.TotalTrades)
	buffer = util.AppendVarint64(buffer, profile.ReputationScore)
	return util.AppendVarint64(buffer, profile.LastActivity)
}

// UnpackProfile - stored bytes to profile
func UnpackProfile(buffer []byte) (*Profile, error) {
	totalTrades, buffer, ok := util.TakeVarint64(buffer)
	if !ok {
		return nil, fault.ErrNotRecordPack
	}
	reputation, buffer, ok := util.TakeVarint64(buffer)
	if !ok {
		return nil, fault.ErrNotRecordPack
	}
	lastActivity, buffer, ok := util.TakeVarint64(buffer)
	if !ok || 0 != len(buffer) {
		return nil, fault.ErrNotRecordPack
	}
	return &Profile{
		TotalTrades:     totalTrades,
		ReputationScore: reputation,
		LastActivity:    lastActivity,
	}, nil
}

func takeAccount(buffer []byte) (*account.Account, []byte, error) {
	accountBytes, buffer, ok := util.TakeBytes(buffer)
	if !ok {
		return nil, nil, fault.ErrNotRecordPack
	}
	a, err := account.AccountFromBytes(accountBytes)
	if nil != err {
		return nil, nil, err
	}
	return a, buffer, nil
}
