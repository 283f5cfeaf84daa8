// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/ledger"
	"github.com/donald-oputims/cipher-market/operation"
	"github.com/donald-oputims/cipher-market/rpc/assets"
	"github.com/donald-oputims/cipher-market/rpc/credentials"
	"github.com/donald-oputims/cipher-market/rpc/protocol"
	"github.com/donald-oputims/cipher-market/rpc/trades"
)

// sign an operation with the client key at the current time
func (client *Client) sign(op operation.Signed) error {
	if nil == client.key {
		return fault.ErrMissingIdentity
	}
	operation.Sign(op, client.key, uint64(client.now().Unix()))
	return nil
}

// CreateListing - list a new asset, returning its identifier
func (client *Client) CreateListing(price uint64, description string, category string, token string) (uint64, error) {
	op := &operation.CreateListing{
		Price:       price,
		Description: description,
		Category:    category,
		Token:       token,
	}
	if err := client.sign(op); nil != err {
		return 0, err
	}
	var reply assets.CreateReply
	if err := client.call("Assets.Create", op, &reply); nil != err {
		return 0, err
	}
	return reply.AssetId, nil
}

// UpdatePrice - change the price of an owned asset
func (client *Client) UpdatePrice(assetId uint64, price uint64) error {
	op := &operation.UpdatePrice{
		AssetId: assetId,
		Price:   price,
	}
	if err := client.sign(op); nil != err {
		return err
	}
	var reply assets.ChangeReply
	return client.call("Assets.UpdatePrice", op, &reply)
}

// RemoveListing - delist an owned asset
func (client *Client) RemoveListing(assetId uint64) error {
	op := &operation.RemoveListing{
		AssetId: assetId,
	}
	if err := client.sign(op); nil != err {
		return err
	}
	var reply assets.ChangeReply
	return client.call("Assets.Remove", op, &reply)
}

// Purchase - buy an asset
func (client *Client) Purchase(assetId uint64) (*ledger.Receipt, error) {
	op := &operation.Purchase{
		AssetId: assetId,
	}
	if err := client.sign(op); nil != err {
		return nil, err
	}
	var reply trades.PurchaseReply
	if err := client.call("Trades.Purchase", op, &reply); nil != err {
		return nil, err
	}
	return reply.Receipt, nil
}

// GetCredentials - fetch the token of a purchased asset
func (client *Client) GetCredentials(assetId uint64) (string, error) {
	op := &operation.GetCredentials{
		AssetId: assetId,
	}
	if err := client.sign(op); nil != err {
		return "", err
	}
	var reply credentials.GetReply
	if err := client.call("Credentials.Get", op, &reply); nil != err {
		return "", err
	}
	return reply.Token, nil
}

// SetFeeRate - owner changes the platform fee
func (client *Client) SetFeeRate(rate uint64) error {
	op := &operation.SetFeeRate{
		FeeRate: rate,
	}
	if err := client.sign(op); nil != err {
		return err
	}
	var reply protocol.SetFeeRateReply
	return client.call("Protocol.SetFeeRate", op, &reply)
}
