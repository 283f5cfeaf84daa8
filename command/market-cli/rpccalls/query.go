// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/ledger"
	"github.com/donald-oputims/cipher-market/rpc/assets"
	"github.com/donald-oputims/cipher-market/rpc/node"
	"github.com/donald-oputims/cipher-market/rpc/participants"
	"github.com/donald-oputims/cipher-market/rpc/protocol"
	"github.com/donald-oputims/cipher-market/rpc/trades"
)

// GetNodeInfo - request status from marketd
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetProtocol - the global marketplace parameters
func (client *Client) GetProtocol() (*ledger.ProtocolState, error) {
	var reply ledger.ProtocolState
	if err := client.call("Protocol.Info", &protocol.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetAsset - a single asset
func (client *Client) GetAsset(assetId uint64) (*assets.GetReply, error) {
	var reply assets.GetReply
	if err := client.call("Assets.Get", &assets.GetArguments{AssetId: assetId}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListAssets - one page of assets
func (client *Client) ListAssets(start uint64, count int) (*assets.ListReply, error) {
	args := assets.ListArguments{
		Start: start,
		Count: count,
	}
	var reply assets.ListReply
	if err := client.call("Assets.List", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetTrade - a buyer's trade for an asset
func (client *Client) GetTrade(buyer *account.Account, assetId uint64) (*trades.GetReply, error) {
	args := trades.GetArguments{
		Buyer:   buyer,
		AssetId: assetId,
	}
	var reply trades.GetReply
	if err := client.call("Trades.Get", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetLicences - all purchases of a buyer
func (client *Client) GetLicences(buyer *account.Account) ([]ledger.Licence, error) {
	var reply trades.LicencesReply
	if err := client.call("Trades.Licences", &trades.LicencesArguments{Buyer: buyer}, &reply); nil != err {
		return nil, err
	}
	return reply.Licences, nil
}

// GetParticipant - trading statistics and balance of an account
func (client *Client) GetParticipant(a *account.Account) (*participants.GetReply, error) {
	var reply participants.GetReply
	if err := client.call("Participants.Get", &participants.GetArguments{Account: a}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
