// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/record"
	"github.com/donald-oputims/cipher-market/storage"
)

// ValueLedger - the host value transfer capability
//
// Transfer must stage both sides of the move in trx or return an
// error having staged nothing
type ValueLedger interface {
	Transfer(trx storage.Transaction, amount uint64, from *account.Account, to *account.Account) error
	Credit(trx storage.Transaction, to *account.Account, amount uint64) error
	Balance(a *account.Account) uint64
}

// SequenceSource - host supplied monotonic counter
type SequenceSource interface {
	Height() uint64
}

// Marketplace - operations and queries served to clients
type Marketplace interface {
	CreateListing(creator *account.Account, price uint64, description string, category string, token string) (uint64, error)
	UpdatePrice(caller *account.Account, assetId uint64, newPrice uint64) error
	RemoveListing(caller *account.Account, assetId uint64) error
	Purchase(buyer *account.Account, assetId uint64) (*Receipt, error)
	GetCredentials(requester *account.Account, assetId uint64) (string, error)
	SetFeeRate(caller *account.Account, newRate uint64) error

	Asset(assetId uint64) (*record.Asset, bool)
	ListAssets(start uint64, count int) ([]AssetEntry, uint64, error)
	Trade(buyer *account.Account, assetId uint64) (*record.Trade, bool)
	Licences(buyer *account.Account) ([]Licence, error)
	Participant(a *account.Account) (*record.Profile, bool)
	Balance(a *account.Account) uint64
	State() ProtocolState
}

// Receipt - result of a completed purchase
type Receipt struct {
	AssetId uint64           `json:"assetId,string"`
	Buyer   *account.Account `json:"buyer"`
	Seller  *account.Account `json:"seller"`
	Price   uint64           `json:"price"`
	Fee     uint64           `json:"fee"`
	Revenue uint64           `json:"revenue"`
	Block   uint64           `json:"block"`
}

// AssetEntry - an asset with its identifier
type AssetEntry struct {
	AssetId uint64        `json:"assetId,string"`
	Asset   *record.Asset `json:"asset"`
}

// Licence - a trade with the asset it unlocks
type Licence struct {
	AssetId uint64        `json:"assetId,string"`
	Trade   *record.Trade `json:"trade"`
}

// ProtocolState - the global parameters
type ProtocolState struct {
	Owner       *account.Account `json:"owner"`
	Platform    *account.Account `json:"platform"`
	NextAssetId uint64           `json:"nextAssetId,string"`
	FeeRate     uint64           `json:"feeRate"`
	TotalVolume uint64           `json:"totalVolume"`
}
