// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package operation - signed client requests
//
// each request is packed into a canonical byte message:
//
//   tag ++ caller ++ timestamp ++ fields…
//
// integers are Varint64 and byte strings are length prefixed; the
// caller signs this message with the private key of the account named
// as caller so the identity presented to the ledger cannot be forged
package operation

import (
	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/util"
)

// Tag - operation type code
type Tag uint64

// operation types
const (
	CreateListingTag  Tag = 1
	UpdatePriceTag    Tag = 2
	RemoveListingTag  Tag = 3
	PurchaseTag       Tag = 4
	GetCredentialsTag Tag = 5
	SetFeeRateTag     Tag = 6
)

// String - operation name
func (tag Tag) String() string {
	switch tag {
	case CreateListingTag:
		return "CreateListing"
	case UpdatePriceTag:
		return "UpdatePrice"
	case RemoveListingTag:
		return "RemoveListing"
	case PurchaseTag:
		return "Purchase"
	case GetCredentialsTag:
		return "GetCredentials"
	case SetFeeRateTag:
		return "SetFeeRate"
	default:
		return "*unknown*"
	}
}

// Signed - any signed request
type Signed interface {
	Identity() *Header
	Pack() []byte
}

// Header - fields common to all requests
type Header struct {
	Caller    *account.Account  `json:"caller"`
	Timestamp uint64            `json:"timestamp,string"` // unix seconds
	Signature account.Signature `json:"signature"`
}

// Identity - the common fields
func (header *Header) Identity() *Header {
	return header
}

func (header *Header) pack(tag Tag) []byte {
	buffer := util.AppendVarint64(nil, uint64(tag))
	if nil != header.Caller {
		buffer = util.AppendBytes(buffer, header.Caller.Bytes())
	} else {
		buffer = util.AppendBytes(buffer, nil)
	}
	return util.AppendVarint64(buffer, header.Timestamp)
}

// CreateListing - list a new asset
type CreateListing struct {
	Header
	Price       uint64 `json:"price,string"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Token       string `json:"token"`
}

// Pack - message to sign
func (op *CreateListing) Pack() []byte {
	buffer := op.pack(CreateListingTag)
	buffer = util.AppendVarint64(buffer, op.Price)
	buffer = util.AppendBytes(buffer, []byte(op.Description))
	buffer = util.AppendBytes(buffer, []byte(op.Category))
	return util.AppendBytes(buffer, []byte(op.Token))
}

// UpdatePrice - change the price of an asset
type UpdatePrice struct {
	Header
	AssetId uint64 `json:"assetId,string"`
	Price   uint64 `json:"price,string"`
}

// Pack - message to sign
func (op *UpdatePrice) Pack() []byte {
	buffer := op.pack(UpdatePriceTag)
	buffer = util.AppendVarint64(buffer, op.AssetId)
	return util.AppendVarint64(buffer, op.Price)
}

// RemoveListing - delist an asset
type RemoveListing struct {
	Header
	AssetId uint64 `json:"assetId,string"`
}

// Pack - message to sign
func (op *RemoveListing) Pack() []byte {
	return util.AppendVarint64(op.pack(RemoveListingTag), op.AssetId)
}

// Purchase - buy an asset licence
type Purchase struct {
	Header
	AssetId uint64 `json:"assetId,string"`
}

// Pack - message to sign
func (op *Purchase) Pack() []byte {
	return util.AppendVarint64(op.pack(PurchaseTag), op.AssetId)
}

// GetCredentials - fetch the token of a purchased asset
type GetCredentials struct {
	Header
	AssetId uint64 `json:"assetId,string"`
}

// Pack - message to sign
func (op *GetCredentials) Pack() []byte {
	return util.AppendVarint64(op.pack(GetCredentialsTag), op.AssetId)
}

// SetFeeRate - owner changes the fee rate
type SetFeeRate struct {
	Header
	FeeRate uint64 `json:"feeRate"`
}

// Pack - message to sign
func (op *SetFeeRate) Pack() []byte {
	return util.AppendVarint64(op.pack(SetFeeRateTag), op.FeeRate)
}

// Sign - set the caller and sign the request
func Sign(op Signed, key *account.PrivateKey, timestamp uint64) {
	header := op.Identity()
	header.Caller = key.Account()
	header.Timestamp = timestamp
	header.Signature = key.Sign(op.Pack())
}

// Verify - check the caller signed this exact request
func Verify(op Signed) error {
	header := op.Identity()
	if nil == header.Caller {
		return fault.ErrMissingIdentity
	}
	return header.Caller.CheckSignature(op.Pack(), header.Signature)
}
