// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/fault"
)

// text limits
const (
	minDescriptionLength = 10
	maxDescriptionLength = 256
	minCategoryLength    = 3
	maxCategoryLength    = 64
	minTokenLength       = 32
	maxTokenLength       = 512
)

// Status - lifecycle of a listed asset
type Status uint8

// asset states, an asset only ever moves Active -> Delisted
const (
	Active   Status = 0
	Delisted Status = 1
)

// String - printable status
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Delisted:
		return "delisted"
	default:
		return "*unknown*"
	}
}

// MarshalText - status as JSON string
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Asset - a listed digital good
type Asset struct {
	Creator     *account.Account `json:"creator"`
	Price       uint64           `json:"price"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Status      Status           `json:"status"`
	ListedAt    uint64           `json:"listedAt"`
}

// Available - true while the asset can be purchased
func (asset *Asset) Available() bool {
	return Active == asset.Status
}

// Credential - the opaque encrypted access token for an asset
type Credential struct {
	Token string `json:"token"`
}

// Trade - proof of purchase for one buyer/asset pair
type Trade struct {
	Block     uint64           `json:"block"`
	PricePaid uint64           `json:"pricePaid"`
	Seller    *account.Account `json:"seller"`
}

// Profile - per participant trading statistics
type Profile struct {
	TotalTrades     uint64 `json:"totalTrades"`
	ReputationScore uint64 `json:"reputationScore"`
	LastActivity    uint64 `json:"lastActivity"`
}

// AssetKey - storage key for an asset identifier
func AssetKey(assetId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetId)
	return key
}

// AssetIdFromKey - recover the identifier from an asset key
func AssetIdFromKey(key []byte) (uint64, bool) {
	if 8 != len(key) {
		return 0, false
	}
	return binary.BigEndian.Uint64(key), true
}

// TradeKey - storage key for the trade of buyer on an asset
//
// all trades of one buyer share the account bytes as a prefix
func TradeKey(buyer *account.Account, assetId uint64) []byte {
	return append(buyer.Bytes(), AssetKey(assetId)...)
}

// CheckDescription - description is 10..256 characters
func CheckDescription(description string) error {
	return checkText(description, minDescriptionLength, maxDescriptionLength, fault.ErrDescriptionLength)
}

// CheckCategory - category is 3..64 characters
func CheckCategory(category string) error {
	return checkText(category, minCategoryLength, maxCategoryLength, fault.ErrCategoryLength)
}

// CheckToken - token is 32..512 bytes of printable ASCII
func CheckToken(token string) error {
	if len(token) < minTokenLength || len(token) > maxTokenLength {
		return fault.ErrTokenLength
	}
	for i := 0; i < len(token); i += 1 {
		if token[i] < 0x20 || token[i] > 0x7e {
			return fault.ErrTokenNotPrintable
		}
	}
	return nil
}

// lengths are counted in characters, not bytes
func checkText(s string, min int, max int, lengthError error) error {
	if !utf8.ValidString(s) {
		return fault.ErrTextNotUTF8
	}
	n := utf8.RuneCountInString(s)
	if n < min || n > max {
		return lengthError
	}
	return nil
}
