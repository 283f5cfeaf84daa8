// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a Transaction which stages them in a single
// LevelDB batch, so a marketplace operation is written completely or
// not at all.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. asset id = big endian uint64 (8 bytes)
// 4. account  = account.Bytes() (key variant ++ 32 byte public key)
// 5. n        = big endian uint64 (8 bytes)
//
// Marketplace:
//
//   A ++ asset id            - asset registry
//                              data: packed record.Asset
//   C ++ asset id            - credential vault
//                              data: packed record.Credential
//   T ++ account ++ asset id - trade ledger, keyed by buyer
//                              data: packed record.Trade
//   P ++ account             - participant directory
//                              data: packed record.Profile
//   S ++ name                - protocol parameters
//                              data: n, except "owner" and "platform" which hold account bytes
//
// Host:
//
//   B ++ account             - spendable balance
//                              data: n
//   H ++ "height"            - current block height
//                              data: n
//
// Testing:
//
//   Z ++ key                 - testing data
package storage
