// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the marketplace state machine
//
// Every transition takes the writer lock, opens one storage
// transaction, checks all of its preconditions against the stores,
// stages its writes and commits once.  A failed precondition or a
// failed value transfer aborts the transaction so nothing is written.
//
// Queries take the reader lock and read committed data only.
package ledger
