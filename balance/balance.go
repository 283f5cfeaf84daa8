// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - the host value ledger
//
// spendable balances are held in the Balances pool as big endian
// uint64 values keyed by account bytes; an account with no record
// has a zero balance
package balance

import (
	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/storage"
)

// Ledger - value transfer over the balances pool
type Ledger struct {
	log  *logger.L
	pool *storage.PoolHandle
}

// New - balance ledger over the open database
func New(log *logger.L) *Ledger {
	return &Ledger{
		log:  log,
		pool: storage.Pool.Balances,
	}
}

// Balance - current committed balance of an account
func (l *Ledger) Balance(a *account.Account) uint64 {
	n, _ := l.pool.GetN(a.Bytes())
	return n
}

// Transfer - move amount between accounts inside trx
//
// either both the debit and the credit are staged or neither is
func (l *Ledger) Transfer(trx storage.Transaction, amount uint64, from *account.Account, to *account.Account) error {
	if 0 == amount {
		return nil
	}

	fromKey := from.Bytes()
	toKey := to.Bytes()

	fromBalance, _ := trx.GetN(l.pool, fromKey)
	if fromBalance < amount {
		l.log.Debugf("transfer: %d from: %s  balance: %d", amount, from, fromBalance)
		return fault.ErrInsufficientBalance
	}

	// funds are checked but nothing moves
	if from.Equal(to) {
		return nil
	}

	toBalance, _ := trx.GetN(l.pool, toKey)
	if toBalance+amount < toBalance {
		return fault.ErrBalanceOverflow
	}

	trx.PutN(l.pool, fromKey, fromBalance-amount)
	trx.PutN(l.pool, toKey, toBalance+amount)
	return nil
}

// Credit - add newly issued value to an account inside trx
func (l *Ledger) Credit(trx storage.Transaction, to *account.Account, amount uint64) error {
	key := to.Bytes()
	n, _ := trx.GetN(l.pool, key)
	if n+amount < n {
		return fault.ErrBalanceOverflow
	}
	trx.PutN(l.pool, key, n+amount)
	return nil
}
