// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/storage"
)

// SetFeeRate - owner replaces the fee rate for later purchases
func (l *Ledger) SetFeeRate(caller *account.Account, newRate uint64) error {
	l.Lock()
	defer l.Unlock()

	if !l.owner.Equal(caller) {
		return fault.ErrNotProtocolOwner
	}
	if newRate > MaximumFeeRate {
		return fault.ErrFeeRateOutOfRange
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	trx.PutN(storage.Pool.Protocol, feeRateKey, newRate)

	err = trx.Commit()
	if nil != err {
		return err
	}

	l.log.Infof("fee rate: %d", newRate)
	return nil
}
