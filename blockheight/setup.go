// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockheight - the persisted block clock
//
// the height is a monotonic counter stored in the BlockHeight pool and
// is used to stamp listings, trades and participant activity
package blockheight

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/storage"
)

var heightKey = []byte("height")

type blockData struct {
	sync.RWMutex

	log    *logger.L
	height uint64

	// set once during initialise
	initialised bool
}

// global data
var globalData blockData

// Initialise - load the last stored height
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("blockheight")
	globalData.log.Info("starting…")

	globalData.height, _ = storage.Pool.BlockHeight.GetN(heightKey)
	globalData.log.Infof("height: %d", globalData.height)

	globalData.initialised = true
	return nil
}

// Finalise - shutdown the block clock
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Height - current block height
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.height
}

// Advance - move to the next block and persist it
func Advance() (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.ErrNotInitialised
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return 0, err
	}
	next := globalData.height + 1
	trx.PutN(storage.Pool.BlockHeight, heightKey, next)
	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	globalData.height = next
	globalData.log.Debugf("height: %d", next)
	return next, nil
}
