// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/donald-oputims/cipher-market/fault"
)

// Transaction - a set of writes applied together on Commit
//
// reads through a transaction see its own staged writes
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

type transactionData struct {
	sync.Mutex
	finished bool
	batch    *leveldb.Batch
	cache    Cache
}

// NewTransaction - start a transaction on the open database
func NewTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.database {
		return nil, fault.ErrNotInitialised
	}
	if poolData.readOnly {
		return nil, fault.ErrNotAvailableReadOnly
	}

	return &transactionData{
		batch: new(leveldb.Batch),
		cache: newCache(),
	}, nil
}

// Put - stage a key/value write
func (t *transactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()
	t.checkActive()

	prefixedKey := handle.prefixKey(key)
	stored := make([]byte, len(value))
	copy(stored, value)

	t.batch.Put(prefixedKey, stored)
	t.cache.Set(dbPut, string(prefixedKey), stored)
}

// PutN - stage a big endian uint64 write
func (t *transactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	t.Put(handle, key, encodeN(value))
}

// Delete - stage a key removal
func (t *transactionData) Delete(handle *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()
	t.checkActive()

	prefixedKey := handle.prefixKey(key)
	t.batch.Delete(prefixedKey)
	t.cache.Set(dbDelete, string(prefixedKey), nil)
}

// Get - read a value, staged writes first
func (t *transactionData) Get(handle *PoolHandle, key []byte) []byte {
	t.Lock()
	defer t.Unlock()

	prefixedKey := handle.prefixKey(key)
	if value, deleted, found := t.cache.Get(string(prefixedKey)); found {
		if deleted {
			return nil
		}
		return value
	}
	return handle.Get(key)
}

// GetN - read a big endian uint64, staged writes first
func (t *transactionData) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(t.Get(handle, key))
}

// Has - check a key exists, staged writes first
func (t *transactionData) Has(handle *PoolHandle, key []byte) bool {
	return nil != t.Get(handle, key)
}

// Commit - write all staged changes in one batch
func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.finished {
		return fault.ErrTransactionFinished
	}
	t.finished = true
	defer t.cache.Clear()

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.ErrNotInitialised
	}

	return poolData.database.Write(t.batch, nil)
}

// Abort - discard all staged changes
func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	t.finished = true
	t.batch.Reset()
	t.cache.Clear()
}

func (t *transactionData) checkActive() {
	if t.finished {
		panic(fault.ErrTransactionFinished)
	}
}
