// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/donald-oputims/cipher-market/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - create a cursor over the whole pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, not included in the range
		},
	}
}

// NewPrefixCursor - create a cursor restricted to keys beginning with prefix
func (p *PoolHandle) NewPrefixCursor(prefix []byte) *FetchCursor {
	start := p.prefixKey(prefix)
	limit := prefixLimit(start)
	if nil == limit {
		limit = p.limit
	}
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: start,
			Limit: limit,
		},
	}
}

// smallest key greater than every key with the given prefix
// nil if the prefix is all 0xff
func prefixLimit(prefix []byte) []byte {
	limit := make([]byte, len(prefix))
	copy(limit, prefix)
	for i := len(limit) - 1; i >= 0; i -= 1 {
		if 0xff != limit[i] {
			limit[i] += 1
			return limit[:i+1]
		}
	}
	return nil
}

// Seek - move the cursor so the next fetch starts at key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	start := cursor.pool.prefixKey(key)
	if string(start) > string(cursor.maxRange.Start) {
		cursor.maxRange.Start = start
	}
	return cursor
}

// Fetch - return up to count elements and advance the cursor
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil, fault.ErrNotInitialised
	}

	iter := poolData.database.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
	var lastKey []byte
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1)
		copy(dataKey, key[1:])
		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		lastKey = append(lastKey[:0], key...)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
		if len(results) >= count {
			break
		}
	}
	if nil != lastKey {
		// the next fetch starts immediately after the last key read
		cursor.maxRange.Start = append(lastKey, 0x00)
	}
	iter.Release()
	err := iter.Error()
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.ErrNotInitialised
	}

	iter := poolData.database.NewIterator(&cursor.maxRange, nil)
	defer iter.Release()

	for iter.Next() {
		err := f(iter.Key()[1:], iter.Value())
		if nil != err {
			return err
		}
	}
	return iter.Error()
}
