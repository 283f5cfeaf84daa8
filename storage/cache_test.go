// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheWriteThenRead(t *testing.T) {
	c := newCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	_, _, found := c.Get(key)
	assert.False(t, found, "key already present")

	c.Set(dbPut, key, expected)
	actual, deleted, found := c.Get(key)
	assert.True(t, found, "key not found")
	assert.False(t, deleted, "key marked deleted")
	assert.Equal(t, expected, actual, "wrong value")
}

func TestCacheClear(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "test", []byte{'a', 'b'})
	c.Clear()

	_, _, found := c.Get("test")
	assert.False(t, found, "cache not empty after clear")
}

func TestCacheDeleteOperation(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "test", []byte{'a', 'b'})
	c.Set(dbDelete, "test", nil)

	value, deleted, found := c.Get("test")
	assert.True(t, found, "delete not staged")
	assert.True(t, deleted, "delete not recorded")
	assert.Nil(t, value, "deleted key returned a value")
}
