// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheight_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/donald-oputims/cipher-market/background"
	"github.com/donald-oputims/cipher-market/blockheight"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/fixtures"
	"github.com/donald-oputims/cipher-market/storage"
)

func TestAdvancePersists(t *testing.T) {
	err := fixtures.SetupTestDatabase()
	assert.Nil(t, err, "setup")
	defer fixtures.TeardownTestDatabase()

	assert.Nil(t, blockheight.Initialise(), "initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, blockheight.Initialise(), "second initialise")
	assert.Equal(t, uint64(0), blockheight.Height(), "fresh height")

	for i := uint64(1); i <= 3; i += 1 {
		h, err := blockheight.Advance()
		assert.Nil(t, err, "advance")
		assert.Equal(t, i, h, "height")
	}
	assert.Nil(t, blockheight.Finalise(), "finalise")

	// reopen the database and reload
	storage.Finalise()
	err = storage.Initialise(filepath.Join("testing", "test.leveldb"), storage.ReadWrite)
	assert.Nil(t, err, "reopen")

	assert.Nil(t, blockheight.Initialise(), "initialise again")
	defer blockheight.Finalise()
	assert.Equal(t, uint64(3), blockheight.NewClock(time.Second).Height(), "height not persisted")
}

func TestClockProcess(t *testing.T) {
	err := fixtures.SetupTestDatabase()
	assert.Nil(t, err, "setup")
	defer fixtures.TeardownTestDatabase()

	assert.Nil(t, blockheight.Initialise(), "initialise")
	defer blockheight.Finalise()

	clock := blockheight.NewClock(5 * time.Millisecond)
	p := background.Start(background.Processes{clock}, nil)
	time.Sleep(100 * time.Millisecond)
	p.Stop()

	assert.True(t, clock.Height() > 0, "clock did not advance")
}
