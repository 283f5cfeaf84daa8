// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/chain"
	"github.com/donald-oputims/cipher-market/counter"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/mode"
	"github.com/donald-oputims/cipher-market/rpc/fixtures"
	"github.com/donald-oputims/cipher-market/rpc/node"
)

type fixedHeight uint64

func (h fixedHeight) Height() uint64 {
	return uint64(h)
}

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(chain.Testing)
	defer mode.Finalise()

	now := time.Now()
	c := counter.Counter(5)

	n := node.New(
		logger.New(fixtures.LogCategory),
		now,
		"100",
		&c,
		fixedHeight(42),
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, mode.Starting.String(), reply.Mode, "wrong mode")
	assert.Equal(t, uint64(42), reply.Height, "wrong height")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, n.Version, reply.Version, "wrong version")
	assert.NotEqual(t, "", reply.Uptime, "wrong uptime")
}

func TestNodeInfoWithoutClock(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	c := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1", &c, nil)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Equal(t, fault.ErrNotInitialised, err, "wrong error")
}
