// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/counter"
	"github.com/donald-oputims/cipher-market/ledger"
	"github.com/donald-oputims/cipher-market/mode"
	"github.com/donald-oputims/cipher-market/rpc/assets"
	"github.com/donald-oputims/cipher-market/rpc/credentials"
	"github.com/donald-oputims/cipher-market/rpc/node"
	"github.com/donald-oputims/cipher-market/rpc/participants"
	"github.com/donald-oputims/cipher-market/rpc/protocol"
	"github.com/donald-oputims/cipher-market/rpc/trades"
	"github.com/donald-oputims/cipher-market/rpc/verify"
)

// Create - an RPC server with every marketplace service registered
func Create(
	log *logger.L,
	version string,
	rpcCount *counter.Counter,
	verifier verify.Verifier,
	market ledger.Marketplace,
	clock ledger.SequenceSource,
) *rpc.Server {

	start := time.Now().UTC()
	testing := mode.IsTesting()

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, mode.Is, verifier, market))
	_ = server.Register(trades.New(log, mode.Is, testing, verifier, market))
	_ = server.Register(credentials.New(log, mode.Is, verifier, market))
	_ = server.Register(protocol.New(log, mode.Is, verifier, market))
	_ = server.Register(participants.New(log, testing, market))
	_ = server.Register(node.New(log, start, version, rpcCount, clock))

	return server
}
