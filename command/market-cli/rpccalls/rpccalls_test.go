// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/operation"
	"github.com/donald-oputims/cipher-market/rpc/assets"
	"github.com/donald-oputims/cipher-market/rpc/credentials"
	"github.com/donald-oputims/cipher-market/rpc/fixtures"
)

// Assets - server side stand in checking what the client sent
type Assets struct {
	received *operation.CreateListing
}

func (a *Assets) Create(arguments *operation.CreateListing, reply *assets.CreateReply) error {
	if err := operation.Verify(arguments); nil != err {
		return err
	}
	a.received = arguments
	reply.AssetId = 7
	return nil
}

func (a *Assets) Get(arguments *assets.GetArguments, reply *assets.GetReply) error {
	reply.Found = 3 == arguments.AssetId
	return nil
}

// Credentials - always refuses
type Credentials struct{}

func (Credentials) Get(arguments *operation.GetCredentials, reply *credentials.GetReply) error {
	return fault.ErrNotPurchased
}

func serve(t *testing.T, a *Assets) (net.Conn, func()) {
	server := rpc.NewServer()
	if err := server.Register(a); nil != err {
		t.Fatalf("register error: %s", err)
	}
	if err := server.Register(Credentials{}); nil != err {
		t.Fatalf("register error: %s", err)
	}

	clientConn, serverConn := net.Pipe()
	go server.ServeCodec(jsonrpc.NewServerCodec(serverConn))
	return clientConn, func() { _ = serverConn.Close() }
}

func TestCreateListingIsSigned(t *testing.T) {
	a := &Assets{}
	conn, stop := serve(t, a)
	defer stop()

	var out bytes.Buffer
	client := newClient(conn, fixtures.CreatorKey, true, &out)
	client.now = func() time.Time { return time.Unix(1600000000, 0) }
	defer client.Close()

	id, err := client.CreateListing(1000, "a description", "software", "token-0123456789-0123456789-0123456789")
	assert.Nil(t, err, "wrong CreateListing")
	assert.Equal(t, uint64(7), id, "wrong asset id")

	if assert.NotNil(t, a.received, "nothing received") {
		assert.True(t, fixtures.CreatorKey.Account().Equal(a.received.Caller), "wrong caller")
		assert.Equal(t, uint64(1600000000), a.received.Timestamp, "wrong timestamp")
		assert.Equal(t, uint64(1000), a.received.Price, "wrong price")
	}
	assert.Contains(t, out.String(), "Assets.Create Reply", "verbose output missing")
}

func TestQueryWithoutKey(t *testing.T) {
	conn, stop := serve(t, &Assets{})
	defer stop()

	var out bytes.Buffer
	client := newClient(conn, nil, false, &out)
	defer client.Close()

	reply, err := client.GetAsset(3)
	assert.Nil(t, err, "wrong GetAsset")
	assert.True(t, reply.Found, "wrong found")
	assert.Equal(t, 0, out.Len(), "output when not verbose")

	_, err = client.Purchase(3)
	assert.Equal(t, fault.ErrMissingIdentity, err, "unsigned purchase accepted")
}

func TestServerError(t *testing.T) {
	conn, stop := serve(t, &Assets{})
	defer stop()

	client := newClient(conn, fixtures.BuyerKey, false, nil)
	defer client.Close()

	_, err := client.GetCredentials(1)
	assert.NotNil(t, err, "wrong GetCredentials")
	assert.Equal(t, fault.ErrNotPurchased.Error(), err.Error(), "wrong error")
}
