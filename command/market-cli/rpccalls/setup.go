// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/donald-oputims/cipher-market/account"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	key     *account.PrivateKey // signs every mutating request, may be nil for queries
	now     func() time.Time
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a marketd
func NewClient(connect string, key *account.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, key, verbose, handle), nil
}

func newClient(conn net.Conn, key *account.PrivateKey, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		key:     key,
		now:     time.Now,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the marketd connection
func (client *Client) Close() {
	_ = client.client.Close()
	_ = client.conn.Close()
}

func (client *Client) call(method string, args interface{}, reply interface{}) error {
	client.printJson(method+" Request", args)
	if err := client.client.Call(method, args, reply); nil != err {
		return err
	}
	client.printJson(method+" Reply", reply)
	return nil
}

func (client *Client) printJson(title string, message interface{}) {
	if !client.verbose {
		return
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s: marshal error: %s\n", title, err)
		return
	}
	fmt.Fprintf(client.handle, "--- %s:\n%s\n", title, b)
}
