// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donald-oputims/cipher-market/chain"
	"github.com/donald-oputims/cipher-market/fixtures"
	"github.com/donald-oputims/cipher-market/ledger"
)

func writeConfiguration(t *testing.T, body string) (string, string) {
	dir, err := ioutil.TempDir("", "marketd")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "marketd.conf")
	if err := ioutil.WriteFile(fileName, []byte(body), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestGetConfigurationDefaults(t *testing.T) {
	body := fmt.Sprintf(`
local M = {}
M.data_directory = "."
M.chain = "Testing"
M.owner = "%s"
M.client_rpc = { listen = { "127.0.0.1:2130" } }
return M
`, fixtures.Owner)

	dir, fileName := writeConfiguration(t, body)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "wrong getConfiguration") {
		t.FailNow()
	}

	// temp directories may be behind a symlink
	dir, _ = filepath.Abs(dir)

	assert.Equal(t, chain.Testing, options.Chain, "wrong chain")
	assert.Equal(t, uint64(ledger.DefaultFeeRate), options.FeeRate, "wrong default fee rate")
	assert.Equal(t, defaultBlockInterval, options.BlockInterval, "wrong default interval")
	assert.Equal(t, uint64(defaultRPCClients), options.ClientRPC.MaximumConnections, "wrong default connections")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory, defaultTestingDatabase), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, defaultCertificateFile), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, defaultKeyFile), options.ClientRPC.PrivateKey, "wrong private key")
	assert.Equal(t, "", options.PidFile, "wrong pid file")

	info, err := os.Stat(options.Logging.Directory)
	assert.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")
}

func TestGetConfigurationErrors(t *testing.T) {
	bodies := []string{
		`return { data_directory = "." , chain = "mainnet" }`,
		`return { data_directory = "" }`,
		`return { data_directory = ".", fee_rate = 101 }`,
		`return { data_directory = ".", block_interval = 0 }`,
		`return { data_directory = ".", database = { name = "sub/dir.leveldb" } }`,
		`return { data_directory = "/nonexistent/directory" }`,
	}

	for i, body := range bodies {
		dir, fileName := writeConfiguration(t, body)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, "%d: expected error", i)
		_ = os.RemoveAll(dir)
	}
}

func TestLedgerConfiguration(t *testing.T) {
	options := &Configuration{
		Chain:    chain.Local,
		Owner:    fixtures.Owner.String(),
		Platform: fixtures.Platform.String(),
		FeeRate:  30,
		Allocations: map[string]uint64{
			fixtures.Buyer.String(): 500,
			fixtures.Other.String(): 700,
		},
	}

	conf, err := options.ledgerConfiguration()
	if !assert.Nil(t, err, "wrong ledgerConfiguration") {
		t.FailNow()
	}

	assert.True(t, fixtures.Owner.Equal(conf.Owner), "wrong owner")
	assert.True(t, fixtures.Platform.Equal(conf.Platform), "wrong platform")
	assert.Equal(t, uint64(30), conf.FeeRate, "wrong fee rate")
	assert.Equal(t, 2, len(conf.Allocations), "wrong allocation count")

	total := uint64(0)
	for _, a := range conf.Allocations {
		total += a.Amount
	}
	assert.Equal(t, uint64(1200), total, "wrong allocated total")
}

func TestLedgerConfigurationErrors(t *testing.T) {
	tests := []Configuration{
		{Chain: chain.Testing},
		{Chain: chain.Testing, Owner: "not-base58-0OIl"},
		{Chain: chain.Live, Owner: fixtures.Owner.String()},
		{Chain: chain.Testing, Owner: fixtures.Owner.String(), Platform: "x"},
		{Chain: chain.Testing, Owner: fixtures.Owner.String(), Allocations: map[string]uint64{"bad": 1}},
	}

	for i, options := range tests {
		_, err := options.ledgerConfiguration()
		assert.NotNil(t, err, "%d: expected error", i)
	}
}

func TestMakeIdentity(t *testing.T) {
	dir, err := ioutil.TempDir("", "identity")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, testIdentityFilename)
	a, err := makeIdentity(true, fileName)
	assert.Nil(t, err, "wrong makeIdentity")
	assert.True(t, a.IsTesting(), "identity is not on the test network")

	data, err := ioutil.ReadFile(fileName)
	assert.Nil(t, err, "identity file not written")
	assert.Contains(t, string(data), "ACCOUNT:"+a.String(), "account missing from file")

	_, err = makeIdentity(true, fileName)
	assert.NotNil(t, err, "existing identity overwritten")
}
