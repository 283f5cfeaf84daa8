// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donald-oputims/cipher-market/configuration"
	"github.com/donald-oputims/cipher-market/fault"
)

type rpcSection struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type testConfiguration struct {
	Chain       string            `gluamapper:"chain"`
	FeeRate     uint64            `gluamapper:"fee_rate"`
	Interval    int               `gluamapper:"block_interval"`
	Allocations map[string]uint64 `gluamapper:"allocations"`
	ClientRPC   rpcSection        `gluamapper:"client_rpc"`
	Untouched   string            `gluamapper:"untouched"`
}

const sampleConfiguration = `
local M = {}

M.chain = "testing"
M.fee_rate = 30
M.block_interval = 5

M.allocations = {
   ["eZpG6Wi9SQvpDatEP7QGrx6nvzwd6s6R8DgMKgDbDY1R5bjzb9"] = 1000000,
}

M.client_rpc = {
   maximum_connections = 8,
   listen = {
      "127.0.0.1:2130",
      "[::1]:2130",
   },
}

return M
`

func writeFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "market.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, sampleConfiguration)
	defer cleanup()

	c := testConfiguration{
		FeeRate:   25,
		Untouched: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, "testing", c.Chain, "wrong chain")
	assert.Equal(t, uint64(30), c.FeeRate, "wrong fee rate")
	assert.Equal(t, 5, c.Interval, "wrong interval")
	assert.Equal(t, uint64(1000000), c.Allocations["eZpG6Wi9SQvpDatEP7QGrx6nvzwd6s6R8DgMKgDbDY1R5bjzb9"], "wrong allocation")
	assert.Equal(t, uint64(8), c.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, "default", c.Untouched, "default was overwritten")
}

func TestParseConfigurationFileArgument(t *testing.T) {
	fileName, cleanup := writeFile(t, `return { chain = arg[0] }`)
	defer cleanup()

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, fileName, c.Chain, "arg[0] is not the file name")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	noTable, cleanup := writeFile(t, `local x = 1`)
	defer cleanup()

	badSyntax, cleanup2 := writeFile(t, `return {`)
	defer cleanup2()

	c := testConfiguration{}

	err := configuration.ParseConfigurationFile(noTable, &c)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "wrong error for missing table")

	err = configuration.ParseConfigurationFile(badSyntax, &c)
	assert.NotNil(t, err, "syntax error not reported")

	err = configuration.ParseConfigurationFile("/nonexistent/market.conf", &c)
	assert.NotNil(t, err, "missing file not reported")

	err = configuration.ParseConfigurationFile(noTable, c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error for non pointer")
}
