// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/storage"
)

const (
	dir          = "testing"
	LogCategory  = "testing"
	databaseName = "test.leveldb"
)

// sample participants
var (
	Creator  = MakeAccount(0x01)
	Buyer    = MakeAccount(0x02)
	Other    = MakeAccount(0x03)
	Owner    = MakeAccount(0x04)
	Platform = MakeAccount(0x05)
)

// MakeAccount - a testing account with a repeated byte public key
func MakeAccount(fill byte) *account.Account {
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: bytes.Repeat([]byte{fill}, 32),
		},
	}
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestDatabase - logger plus an empty database inside the testing directory
func SetupTestDatabase() error {
	SetupTestLogger()
	return storage.Initialise(filepath.Join(dir, databaseName), storage.ReadWrite)
}

// TeardownTestDatabase - close the database and remove all files
func TeardownTestDatabase() {
	storage.Finalise()
	TeardownTestLogger()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
