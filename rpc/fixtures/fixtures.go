// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed keys so tests are repeatable
var (
	CreatorKey = makeKey(0x11)
	BuyerKey   = makeKey(0x22)
	OwnerKey   = makeKey(0x33)
	LiveKey    = makeLiveKey(0x44)
)

func makeKey(fill byte) *account.PrivateKey {
	key, err := account.NewPrivateKey(true, bytes.NewReader(bytes.Repeat([]byte{fill}, 64)))
	if nil != err {
		panic(err)
	}
	return key
}

func makeLiveKey(fill byte) *account.PrivateKey {
	key, err := account.NewPrivateKey(false, bytes.NewReader(bytes.Repeat([]byte{fill}, 64)))
	if nil != err {
		panic(err)
	}
	return key
}

var certificateData struct {
	sync.Once
	certificate []byte
	key         []byte
}

// Certificate - a self-signed certificate and private key in PEM form
func Certificate() (string, string) {
	certificateData.Do(func() {
		cert, key, err := certgen.NewTLSCertPair("testing", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
		if nil != err {
			panic(err)
		}
		certificateData.certificate = cert
		certificateData.key = key
	})
	return string(certificateData.certificate), string(certificateData.key)
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

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
