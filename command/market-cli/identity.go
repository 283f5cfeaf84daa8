// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/fault"
)

const privatePrefix = "PRIVATE:"

// read the signing key from an identity file created by: marketd gen-identity
func readIdentity(fileName string) (*account.PrivateKey, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, privatePrefix) {
			return account.PrivateKeyFromBase58(strings.TrimSpace(strings.TrimPrefix(line, privatePrefix)))
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return nil, fmt.Errorf("identity: %q  error: %s", fileName, fault.ErrNotPrivateKey)
}

// an account argument is either base58 or "self" for the identity in use
func parseAccount(s string, key *account.PrivateKey) (*account.Account, error) {
	if "" == s || "self" == s {
		if nil == key {
			return nil, fault.ErrMissingIdentity
		}
		return key.Account(), nil
	}
	return account.AccountFromBase58(s)
}
