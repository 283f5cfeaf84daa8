// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/util"
)

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.ErrCertificateFileExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrCertificateFileExists
	}

	org := "marketd self signed cert for: " + name
	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); err != nil {
		_ = os.Remove(certificateFileName)
		return err
	}

	return nil
}

// create an account key, returning the account it controls
func makeIdentity(testnet bool, fileName string) (*account.Account, error) {

	if util.EnsureFileExists(fileName) {
		return nil, fault.ErrIdentityFileExists
	}

	privateKey, err := account.NewPrivateKey(testnet, nil)
	if nil != err {
		return nil, err
	}

	data := "PRIVATE:" + privateKey.String() + "\n" +
		"ACCOUNT:" + privateKey.Account().String() + "\n"
	if err = ioutil.WriteFile(fileName, []byte(data), 0600); nil != err {
		return nil, err
	}

	return privateKey.Account(), nil
}
