// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/util"
)

// PrivateKey - an ed25519 signing key with its network flag
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key from the supplied entropy
//
// a nil reader uses crypto/rand
func NewPrivateKey(test bool, entropy io.Reader) (*PrivateKey, error) {
	if nil == entropy {
		entropy = rand.Reader
	}
	_, privateKey, err := ed25519.GenerateKey(entropy)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: privateKey,
	}, nil
}

// PrivateKeyFromBase58 - decode the String() form of a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	decoded, err := base58.Decode(privateKeyBase58Encoded)
	if nil != err || len(decoded) <= checksumLength {
		return nil, fault.ErrCannotDecodePrivateKey
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	keyVariant, keyVariantLength := util.FromVarint64(decoded[:checksumStart])
	if 0 == keyVariantLength || 0 != keyVariant&publicKeyCode {
		return nil, fault.ErrNotPrivateKey
	}
	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	key := decoded[keyVariantLength:checksumStart]
	if ed25519.PrivateKeySize != len(key) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(privateKey, key)

	return &PrivateKey{
		Test:       0 != keyVariant&testKeyCode,
		PrivateKey: privateKey,
	}, nil
}

// Account - the public identity for this key
func (privateKey *PrivateKey) Account() *Account {
	publicKey := privateKey.PrivateKey.Public().(ed25519.PublicKey)
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      privateKey.Test,
			PublicKey: []byte(publicKey),
		},
	}
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - key variant followed by the raw key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey...)
}

// String - base58 encoding with checksum
func (privateKey *PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}
