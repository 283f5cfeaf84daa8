// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     []byte
	base58Account string
}

// Valid account
var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
}

type invalid struct {
	str string
	err error
}

var testInvalidAccountFromBase58 = []invalid{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.ErrCannotDecodeAccount}, // invalid base58 string
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ErrChecksumMismatch},    // checksum mismatch
	{"", fault.ErrCannotDecodeAccount},
}

func TestFromBytes(t *testing.T) {
	for index, test := range testAccount {
		testnet := 0x00
		if test.testnet {
			testnet = 0x02
		}

		buffer := []byte{byte(account.ED25519<<4 | 0x01 | testnet)}
		buffer = append(buffer, test.publicKey...)
		acc, err := account.AccountFromBytes(buffer)
		if nil != err {
			t.Errorf("%d: create account from bytes failed: %s", index, err)
			continue
		}
		if !bytes.Equal(buffer, acc.Bytes()) {
			t.Errorf("%d: account bytes: %x does not match: %x", index, acc.Bytes(), buffer)
		}
		if acc.String() != test.base58Account {
			t.Errorf("%d: to base58: got: %s  expected %s", index, acc, test.base58Account)
		}
	}
}

func TestValidBase58(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.AccountFromBase58(test.base58Account)
		if nil != err {
			t.Errorf("%d: from base58 error: %s", index, err)
			continue
		}
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: testnet", index)
		assert.Equal(t, account.ED25519, acc.KeyType(), "%d: key type", index)
		assert.Equal(t, test.publicKey, acc.PublicKeyBytes(), "%d: public key", index)

		j := `"` + test.base58Account + `"`
		var a account.Account
		err = json.Unmarshal([]byte(j), &a)
		if nil != err {
			t.Errorf("%d: from JSON string error: %s", index, err)
			continue
		}

		buffer, _ := json.Marshal(a)
		assert.Equal(t, j, string(buffer), "%d: marshal JSON", index)
	}
}

func TestInvalidBase58(t *testing.T) {
	for index, test := range testInvalidAccountFromBase58 {
		_, err := account.AccountFromBase58(test.str)
		assert.Equal(t, test.err, err, "%d: invalid base58", index)
	}
}

func TestInvalidBytes(t *testing.T) {
	_, err := account.AccountFromBytes([]byte{0x10, 0x01, 0x02})
	assert.Equal(t, fault.ErrNotPublicKey, err, "private key variant")

	_, err = account.AccountFromBytes([]byte{0x11, 0x01, 0x02})
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key")

	_, err = account.AccountFromBytes([]byte{0x71, 0x01, 0x02})
	assert.Equal(t, fault.ErrInvalidKeyType, err, "unknown algorithm")
}

func TestEqual(t *testing.T) {
	a, _ := account.AccountFromBase58(testAccount[1].base58Account)
	b, _ := account.AccountFromBase58(testAccount[1].base58Account)
	c, _ := account.AccountFromBase58(testAccount[2].base58Account)

	assert.True(t, a.Equal(b), "same account")
	assert.False(t, a.Equal(c), "different account")
	assert.False(t, a.Equal(nil), "nil account")

	var empty *account.Account
	assert.False(t, empty.Equal(a), "nil receiver")
}

func TestPrivateKey(t *testing.T) {
	seed := bytes.NewReader(bytes.Repeat([]byte{0x5a}, 64))
	privateKey, err := account.NewPrivateKey(true, seed)
	assert.Nil(t, err, "new private key")

	acc := privateKey.Account()
	assert.True(t, acc.IsTesting(), "test flag not copied")

	message := []byte("a message to sign")
	signature := privateKey.Sign(message)
	assert.Nil(t, acc.CheckSignature(message, signature), "valid signature")
	assert.Equal(t, fault.ErrInvalidSignature, acc.CheckSignature([]byte("other"), signature), "wrong message")
	assert.Equal(t, fault.ErrInvalidSignature, acc.CheckSignature(message, signature[:10]), "short signature")

	decoded, err := account.PrivateKeyFromBase58(privateKey.String())
	assert.Nil(t, err, "decode private key")
	assert.Equal(t, privateKey.PrivateKey, decoded.PrivateKey, "private key round trip")
	assert.True(t, decoded.Account().Equal(acc), "account from decoded key")

	_, err = account.PrivateKeyFromBase58(acc.String())
	assert.Equal(t, fault.ErrNotPrivateKey, err, "public key accepted as private")
}

func TestSignatureText(t *testing.T) {
	signature := account.Signature{0x01, 0xab, 0xff}
	text, err := signature.MarshalText()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, "01abff", string(text), "hex text")

	var decoded account.Signature
	assert.Nil(t, decoded.UnmarshalText(text), "unmarshal")
	assert.Equal(t, signature, decoded, "round trip")
}

func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
