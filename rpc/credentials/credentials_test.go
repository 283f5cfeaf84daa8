// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credentials_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/mode"
	"github.com/donald-oputims/cipher-market/operation"
	"github.com/donald-oputims/cipher-market/rpc/credentials"
	"github.com/donald-oputims/cipher-market/rpc/fixtures"
	"github.com/donald-oputims/cipher-market/rpc/mocks"
)

func TestCredentialsGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	v := mocks.NewMockVerifier(ctl)
	m := mocks.NewMockMarketplace(ctl)

	c := credentials.New(logger.New(fixtures.LogCategory), func(_ mode.Mode) bool { return true }, v, m)

	arg := operation.GetCredentials{AssetId: 5}
	operation.Sign(&arg, fixtures.BuyerKey, 1600000000)

	token := strings.Repeat("T", 40)

	v.EXPECT().Verify(&arg).Return(nil).Times(2)
	gomock.InOrder(
		m.EXPECT().GetCredentials(arg.Caller, uint64(5)).Return(token, nil),
		m.EXPECT().GetCredentials(arg.Caller, uint64(5)).Return("", fault.ErrNotPurchased),
	)

	var reply credentials.GetReply
	err := c.Get(&arg, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, token, reply.Token, "wrong token")
	assert.Equal(t, uint64(5), reply.AssetId, "wrong asset id")

	reply = credentials.GetReply{}
	err = c.Get(&arg, &reply)
	assert.Equal(t, fault.ErrNotPurchased, err, "wrong error")
	assert.Equal(t, "", reply.Token, "token leaked")
}
