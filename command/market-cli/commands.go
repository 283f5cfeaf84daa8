// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func checkAssetId(c *cli.Context) (uint64, error) {
	id := c.Uint64("asset")
	if 0 == id {
		return 0, fmt.Errorf("asset id is required")
	}
	return id, nil
}

func runInfo(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetNodeInfo()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runProtocol(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetProtocol()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runCreate(c *cli.Context) error {
	price := c.Uint64("price")
	if 0 == price {
		return fmt.Errorf("price is required")
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	id, err := client.CreateListing(price, c.String("description"), c.String("category"), c.String("token"))
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]uint64{"assetId": id})
}

func runPrice(c *cli.Context) error {
	id, err := checkAssetId(c)
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.UpdatePrice(id, c.Uint64("price")); nil != err {
		return err
	}
	fmt.Fprintf(m.w, "asset: %d  price: %d\n", id, c.Uint64("price"))
	return nil
}

func runRemove(c *cli.Context) error {
	id, err := checkAssetId(c)
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.RemoveListing(id); nil != err {
		return err
	}
	fmt.Fprintf(m.w, "asset: %d  delisted\n", id)
	return nil
}

func runAsset(c *cli.Context) error {
	id, err := checkAssetId(c)
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetAsset(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runList(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListAssets(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runPurchase(c *cli.Context) error {
	id, err := checkAssetId(c)
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.Purchase(id)
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runTrade(c *cli.Context) error {
	id, err := checkAssetId(c)
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	buyer, err := parseAccount(c.String("account"), m.key)
	if nil != err {
		return err
	}

	reply, err := client.GetTrade(buyer, id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runLicences(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	buyer, err := parseAccount(c.String("account"), m.key)
	if nil != err {
		return err
	}

	licences, err := client.GetLicences(buyer)
	if nil != err {
		return err
	}
	return printJson(m.w, licences)
}

func runCredentials(c *cli.Context) error {
	id, err := checkAssetId(c)
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	token, err := client.GetCredentials(id)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s\n", token)
	return nil
}

func runParticipant(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	a, err := parseAccount(c.String("account"), m.key)
	if nil != err {
		return err
	}

	reply, err := client.GetParticipant(a)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runSetFee(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	rate := c.Uint64("rate")
	if err := client.SetFeeRate(rate); nil != err {
		return err
	}
	fmt.Fprintf(m.w, "fee rate: %d/1000\n", rate)
	return nil
}
