// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/command/market-cli/rpccalls"
)

type metadata struct {
	connect string
	key     *account.PrivateKey
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "market-cli"
	app.Usage = "client for the marketd asset marketplace"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " marketd `HOST:PORT`",
			EnvVar: "MARKET_CONNECT",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  "",
			Usage:  " identity `FILE` from: marketd gen-identity",
			EnvVar: "MARKET_IDENTITY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display marketd status",
			Action: runInfo,
		},
		{
			Name:   "protocol",
			Usage:  "display owner, fee rate and volume",
			Action: runProtocol,
		},
		{
			Name:      "create",
			Usage:     "list a new asset for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*price in base units `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*asset description `STRING`",
				},
				cli.StringFlag{
					Name:  "category, g",
					Value: "",
					Usage: "*asset category `STRING`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*encrypted access token, 32..512 printable ASCII `STRING`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "price",
			Usage:     "change the price of a listed asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetFlag,
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*new price `AMOUNT`",
				},
			},
			Action: runPrice,
		},
		{
			Name:      "remove",
			Usage:     "delist an asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag},
			Action:    runRemove,
		},
		{
			Name:      "asset",
			Usage:     "display an asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag},
			Action:    runAsset,
		},
		{
			Name:  "list",
			Usage: "list assets in identifier order",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 1,
					Usage: " first asset `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of assets `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "purchase",
			Usage:     "buy an asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag},
			Action:    runPurchase,
		},
		{
			Name:      "trade",
			Usage:     "display a purchase record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag, accountFlag},
			Action:    runTrade,
		},
		{
			Name:   "licences",
			Usage:  "list every asset purchased by an account",
			Flags:  []cli.Flag{accountFlag},
			Action: runLicences,
		},
		{
			Name:      "credentials",
			Usage:     "fetch the access token of a purchased asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag},
			Action:    runCredentials,
		},
		{
			Name:   "participant",
			Usage:  "display trading statistics and balance",
			Flags:  []cli.Flag{accountFlag},
			Action: runParticipant,
		},
		{
			Name:      "set-fee",
			Usage:     "owner changes the platform fee",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "rate, r",
					Usage: "*parts per thousand `RATE`",
				},
			},
			Action: runSetFee,
		},
		{
			Name:   "version",
			Usage:  "display market-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the identity
	app.Before = func(c *cli.Context) error {

		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		identity := c.GlobalString("identity")
		if "" == identity {
			return nil
		}

		if m.verbose {
			fmt.Fprintf(m.e, "identity file: %q\n", identity)
		}

		key, err := readIdentity(identity)
		if nil != err {
			return err
		}
		m.key = key
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

var (
	assetFlag = cli.Uint64Flag{
		Name:  "asset, a",
		Usage: "*asset `ID`",
	}
	accountFlag = cli.StringFlag{
		Name:  "account, o",
		Value: "self",
		Usage: " base58 `ACCOUNT` or self",
	}
)

// connect using the global flags
func getClient(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)
	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}
