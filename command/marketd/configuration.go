// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/donald-oputims/cipher-market/account"
	"github.com/donald-oputims/cipher-market/chain"
	"github.com/donald-oputims/cipher-market/configuration"
	"github.com/donald-oputims/cipher-market/fault"
	"github.com/donald-oputims/cipher-market/ledger"
	"github.com/donald-oputims/cipher-market/rpc/listeners"
	"github.com/donald-oputims/cipher-market/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultLiveDatabase     = chain.Live + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "marketd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients    = 10
	defaultBlockInterval = 10 // seconds
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the leveldb files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Owner         string            `gluamapper:"owner" json:"owner"`
	Platform      string            `gluamapper:"platform" json:"platform"`
	FeeRate       uint64            `gluamapper:"fee_rate" json:"fee_rate"`
	BlockInterval int               `gluamapper:"block_interval" json:"block_interval"`
	Allocations   map[string]uint64 `gluamapper:"allocations" json:"allocations"`

	ClientRPC listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Logging   logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Live,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLiveDatabase,
		},

		FeeRate:       ledger.DefaultFeeRate,
		BlockInterval: defaultBlockInterval,

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultLiveDatabase {
		switch options.Chain {
		case chain.Live:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	if options.BlockInterval < 1 {
		return nil, fmt.Errorf("block_interval: %d must be at least one second", options.BlockInterval)
	}

	if options.FeeRate > ledger.MaximumFeeRate {
		return nil, fault.ErrFeeRateOutOfRange
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// decode the account fields into the ledger's fixed parameters
func (options *Configuration) ledgerConfiguration() (*ledger.Configuration, error) {

	testing := chain.IsTesting(options.Chain)

	owner, err := decodeAccount("owner", options.Owner, testing)
	if nil != err {
		return nil, err
	}

	var platform *account.Account
	if "" != options.Platform {
		platform, err = decodeAccount("platform", options.Platform, testing)
		if nil != err {
			return nil, err
		}
	}

	// sorted so a fresh database is always seeded in the same order
	names := make([]string, 0, len(options.Allocations))
	for name := range options.Allocations {
		names = append(names, name)
	}
	sort.Strings(names)

	allocations := make([]ledger.Allocation, 0, len(names))
	for _, name := range names {
		a, err := decodeAccount("allocation", name, testing)
		if nil != err {
			return nil, err
		}
		allocations = append(allocations, ledger.Allocation{
			Account: a,
			Amount:  options.Allocations[name],
		})
	}

	return &ledger.Configuration{
		Owner:       owner,
		Platform:    platform,
		FeeRate:     options.FeeRate,
		Allocations: allocations,
	}, nil
}

func decodeAccount(field string, s string, testing bool) (*account.Account, error) {
	if "" == s {
		return nil, fmt.Errorf("%s: %s", field, fault.ErrMissingParameters)
	}
	a, err := account.AccountFromBase58(s)
	if nil != err {
		return nil, fmt.Errorf("%s: %q  error: %s", field, s, err)
	}
	if a.IsTesting() != testing {
		return nil, fmt.Errorf("%s: %q  error: %s", field, s, fault.ErrWrongNetworkForKey)
	}
	return a, nil
}
