// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultDebugLevel = "info"

	buildStandard  = "standard"
	buildErp       = "erp"
	buildLegacyErp = "legacy-erp"
	buildP2shErp   = "p2sh-erp"
)

var (
	knownBuildTypes = []string{buildStandard, buildErp, buildLegacyErp,
		buildP2shErp}
	activeNetParams = &chaincfg.MainNetParams
)

// config defines the configuration options for redeemscript.
//
// See loadConfig for details on the configuration load process.
type config struct {
	TestNet            bool     `long:"testnet" description:"Use the test network"`
	RegTest            bool     `long:"regtest" description:"Use the regression test network"`
	DebugLevel         string   `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	Build              string   `short:"b" long:"build" description:"Build a redeem script instead of only classifying {standard, erp, legacy-erp, p2sh-erp}"`
	Threshold          int      `short:"m" long:"threshold" description:"Signatures required by the default key set"`
	PubKeys            []string `short:"k" long:"pubkey" description:"Hex public key of the default key set, may be repeated"`
	EmergencyThreshold int      `long:"emergencythreshold" description:"Signatures required by the emergency key set"`
	EmergencyPubKeys   []string `long:"emergencypubkey" description:"Hex public key of the emergency key set, may be repeated"`
	CSV                int64    `long:"csv" description:"Relative lock time of the emergency branch {1-65535}"`
	DerivationHash     string   `long:"derivationhash" description:"Hex flyover derivation hash to prefix the built script with"`

	derivationHash *chainhash.Hash
}

// validBuildType returns whether or not buildType is a supported build type.
func validBuildType(buildType string) bool {
	for _, knownType := range knownBuildTypes {
		if buildType == knownType {
			return true
		}
	}

	return false
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		DebugLevel: defaultDebugLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [script hex...]"
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Multiple networks can't be selected simultaneously.
	funcName := "loadConfig"
	numNets := 0
	if cfg.TestNet {
		numNets++
		activeNetParams = &chaincfg.TestNet3Params
	}
	if cfg.RegTest {
		numNets++
		activeNetParams = &chaincfg.RegressionNetParams
	}
	if numNets > 1 {
		str := "%s: the testnet and regtest params can't be used " +
			"together -- choose one of the two"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Validate the debug level.
	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		str := "%s: the specified debug level [%v] is invalid"
		err := fmt.Errorf(str, funcName, cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Validate the build type.
	if cfg.Build != "" && !validBuildType(cfg.Build) {
		str := "%s: the specified build type [%v] is invalid -- " +
			"supported types %v"
		err := fmt.Errorf(str, funcName, cfg.Build, knownBuildTypes)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Decode the derivation hash.  The bytes are used in script order, not
	// the reversed order hashes are usually displayed in.
	if cfg.DerivationHash != "" {
		b, err := hex.DecodeString(cfg.DerivationHash)
		if err == nil {
			cfg.derivationHash, err = chainhash.NewHash(b)
		}
		if err != nil {
			str := "%s: the specified derivation hash [%v] is " +
				"invalid: %v"
			err := fmt.Errorf(str, funcName, cfg.DerivationHash, err)
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
			return nil, nil, err
		}
	}

	// There must be something to do.
	if cfg.Build == "" && len(remainingArgs) == 0 {
		str := "%s: no scripts to classify and no build requested"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
