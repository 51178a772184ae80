// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btclog"
	"github.com/rsksmart/bitcoinj-thin-sub000/redeemscript"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

var (
	cfg *config
	log btclog.Logger
)

// printDescriptor writes a human readable summary of the classified script.
func printDescriptor(w io.Writer, p redeemscript.Parser) {
	d := redeemscript.Describe(p)
	fmt.Fprintf(w, "Type:                %v\n", d.MultiSigType)
	fmt.Fprintf(w, "Script type:         %v\n", d.ScriptType)

	d.DerivationHash.WhenSome(func(h chainhash.Hash) {
		fmt.Fprintf(w, "Derivation hash:     %x\n", h[:])
	})
	d.Threshold.WhenSome(func(m int) {
		fmt.Fprintf(w, "Threshold:           %d\n", m)
	})
	d.PubKeys.WhenSome(func(pubKeys [][]byte) {
		for i, pubKey := range pubKeys {
			fmt.Fprintf(w, "Public key %-2d:       %x\n", i, pubKey)
		}
	})
	d.EmergencyThreshold.WhenSome(func(m int) {
		fmt.Fprintf(w, "Emergency threshold: %d\n", m)
	})
	d.EmergencyPubKeys.WhenSome(func(pubKeys [][]byte) {
		for i, pubKey := range pubKeys {
			fmt.Fprintf(w, "Emergency key %-2d:    %x\n", i, pubKey)
		}
	})
	d.CSVValue.WhenSome(func(csv int64) {
		fmt.Fprintf(w, "CSV:                 %d\n", csv)
	})
	d.StandardFragment.WhenSome(func(s *script.Script) {
		fmt.Fprintf(w, "Standard fragment:   %v\n", s)
	})
}

// printAddresses writes the P2SH and P2WSH addresses of the redeem script.
func printAddresses(w io.Writer, redeem *script.Script) error {
	p2sh, err := redeemscript.ScriptHashAddress(redeem, activeNetParams)
	if err != nil {
		return err
	}
	p2wsh, err := redeemscript.WitnessScriptHashAddress(redeem,
		activeNetParams)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "P2SH address:        %s\n", p2sh.EncodeAddress())
	fmt.Fprintf(w, "P2WSH address:       %s\n", p2wsh.EncodeAddress())
	return nil
}

// classify parses the script and prints what it is.
func classify(w io.Writer, s *script.Script) error {
	p, err := redeemscript.ParseScript(s)
	if err != nil {
		return err
	}
	log.Debugf("Classified %v as %v", s, p.MultiSigType())

	printDescriptor(w, p)
	if p.ScriptType() == redeemscript.RedeemScriptTy &&
		p.MultiSigType() != redeemscript.NoMultiSigTy {

		return printAddresses(w, s)
	}
	return nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	// Load configuration and parse command line.
	tcfg, args, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg

	// Setup logging.
	backendLogger := btclog.NewBackend(os.Stdout)
	defer os.Stdout.Sync()
	level, _ := btclog.LevelFromString(cfg.DebugLevel)
	log = backendLogger.Logger("MAIN")
	log.SetLevel(level)
	scriptLog := backendLogger.Logger("RDSC")
	scriptLog.SetLevel(level)
	redeemscript.UseLogger(scriptLog)

	if cfg.Build != "" {
		redeem, err := buildScript(cfg)
		if err != nil {
			log.Errorf("Unable to build %s script: %v", cfg.Build, err)
			return err
		}

		fmt.Printf("Script:              %x\n", redeem.Program())
		fmt.Printf("Disassembly:         %v\n", redeem)
		if err := classify(os.Stdout, redeem); err != nil {
			return err
		}
	}

	for i, arg := range args {
		program, err := hex.DecodeString(arg)
		if err != nil {
			log.Errorf("Argument #%d is not hex: %v", i, err)
			return err
		}
		s, err := script.ParseScript(program)
		if err != nil {
			disasm, _ := script.DisasmString(program)
			log.Errorf("Unable to parse %s: %v", disasm, err)
			return err
		}

		if cfg.Build != "" || i > 0 {
			fmt.Println()
		}
		fmt.Printf("Disassembly:         %v\n", s)
		if err := classify(os.Stdout, s); err != nil {
			log.Errorf("Unable to classify %v: %v", s, err)
			return err
		}
	}

	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
