// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

// ScriptHashAddress returns the pay-to-script-hash address of the redeem
// script for the passed network.
func ScriptHashAddress(redeem *script.Script,
	params *chaincfg.Params) (*btcutil.AddressScriptHash, error) {

	return btcutil.NewAddressScriptHash(redeem.Program(), params)
}

// WitnessScriptHashAddress returns the pay-to-witness-script-hash address of
// the redeem script for the passed network.
func WitnessScriptHashAddress(redeem *script.Script,
	params *chaincfg.Params) (*btcutil.AddressWitnessScriptHash, error) {

	return btcutil.NewAddressWitnessScriptHash(
		chainhash.HashB(redeem.Program()), params,
	)
}
