// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"fmt"

	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

// spendableParser classifies a redeem script that signature scripts can be
// built for.
func spendableParser(redeem *script.Script) (Parser, int, error) {
	p, err := ParseScript(redeem)
	if err != nil {
		return nil, 0, err
	}
	if p.ScriptType() != RedeemScriptTy {
		str := fmt.Sprintf("script %s is not a bare redeem script", redeem)
		return nil, 0, redeemError(ErrInvalidScript, str)
	}
	threshold, err := p.Threshold()
	if err != nil {
		return nil, 0, err
	}
	return p, threshold, nil
}

// buildInputScript assembles
//
//	OP_0 <sig 1> ... <sig n> [OP_0] <redeem script>
//
// where the optional OP_0 selects the default branch of ERP scripts.
func buildInputScript(p Parser, sigs [][]byte,
	redeem *script.Script) (*script.Script, error) {

	b := script.NewScriptBuilder().AddOp(script.OP_0)
	for _, sig := range sigs {
		b.AddData(sig)
	}
	if p.HasEmergencyRecoveryFormat() {
		b.AddOp(script.OP_0)
	}
	b.AddData(redeem.Program())

	return finish(b)
}

// BuildP2SHMultiSigInputScript returns a signature script spending the
// default branch of the redeem script with the passed signatures, which must
// already be in key order.  At most the threshold of signatures is accepted.
func BuildP2SHMultiSigInputScript(sigs [][]byte,
	redeem *script.Script) (*script.Script, error) {

	p, threshold, err := spendableParser(redeem)
	if err != nil {
		return nil, err
	}
	if len(sigs) > threshold {
		str := fmt.Sprintf("%d signatures exceeds the threshold of %d",
			len(sigs), threshold)
		return nil, redeemError(ErrInvalidThreshold, str)
	}
	return buildInputScript(p, sigs, redeem)
}

// BuildEmptyP2SHInputScript returns a signature script for the redeem script
// with an OP_0 placeholder for each required signature.
func BuildEmptyP2SHInputScript(redeem *script.Script) (*script.Script, error) {
	p, threshold, err := spendableParser(redeem)
	if err != nil {
		return nil, err
	}
	return buildInputScript(p, make([][]byte, threshold), redeem)
}
