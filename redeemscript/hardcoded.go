// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"bytes"
	"encoding/hex"

	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

// legacyEmergencyScriptHex stands in for the allow-listed script of an early
// deployment; it is not the historical program itself.  It is an inlined ERP
// whose emergency branch declares four keys but only pushes three, so it
// fails every structural check and is recognized by its exact bytes instead.
// Deployments that need the real program append it to hardcodedScripts.
const legacyEmergencyScriptHex = "" +
	"6452210218ef5e93a593758d56c1488ce1f40e4783a2e610c2590498f6a236d0" +
	"f061b0c72103263955d14ef8c63d3e22073e7568ef388151631a9b023474ff57" +
	"2a0aa1c72e892103392da84d68a38d10f28db9ec778a9506954dc387470f2585" +
	"ff112a9a5aefc786536702cd50b275522102b59c91c05dd7d35ee7490515b5a5" +
	"1fd21ec6bac363cd8e9b363354928369ee342102be678df612649efc69333e76" +
	"b8efd84282122567e458d7a73a03ebfc792d8af22102c59b0f7825296b054c06" +
	"9f89064508a1c149b00d662c929f067b77339eca1a0a5468ae"

// hardcodedScripts is the allow-list of programs matched by exact bytes.
var hardcodedScripts = [][]byte{
	mustDecodeHex(legacyEmergencyScriptHex),
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// isHardcodedLegacy returns whether the chunks serialize to one of the
// allow-listed programs.
func isHardcodedLegacy(chunks []script.Chunk) bool {
	program := script.SerializeChunks(chunks)
	for _, allowed := range hardcodedScripts {
		if bytes.Equal(program, allowed) {
			return true
		}
	}
	return false
}
