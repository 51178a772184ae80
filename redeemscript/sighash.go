// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

// CalcSignatureHash returns the legacy signature hash of input idx of tx
// spending the redeem script.  The result is what federation members sign and
// what FindSignatureIndex verifies against.
func CalcSignatureHash(redeem *script.Script, tx *wire.MsgTx, idx int,
	hashType txscript.SigHashType) (chainhash.Hash, error) {

	if idx < 0 || idx >= len(tx.TxIn) {
		str := fmt.Sprintf("input index %d is out of range for a "+
			"transaction with %d inputs", idx, len(tx.TxIn))
		return chainhash.Hash{}, redeemError(ErrInputIndex, str)
	}

	hash, err := txscript.CalcSignatureHash(redeem.Program(), hashType, tx, idx)
	if err != nil {
		return chainhash.Hash{}, err
	}

	var sigHash chainhash.Hash
	copy(sigHash[:], hash)
	return sigHash, nil
}
