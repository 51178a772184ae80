// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

// Parser answers queries about a classified redeem script.  Parsers are
// immutable and safe for concurrent use.  Queries a variant cannot answer
// return an ErrUnsupported error.
type Parser interface {
	// MultiSigType returns the shape the script was classified as.
	MultiSigType() MultiSigType

	// ScriptType returns whether the classified chunks were a bare redeem
	// script or the last push of a P2SH signature script.
	ScriptType() ScriptType

	// Threshold returns the number of signatures the default branch
	// requires.
	Threshold() (int, error)

	// PubKeys returns a copy of the keys of the default branch in script
	// order.
	PubKeys() ([][]byte, error)

	// FindKeyIndex returns the position of the key in the default branch.
	FindKeyIndex(pubKey []byte) (int, error)

	// FindSignatureIndex returns the position of the default branch key
	// that produced the signature over sigHash.
	FindSignatureIndex(sig []byte, sigHash chainhash.Hash) (int, error)

	// ExtractStandardFragment returns the default branch as a standard
	// multisig script.
	ExtractStandardFragment() (*script.Script, error)

	// HasEmergencyRecoveryFormat returns whether the script has an
	// emergency branch.
	HasEmergencyRecoveryFormat() bool
}

// unsupported returns the error used by variants for queries they cannot
// answer.
func unsupported(t MultiSigType, query string) error {
	str := fmt.Sprintf("%s is not supported for %s scripts", query, t)
	return redeemError(ErrUnsupported, str)
}

// parseSignature decodes a DER signature, retrying without the trailing
// sighash type byte signatures carry inside signature scripts.
func parseSignature(sig []byte) (*ecdsa.Signature, error) {
	signature, err := ecdsa.ParseDERSignature(sig)
	if err == nil {
		return signature, nil
	}
	if len(sig) > 1 {
		trimmed, terr := ecdsa.ParseDERSignature(sig[:len(sig)-1])
		if terr == nil {
			return trimmed, nil
		}
	}
	return nil, err
}

// findSignatureIndex returns the index of the first key the signature
// verifies against.
func findSignatureIndex(pubKeys [][]byte, sig []byte,
	sigHash chainhash.Hash) (int, error) {

	signature, err := parseSignature(sig)
	if err != nil {
		str := fmt.Sprintf("unable to decode signature %x: %v", sig, err)
		return -1, redeemError(ErrSignatureNotFound, str)
	}

	for i, serialized := range pubKeys {
		pubKey, err := btcec.ParsePubKey(serialized)
		if err != nil {
			log.Debugf("Skipping undecodable key %x at index %d: %v",
				serialized, i, err)
			continue
		}
		if signature.Verify(sigHash[:], pubKey) {
			return i, nil
		}
	}

	str := fmt.Sprintf("signature %x does not match any of the %d keys",
		sig, len(pubKeys))
	return -1, redeemError(ErrSignatureNotFound, str)
}

// StandardParser is the parser for M-of-N multisig scripts.  It also backs
// both branches of the ERP parser.
type StandardParser struct {
	scriptType ScriptType
	chunks     []script.Chunk
}

// Ensure StandardParser implements the Parser interface.
var _ Parser = (*StandardParser)(nil)

// newStandardParser returns a parser over chunks already known to have the
// standard structure.
func newStandardParser(st ScriptType, chunks []script.Chunk) *StandardParser {
	return &StandardParser{scriptType: st, chunks: chunks}
}

// MultiSigType returns StandardMultiSigTy.
func (p *StandardParser) MultiSigType() MultiSigType {
	return StandardMultiSigTy
}

// ScriptType is part of the Parser interface.
func (p *StandardParser) ScriptType() ScriptType {
	return p.scriptType
}

// Threshold is part of the Parser interface.
func (p *StandardParser) Threshold() (int, error) {
	return p.chunks[0].SmallInt()
}

// NumPubKeys returns the number of keys the script declares.
func (p *StandardParser) NumPubKeys() int {
	return len(p.chunks) - 3
}

func (p *StandardParser) keyChunks() []script.Chunk {
	return p.chunks[1 : len(p.chunks)-2]
}

// PubKeys is part of the Parser interface.
func (p *StandardParser) PubKeys() ([][]byte, error) {
	keyChunks := p.keyChunks()
	pubKeys := make([][]byte, len(keyChunks))
	for i, c := range keyChunks {
		pubKeys[i] = append([]byte(nil), c.Data...)
	}
	return pubKeys, nil
}

// FindKeyIndex is part of the Parser interface.
func (p *StandardParser) FindKeyIndex(pubKey []byte) (int, error) {
	for i, c := range p.keyChunks() {
		if bytes.Equal(c.Data, pubKey) {
			return i, nil
		}
	}
	str := fmt.Sprintf("key %x is not part of the script", pubKey)
	return -1, redeemError(ErrKeyNotFound, str)
}

// FindSignatureIndex is part of the Parser interface.
func (p *StandardParser) FindSignatureIndex(sig []byte,
	sigHash chainhash.Hash) (int, error) {

	pubKeys, _ := p.PubKeys()
	return findSignatureIndex(pubKeys, sig, sigHash)
}

// ExtractStandardFragment returns the script itself.
func (p *StandardParser) ExtractStandardFragment() (*script.Script, error) {
	return script.NewScript(p.chunks), nil
}

// HasEmergencyRecoveryFormat returns false.
func (p *StandardParser) HasEmergencyRecoveryFormat() bool {
	return false
}
