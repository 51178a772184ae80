// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

// FlyoverParser is the parser for scripts prefixed with a flyover derivation
// hash.  Every Parser query other than MultiSigType is delegated to the
// parser of the unwrapped script.
type FlyoverParser struct {
	multiSigType   MultiSigType
	derivationHash chainhash.Hash
	inner          Parser
}

// Ensure FlyoverParser implements the Parser interface.
var _ Parser = (*FlyoverParser)(nil)

// flyoverTypeFor maps the type of an unwrapped script to the type of its
// flyover wrapping.  Only standard and ERP scripts may be wrapped.
func flyoverTypeFor(inner MultiSigType) (MultiSigType, bool) {
	switch inner {
	case StandardMultiSigTy:
		return FlyoverMultiSigTy, true
	case ErpMultiSigTy, NonStandardErpMultiSigTy:
		return FlyoverErpMultiSigTy, true
	case P2shErpMultiSigTy:
		return FlyoverP2shErpMultiSigTy, true
	}
	return NoMultiSigTy, false
}

// MultiSigType is part of the Parser interface.
func (p *FlyoverParser) MultiSigType() MultiSigType {
	return p.multiSigType
}

// ScriptType is part of the Parser interface.
func (p *FlyoverParser) ScriptType() ScriptType {
	return p.inner.ScriptType()
}

// DerivationHash returns the hash the script was derived with.
func (p *FlyoverParser) DerivationHash() chainhash.Hash {
	return p.derivationHash
}

// Inner returns the parser of the script without the flyover prefix.
func (p *FlyoverParser) Inner() Parser {
	return p.inner
}

// Threshold is part of the Parser interface.
func (p *FlyoverParser) Threshold() (int, error) {
	return p.inner.Threshold()
}

// PubKeys is part of the Parser interface.
func (p *FlyoverParser) PubKeys() ([][]byte, error) {
	return p.inner.PubKeys()
}

// FindKeyIndex is part of the Parser interface.
func (p *FlyoverParser) FindKeyIndex(pubKey []byte) (int, error) {
	return p.inner.FindKeyIndex(pubKey)
}

// FindSignatureIndex is part of the Parser interface.
func (p *FlyoverParser) FindSignatureIndex(sig []byte,
	sigHash chainhash.Hash) (int, error) {

	return p.inner.FindSignatureIndex(sig, sigHash)
}

// ExtractStandardFragment is part of the Parser interface.
func (p *FlyoverParser) ExtractStandardFragment() (*script.Script, error) {
	return p.inner.ExtractStandardFragment()
}

// HasEmergencyRecoveryFormat is part of the Parser interface.
func (p *FlyoverParser) HasEmergencyRecoveryFormat() bool {
	return p.inner.HasEmergencyRecoveryFormat()
}
