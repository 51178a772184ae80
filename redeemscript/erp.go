// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

// ErpParser is the parser for scripts with an emergency recovery branch:
// ErpMultiSigTy, NonStandardErpMultiSigTy and P2shErpMultiSigTy.  Every
// Parser query is answered from the default branch.
type ErpParser struct {
	multiSigType MultiSigType
	csv          script.Chunk
	defaultSet   *StandardParser
	emergencySet *StandardParser
}

// Ensure ErpParser implements the Parser interface.
var _ Parser = (*ErpParser)(nil)

// newErpParser returns a parser for the passed layout.  Inlined layouts get
// an OP_CHECKMULTISIG appended to each branch so both are complete standard
// scripts.
func newErpParser(t MultiSigType, st ScriptType, layout erpLayout) *ErpParser {
	defaultBranch := layout.defaultBranch
	emergencyBranch := layout.emergencyBranch
	if t != P2shErpMultiSigTy {
		defaultBranch = withCheckMultiSig(defaultBranch)
		emergencyBranch = withCheckMultiSig(emergencyBranch)
	}

	return &ErpParser{
		multiSigType: t,
		csv:          layout.csv,
		defaultSet:   newStandardParser(st, defaultBranch),
		emergencySet: newStandardParser(st, emergencyBranch),
	}
}

// MultiSigType is part of the Parser interface.
func (p *ErpParser) MultiSigType() MultiSigType {
	return p.multiSigType
}

// ScriptType is part of the Parser interface.
func (p *ErpParser) ScriptType() ScriptType {
	return p.defaultSet.ScriptType()
}

// Threshold is part of the Parser interface.
func (p *ErpParser) Threshold() (int, error) {
	return p.defaultSet.Threshold()
}

// PubKeys is part of the Parser interface.
func (p *ErpParser) PubKeys() ([][]byte, error) {
	return p.defaultSet.PubKeys()
}

// FindKeyIndex is part of the Parser interface.
func (p *ErpParser) FindKeyIndex(pubKey []byte) (int, error) {
	return p.defaultSet.FindKeyIndex(pubKey)
}

// FindSignatureIndex is part of the Parser interface.
func (p *ErpParser) FindSignatureIndex(sig []byte,
	sigHash chainhash.Hash) (int, error) {

	return p.defaultSet.FindSignatureIndex(sig, sigHash)
}

// ExtractStandardFragment is part of the Parser interface.
func (p *ErpParser) ExtractStandardFragment() (*script.Script, error) {
	return p.defaultSet.ExtractStandardFragment()
}

// HasEmergencyRecoveryFormat returns true.
func (p *ErpParser) HasEmergencyRecoveryFormat() bool {
	return true
}

// DefaultFragment returns the default branch as a standard script.
func (p *ErpParser) DefaultFragment() *script.Script {
	return script.NewScript(p.defaultSet.chunks)
}

// EmergencyFragment returns the emergency branch as a standard script.
func (p *ErpParser) EmergencyFragment() *script.Script {
	return script.NewScript(p.emergencySet.chunks)
}

// EmergencyParser returns a parser over the emergency branch.
func (p *ErpParser) EmergencyParser() *StandardParser {
	return p.emergencySet
}

// CSVBytes returns a copy of the raw bytes of the relative lock time push.
// Small integer opcodes are returned as their script number encoding.
func (p *ErpParser) CSVBytes() []byte {
	if p.csv.IsPushData() {
		return append([]byte(nil), p.csv.Data...)
	}
	n, _ := p.csv.SmallInt()
	return script.ScriptNum(n).Bytes()
}

// CSVValue returns the relative lock time of the emergency branch, decoded
// the way the script type encodes it.
func (p *ErpParser) CSVValue() (int64, error) {
	if p.multiSigType == NonStandardErpMultiSigTy {
		return DecodeLegacyCSV(p.csv.Data)
	}
	return DecodeCSV(p.csv)
}
