// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

// NoneParser is returned for scripts that match none of the known shapes.
type NoneParser struct {
	scriptType ScriptType
}

// HardcodedParser is returned for scripts on the exact-bytes allow-list.  Their
// structure is not understood, so only the program is available.
type HardcodedParser struct {
	scriptType ScriptType
	program    []byte
}

var (
	_ Parser = (*NoneParser)(nil)
	_ Parser = (*HardcodedParser)(nil)
)

// MultiSigType is part of the Parser interface.
func (p *NoneParser) MultiSigType() MultiSigType { return NoMultiSigTy }

// ScriptType is part of the Parser interface.
func (p *NoneParser) ScriptType() ScriptType { return p.scriptType }

// Threshold is part of the Parser interface.  It always fails with
// ErrUnsupported.
func (p *NoneParser) Threshold() (int, error) {
	return 0, unsupported(NoMultiSigTy, "threshold")
}

// PubKeys is part of the Parser interface.  It always fails with
// ErrUnsupported.
func (p *NoneParser) PubKeys() ([][]byte, error) {
	return nil, unsupported(NoMultiSigTy, "public keys")
}

// FindKeyIndex is part of the Parser interface.  It always fails with
// ErrUnsupported.
func (p *NoneParser) FindKeyIndex([]byte) (int, error) {
	return -1, unsupported(NoMultiSigTy, "key lookup")
}

// FindSignatureIndex is part of the Parser interface.  It always fails with
// ErrUnsupported.
func (p *NoneParser) FindSignatureIndex([]byte, chainhash.Hash) (int, error) {
	return -1, unsupported(NoMultiSigTy, "signature lookup")
}

// ExtractStandardFragment is part of the Parser interface.  It always fails
// with ErrUnsupported.
func (p *NoneParser) ExtractStandardFragment() (*script.Script, error) {
	return nil, unsupported(NoMultiSigTy, "standard fragment")
}

// HasEmergencyRecoveryFormat is part of the Parser interface.
func (p *NoneParser) HasEmergencyRecoveryFormat() bool { return false }

// MultiSigType is part of the Parser interface.
func (p *HardcodedParser) MultiSigType() MultiSigType {
	return HardcodedLegacyMultiSigTy
}

// ScriptType is part of the Parser interface.
func (p *HardcodedParser) ScriptType() ScriptType { return p.scriptType }

// Program returns a copy of the allow-listed program.
func (p *HardcodedParser) Program() []byte {
	return append([]byte(nil), p.program...)
}

// Threshold is part of the Parser interface.  It always fails with
// ErrUnsupported.
func (p *HardcodedParser) Threshold() (int, error) {
	return 0, unsupported(HardcodedLegacyMultiSigTy, "threshold")
}

// PubKeys is part of the Parser interface.  It always fails with
// ErrUnsupported.
func (p *HardcodedParser) PubKeys() ([][]byte, error) {
	return nil, unsupported(HardcodedLegacyMultiSigTy, "public keys")
}

// FindKeyIndex is part of the Parser interface.  It always fails with
// ErrUnsupported.
func (p *HardcodedParser) FindKeyIndex([]byte) (int, error) {
	return -1, unsupported(HardcodedLegacyMultiSigTy, "key lookup")
}

// FindSignatureIndex is part of the Parser interface.  It always fails with
// ErrUnsupported.
func (p *HardcodedParser) FindSignatureIndex([]byte, chainhash.Hash) (int, error) {
	return -1, unsupported(HardcodedLegacyMultiSigTy, "signature lookup")
}

// ExtractStandardFragment is part of the Parser interface.  It always fails
// with ErrUnsupported.
func (p *HardcodedParser) ExtractStandardFragment() (*script.Script, error) {
	return nil, unsupported(HardcodedLegacyMultiSigTy, "standard fragment")
}

// HasEmergencyRecoveryFormat is part of the Parser interface.
func (p *HardcodedParser) HasEmergencyRecoveryFormat() bool { return false }
