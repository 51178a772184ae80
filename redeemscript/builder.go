// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

// MaxPubKeysPerMultiSig is the largest number of keys a standard multisig
// script built by this package may declare.
const MaxPubKeysPerMultiSig = 16

// finish turns the builder output into a Script.
func finish(b *script.ScriptBuilder) (*script.Script, error) {
	program, err := b.Script()
	if err != nil {
		return nil, err
	}
	return script.ParseScript(program)
}

// BuildStandard returns a threshold-of-len(pubKeys) multisig script:
//
//	threshold <pubkey 1> ... <pubkey N> N OP_CHECKMULTISIG
//
// Keys are kept in the passed order and must be valid secp256k1 keys.
func BuildStandard(threshold int, pubKeys [][]byte) (*script.Script, error) {
	if len(pubKeys) > MaxPubKeysPerMultiSig {
		str := fmt.Sprintf("%d keys exceeds the maximum of %d",
			len(pubKeys), MaxPubKeysPerMultiSig)
		return nil, redeemError(ErrTooManyPubKeys, str)
	}
	if threshold < 1 || threshold > len(pubKeys) {
		str := fmt.Sprintf("threshold %d is out of range [1, %d]",
			threshold, len(pubKeys))
		return nil, redeemError(ErrInvalidThreshold, str)
	}

	b := script.NewScriptBuilder().AddInt64(int64(threshold))
	for i, pubKey := range pubKeys {
		if _, err := btcec.ParsePubKey(pubKey); err != nil {
			str := fmt.Sprintf("key %x at index %d is invalid: %v",
				pubKey, i, err)
			return nil, redeemError(ErrInvalidPubKey, str)
		}
		b.AddData(pubKey)
	}
	b.AddInt64(int64(len(pubKeys))).AddOp(script.OP_CHECKMULTISIG)

	return finish(b)
}

// BuildFlyover prefixes a redeem script with the derivation hash:
//
//	<derivation hash> OP_DROP <redeem script>
//
// The redeem script must classify as a standard, ERP, non-standard ERP or
// P2SH ERP script.
func BuildFlyover(redeem *script.Script,
	derivationHash chainhash.Hash) (*script.Script, error) {

	if derivationHash == (chainhash.Hash{}) {
		return nil, redeemError(ErrInvalidDerivationHash,
			"derivation hash must not be zero")
	}

	chunks := redeem.Chunks()
	if HasFlyoverPrefix(chunks) {
		str := fmt.Sprintf("script %s already has a flyover prefix",
			redeem)
		return nil, redeemError(ErrAlreadyFlyover, str)
	}
	if !IsRedeemLike(chunks) {
		str := fmt.Sprintf("script %s is not a redeem script", redeem)
		return nil, redeemError(ErrInvalidScript, str)
	}

	// Only inner types with a flyover counterpart may be wrapped.
	inner := classify(RedeemScriptTy, chunks)
	if _, ok := flyoverTypeFor(inner.MultiSigType()); !ok {
		str := fmt.Sprintf("script %s of type %v has no flyover form",
			redeem, inner.MultiSigType())
		return nil, redeemError(ErrInvalidScript, str)
	}

	b := script.NewScriptBuilder().
		AddData(derivationHash[:]).
		AddOp(script.OP_DROP).
		AddChunks(chunks)
	return finish(b)
}

// erpBranches validates the inputs shared by every ERP builder and returns
// the chunks of both branches.
func erpBranches(defaultScript, emergencyScript *script.Script,
	csv int64) ([]script.Chunk, []script.Chunk, error) {

	if err := checkCSVRange(csv); err != nil {
		return nil, nil, err
	}

	defaultChunks := defaultScript.Chunks()
	if !HasStandardStructure(defaultChunks) {
		str := fmt.Sprintf("default script %s is not a standard "+
			"multisig", defaultScript)
		return nil, nil, redeemError(ErrNotStandardMultiSig, str)
	}
	emergencyChunks := emergencyScript.Chunks()
	if !HasStandardStructure(emergencyChunks) {
		str := fmt.Sprintf("emergency script %s is not a standard "+
			"multisig", emergencyScript)
		return nil, nil, redeemError(ErrNotStandardMultiSig, str)
	}

	return defaultChunks, emergencyChunks, nil
}

// buildInlinedErp assembles the inlined ERP layout with the passed CSV push.
func buildInlinedErp(defaultScript, emergencyScript *script.Script, csv int64,
	addCSV func(*script.ScriptBuilder, int64) error) (*script.Script, error) {

	defaultChunks, emergencyChunks, err := erpBranches(defaultScript,
		emergencyScript, csv)
	if err != nil {
		return nil, err
	}
	defaultChunks, _ = StripTrailingCheckMultisig(defaultChunks)
	emergencyChunks, _ = StripTrailingCheckMultisig(emergencyChunks)

	b := script.NewScriptBuilder().
		AddOp(script.OP_NOTIF).
		AddChunks(defaultChunks).
		AddOp(script.OP_ELSE)
	if err := addCSV(b, csv); err != nil {
		return nil, err
	}
	b.AddOps([]byte{script.OP_CHECKSEQUENCEVERIFY, script.OP_DROP}).
		AddChunks(emergencyChunks).
		AddOps([]byte{script.OP_ENDIF, script.OP_CHECKMULTISIG})

	return finish(b)
}

// BuildErp returns an emergency recovery script whose branches share a single
// trailing multisig opcode:
//
//	OP_NOTIF <default keys> OP_ELSE <csv> OP_CHECKSEQUENCEVERIFY OP_DROP
//	<emergency keys> OP_ENDIF OP_CHECKMULTISIG
//
// The relative lock time is pushed as a minimal script number.
func BuildErp(defaultScript, emergencyScript *script.Script,
	csv int64) (*script.Script, error) {

	return buildInlinedErp(defaultScript, emergencyScript, csv,
		func(b *script.ScriptBuilder, csv int64) error {
			b.AddInt64(csv)
			return nil
		})
}

// BuildLegacyErp returns the same layout as BuildErp with the relative lock
// time in the deprecated 2-byte big-endian encoding.  Scripts built this way
// always classify as NonStandardErpMultiSigTy.
//
// Only lock times whose two bytes are not also a minimal script number are
// accepted: with csv = hi<<8 | lo, either lo must be at least 0x80, or lo must
// be zero and hi below 0x80.  For example 128, 500, 32512 and 65535 are
// accepted while 1 through 127, 257 and 32768 fail with ErrInvalidCSVValue.
//
// Deprecated: Use BuildErp.  This only exists to reproduce scripts of early
// deployments.
func BuildLegacyErp(defaultScript, emergencyScript *script.Script,
	csv int64) (*script.Script, error) {

	return buildInlinedErp(defaultScript, emergencyScript, csv,
		func(b *script.ScriptBuilder, csv int64) error {
			data, err := EncodeLegacyCSV(csv)
			if err != nil {
				return err
			}
			if err := checkLegacyCSVUnambiguous(csv, data); err != nil {
				return err
			}
			b.AddFullData(data)
			return nil
		})
}

// BuildP2shErp returns an emergency recovery script whose branches are
// complete standard multisig scripts:
//
//	OP_NOTIF <default script> OP_ELSE <csv> OP_CHECKSEQUENCEVERIFY OP_DROP
//	<emergency script> OP_ENDIF
func BuildP2shErp(defaultScript, emergencyScript *script.Script,
	csv int64) (*script.Script, error) {

	defaultChunks, emergencyChunks, err := erpBranches(defaultScript,
		emergencyScript, csv)
	if err != nil {
		return nil, err
	}

	b := script.NewScriptBuilder().
		AddOp(script.OP_NOTIF).
		AddChunks(defaultChunks).
		AddOp(script.OP_ELSE).
		AddInt64(csv).
		AddOps([]byte{script.OP_CHECKSEQUENCEVERIFY, script.OP_DROP}).
		AddChunks(emergencyChunks).
		AddOp(script.OP_ENDIF)

	return finish(b)
}

// BuildFlyoverErp returns BuildErp wrapped by BuildFlyover.
func BuildFlyoverErp(defaultScript, emergencyScript *script.Script, csv int64,
	derivationHash chainhash.Hash) (*script.Script, error) {

	erp, err := BuildErp(defaultScript, emergencyScript, csv)
	if err != nil {
		return nil, err
	}
	return BuildFlyover(erp, derivationHash)
}

// BuildFlyoverP2shErp returns BuildP2shErp wrapped by BuildFlyover.
func BuildFlyoverP2shErp(defaultScript, emergencyScript *script.Script,
	csv int64, derivationHash chainhash.Hash) (*script.Script, error) {

	erp, err := BuildP2shErp(defaultScript, emergencyScript, csv)
	if err != nil {
		return nil, err
	}
	return BuildFlyover(erp, derivationHash)
}
