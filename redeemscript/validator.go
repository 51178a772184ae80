// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"fmt"

	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

const (
	// minRedeemChunks is the smallest number of chunks a multisig redeem
	// script can have: 1 <key> 1 OP_CHECKMULTISIG.
	minRedeemChunks = 4

	// flyoverPrefixLen is the number of chunks of the flyover prefix.
	flyoverPrefixLen = 2
)

// IsRedeemLike returns whether the chunks end the way every supported
// multisig redeem script ends: with a multisig opcode, or with OP_ENDIF right
// after a multisig opcode.
func IsRedeemLike(chunks []script.Chunk) bool {
	n := len(chunks)
	if n < minRedeemChunks {
		return false
	}
	if chunks[n-1].IsCheckMultiSig() {
		return true
	}
	return chunks[n-1].EqualsOpcode(script.OP_ENDIF) &&
		chunks[n-2].IsCheckMultiSig()
}

// HasStandardStructure returns whether the chunks form an M-of-N multisig
// script:
//
//	M <pubkey 1> ... <pubkey N> N OP_CHECKMULTISIG
//
// where M and N are small integers with 1 <= M <= N.  The keys are only
// required to be data pushes.
func HasStandardStructure(chunks []script.Chunk) bool {
	n := len(chunks)
	if n < minRedeemChunks || !chunks[n-1].IsCheckMultiSig() {
		return false
	}

	numPubKeys, err := chunks[n-2].SmallInt()
	if err != nil || numPubKeys < 1 || n != numPubKeys+3 {
		return false
	}
	threshold, err := chunks[0].SmallInt()
	if err != nil || threshold < 1 || threshold > numPubKeys {
		return false
	}

	for _, c := range chunks[1 : n-2] {
		if !c.IsPushData() {
			return false
		}
	}
	return true
}

// erpLayout holds the pieces of an ERP-shaped script.  The branch slices are
// views into the chunks the layout was split from.
type erpLayout struct {
	defaultBranch   []script.Chunk
	csv             script.Chunk
	emergencyBranch []script.Chunk
}

// isCSVChunk returns whether the chunk may hold a relative lock time.
func isCSVChunk(c script.Chunk) bool {
	return c.IsPushData() ||
		(c.Opcode >= script.OP_1 && c.Opcode <= script.OP_16)
}

// splitErp splits chunks of the form
//
//	OP_NOTIF <default> OP_ELSE <csv> OP_CHECKSEQUENCEVERIFY OP_DROP
//	<emergency> OP_ENDIF
//
// where the OP_ENDIF is at index endIf.  Anything after endIf is ignored.
func splitErp(chunks []script.Chunk, endIf int) (erpLayout, bool) {
	if endIf < 1 || endIf >= len(chunks) ||
		!chunks[0].EqualsOpcode(script.OP_NOTIF) ||
		!chunks[endIf].EqualsOpcode(script.OP_ENDIF) {

		return erpLayout{}, false
	}

	elseIdx := -1
	for i := 1; i < endIf; i++ {
		if !chunks[i].EqualsOpcode(script.OP_ELSE) {
			continue
		}
		if elseIdx != -1 {
			return erpLayout{}, false
		}
		elseIdx = i
	}
	if elseIdx == -1 || elseIdx+3 >= endIf {
		return erpLayout{}, false
	}

	csv := chunks[elseIdx+1]
	if !isCSVChunk(csv) ||
		!chunks[elseIdx+2].EqualsOpcode(script.OP_CHECKSEQUENCEVERIFY) ||
		!chunks[elseIdx+3].EqualsOpcode(script.OP_DROP) {

		return erpLayout{}, false
	}

	return erpLayout{
		defaultBranch:   chunks[1:elseIdx],
		csv:             csv,
		emergencyBranch: chunks[elseIdx+4 : endIf],
	}, true
}

// withCheckMultiSig returns a fresh slice holding the branch followed by an
// OP_CHECKMULTISIG.  The branch is never modified.
func withCheckMultiSig(branch []script.Chunk) []script.Chunk {
	chunks := make([]script.Chunk, 0, len(branch)+1)
	chunks = append(chunks, branch...)
	return append(chunks, script.OpChunk(script.OP_CHECKMULTISIG))
}

// p2shErpLayout returns the layout of a P2SH ERP script, whose branches are
// complete standard multisig scripts.
func p2shErpLayout(chunks []script.Chunk) (erpLayout, bool) {
	layout, ok := splitErp(chunks, len(chunks)-1)
	if !ok || !HasStandardStructure(layout.defaultBranch) ||
		!HasStandardStructure(layout.emergencyBranch) {

		return erpLayout{}, false
	}
	return layout, true
}

// nonStandardErpLayout returns the layout of an inlined ERP script, whose
// branches share the trailing multisig opcode after OP_ENDIF.
func nonStandardErpLayout(chunks []script.Chunk) (erpLayout, bool) {
	n := len(chunks)
	if n < minRedeemChunks || !chunks[n-1].IsCheckMultiSig() {
		return erpLayout{}, false
	}
	layout, ok := splitErp(chunks, n-2)
	if !ok || !HasStandardStructure(withCheckMultiSig(layout.defaultBranch)) ||
		!HasStandardStructure(withCheckMultiSig(layout.emergencyBranch)) {

		return erpLayout{}, false
	}
	return layout, true
}

// HasP2shErpStructure returns whether the chunks form a P2SH ERP script:
//
//	OP_NOTIF <standard> OP_ELSE <csv> OP_CHECKSEQUENCEVERIFY OP_DROP
//	<standard> OP_ENDIF
//
// Each branch carries its own multisig opcode.
func HasP2shErpStructure(chunks []script.Chunk) bool {
	_, ok := p2shErpLayout(chunks)
	return ok
}

// HasNonStandardErpStructure returns whether the chunks form an inlined ERP
// script:
//
//	OP_NOTIF <standard w/o OP_CHECKMULTISIG> OP_ELSE <csv>
//	OP_CHECKSEQUENCEVERIFY OP_DROP <standard w/o OP_CHECKMULTISIG>
//	OP_ENDIF OP_CHECKMULTISIG
//
// This is the shape of both the ERP and the non-standard ERP types; they only
// differ in how the CSV value is encoded.
func HasNonStandardErpStructure(chunks []script.Chunk) bool {
	_, ok := nonStandardErpLayout(chunks)
	return ok
}

// HasFlyoverPrefix returns whether the chunks start with a 32-byte
// derivation hash push followed by OP_DROP.
func HasFlyoverPrefix(chunks []script.Chunk) bool {
	return len(chunks) >= flyoverPrefixLen &&
		chunks[0].IsPushData() && len(chunks[0].Data) == 32 &&
		chunks[1].EqualsOpcode(script.OP_DROP)
}

// HasFlyoverStructure returns whether the chunks are a flyover prefix
// followed by a redeem-like script.
func HasFlyoverStructure(chunks []script.Chunk) bool {
	return HasFlyoverPrefix(chunks) &&
		IsRedeemLike(chunks[flyoverPrefixLen:])
}

// StripTrailingCheckMultisig returns the chunks of a standard multisig
// script without its final multisig opcode.  The returned slice shares the
// backing array of the passed chunks.
func StripTrailingCheckMultisig(chunks []script.Chunk) ([]script.Chunk, error) {
	if !HasStandardStructure(chunks) {
		str := fmt.Sprintf("script %s is not a standard multisig",
			script.NewScript(chunks))
		return nil, redeemError(ErrNotStandardMultiSig, str)
	}
	return chunks[: len(chunks)-1 : len(chunks)-1], nil
}
