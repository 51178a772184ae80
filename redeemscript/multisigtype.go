// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

// MultiSigType is an enumeration of the redeem script shapes recognized by the
// parser factory.
type MultiSigType byte

// Shapes of redeem script known to the federation.
const (
	NoMultiSigTy              MultiSigType = iota // None of the recognized forms.
	StandardMultiSigTy                            // M <keys> N OP_CHECKMULTISIG.
	FlyoverMultiSigTy                             // Flyover prefix over a standard script.
	ErpMultiSigTy                                 // Inlined ERP with a script number CSV.
	P2shErpMultiSigTy                             // ERP whose branches are complete multisigs.
	FlyoverErpMultiSigTy                          // Flyover prefix over an inlined ERP.
	FlyoverP2shErpMultiSigTy                      // Flyover prefix over a P2SH ERP.
	NonStandardErpMultiSigTy                      // Inlined ERP with a legacy CSV encoding.
	HardcodedLegacyMultiSigTy                     // Allow-listed historical script.
)

var multiSigTypeToName = []string{
	NoMultiSigTy:              "none",
	StandardMultiSigTy:        "standard",
	FlyoverMultiSigTy:         "flyover",
	ErpMultiSigTy:             "erp",
	P2shErpMultiSigTy:         "p2sh-erp",
	FlyoverErpMultiSigTy:      "flyover-erp",
	FlyoverP2shErpMultiSigTy:  "flyover-p2sh-erp",
	NonStandardErpMultiSigTy:  "non-standard-erp",
	HardcodedLegacyMultiSigTy: "hardcoded-legacy",
}

// String implements the Stringer interface by returning the name of
// the enum multisig type. If the enum is invalid then "Invalid" will be
// returned.
func (t MultiSigType) String() string {
	if int(t) >= len(multiSigTypeToName) {
		return "Invalid"
	}
	return multiSigTypeToName[t]
}

// IsFlyover returns whether the type carries a flyover derivation prefix.
func (t MultiSigType) IsFlyover() bool {
	switch t {
	case FlyoverMultiSigTy, FlyoverErpMultiSigTy, FlyoverP2shErpMultiSigTy:
		return true
	}
	return false
}

// IsErp returns whether the type has an emergency recovery branch.
func (t MultiSigType) IsErp() bool {
	switch t {
	case ErpMultiSigTy, P2shErpMultiSigTy, NonStandardErpMultiSigTy,
		FlyoverErpMultiSigTy, FlyoverP2shErpMultiSigTy:
		return true
	}
	return false
}

// ScriptType describes where the classified redeem script came from.
type ScriptType byte

const (
	// UndefinedScriptTy is used when the chunks were never inspected.
	UndefinedScriptTy ScriptType = iota

	// RedeemScriptTy means the chunks were the bare redeem script.
	RedeemScriptTy

	// P2SHScriptTy means the chunks were a full P2SH signature script and
	// the redeem script was its last push.
	P2SHScriptTy
)

var scriptTypeToName = []string{
	UndefinedScriptTy: "undefined",
	RedeemScriptTy:    "redeemscript",
	P2SHScriptTy:      "p2sh",
}

// String implements the Stringer interface.
func (t ScriptType) String() string {
	if int(t) >= len(scriptTypeToName) {
		return "Invalid"
	}
	return scriptTypeToName[t]
}
