// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// drawStandard draws a random standard multisig script out of a pool of
// deterministic keys.
func drawStandard(t *rapid.T, label string, seed byte) *script.Script {
	numKeys := rapid.IntRange(1, 7).Draw(t, label+" keys")
	threshold := rapid.IntRange(1, numKeys).Draw(t, label+" threshold")

	_, pubKeys := testKeySet(seed, numKeys)
	s, err := BuildStandard(threshold, pubKeys)
	require.NoError(t, err)
	return s
}

// drawHash draws a non-zero derivation hash.
func drawHash(t *rapid.T) chainhash.Hash {
	var hash chainhash.Hash
	data := rapid.SliceOfN(rapid.Byte(), chainhash.HashSize,
		chainhash.HashSize).Draw(t, "hash")
	copy(hash[:], data)
	hash[0] |= 0x01
	return hash
}

// TestBuildParseProperty ensures every builder output classifies as its
// target type, exposes the default branch as its standard fragment and
// classifies identically when re-serialized.
func TestBuildParseProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		defaultScript := drawStandard(t, "default", 1)
		emergencyScript := drawStandard(t, "emergency", 10)
		csv := rapid.Int64Range(MinCSVValue, MaxCSVValue).Draw(t, "csv")
		hash := drawHash(t)

		var (
			redeem *script.Script
			want   MultiSigType
			err    error
		)
		switch rapid.IntRange(0, 5).Draw(t, "builder") {
		case 0:
			redeem, want = defaultScript, StandardMultiSigTy
			emergencyScript = nil
		case 1:
			redeem, err = BuildFlyover(defaultScript, hash)
			want = FlyoverMultiSigTy
			emergencyScript = nil
		case 2:
			redeem, err = BuildErp(defaultScript, emergencyScript, csv)
			want = ErpMultiSigTy
		case 3:
			redeem, err = BuildP2shErp(defaultScript, emergencyScript, csv)
			want = P2shErpMultiSigTy
		case 4:
			redeem, err = BuildFlyoverErp(defaultScript,
				emergencyScript, csv, hash)
			want = FlyoverErpMultiSigTy
		case 5:
			redeem, err = BuildFlyoverP2shErp(defaultScript,
				emergencyScript, csv, hash)
			want = FlyoverP2shErpMultiSigTy
		}
		require.NoError(t, err)

		p, err := Parse(redeem.Program())
		require.NoError(t, err)
		require.Equal(t, want, p.MultiSigType())
		require.Equal(t, emergencyScript != nil,
			p.HasEmergencyRecoveryFormat())

		fragment, err := p.ExtractStandardFragment()
		require.NoError(t, err)
		require.True(t, fragment.Equal(defaultScript))

		// Parsing the fragment again is idempotent.
		again, err := ParseScript(fragment)
		require.NoError(t, err)
		require.Equal(t, StandardMultiSigTy, again.MultiSigType())
		fragment2, err := again.ExtractStandardFragment()
		require.NoError(t, err)
		require.True(t, fragment2.Equal(fragment))

		if emergencyScript == nil {
			return
		}
		d := Describe(p)
		require.Equal(t, csv, d.CSVValue.UnwrapOr(0))
	})
}

// TestLegacyErpProperty ensures the deprecated builder either rejects a lock
// time whose encoding is ambiguous or produces a non-standard ERP script that
// reads back the exact lock time it was built with.
func TestLegacyErpProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		defaultScript := drawStandard(t, "default", 1)
		emergencyScript := drawStandard(t, "emergency", 10)
		csv := rapid.Int64Range(MinCSVValue, MaxCSVValue).Draw(t, "csv")

		redeem, err := BuildLegacyErp(defaultScript, emergencyScript, csv)

		// The big-endian bytes [hi, lo] are also a minimal positive
		// script number unless lo has its sign bit set, or lo is zero
		// and hi does not.
		hi, lo := byte(csv>>8), byte(csv)
		unambiguous := lo >= 0x80 || (lo == 0 && hi < 0x80)
		if !unambiguous {
			require.True(t, IsErrorCode(err, ErrInvalidCSVValue), err)
			return
		}
		require.NoError(t, err)

		p, err := Parse(redeem.Program())
		require.NoError(t, err)
		require.Equal(t, NonStandardErpMultiSigTy, p.MultiSigType())
		erp, ok := p.(*ErpParser)
		require.True(t, ok)

		legacy, err := EncodeLegacyCSV(csv)
		require.NoError(t, err)
		require.Equal(t, legacy, erp.CSVBytes())

		got, err := erp.CSVValue()
		require.NoError(t, err)
		require.Equal(t, csv, got)
		require.Equal(t, csv, Describe(p).CSVValue.UnwrapOr(0))
	})
}

// TestParseNeverPanics ensures arbitrary programs either classify or return
// an error.
func TestParseNeverPanics(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		program := rapid.SliceOfN(rapid.Byte(), 0, 300).Draw(t, "program")
		p, err := Parse(program)
		if err != nil {
			return
		}
		Describe(p)
	})
}
