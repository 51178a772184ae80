// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
	"github.com/stretchr/testify/require"
)

// TestBuildStandardErrors ensures invalid thresholds, key counts and keys are
// rejected with the expected error codes.
func TestBuildStandardErrors(t *testing.T) {
	t.Parallel()

	_, pubKeys := testKeySet(1, 17)
	badKey := append([]byte(nil), pubKeys[0]...)
	badKey[0] = 0x05

	tests := []struct {
		name      string
		threshold int
		pubKeys   [][]byte
		err       ErrorCode
	}{
		{"no keys", 1, nil, ErrInvalidThreshold},
		{"zero threshold", 0, pubKeys[:3], ErrInvalidThreshold},
		{"negative threshold", -1, pubKeys[:3], ErrInvalidThreshold},
		{"threshold above key count", 4, pubKeys[:3], ErrInvalidThreshold},
		{"too many keys", 2, pubKeys, ErrTooManyPubKeys},
		{"invalid key", 1, [][]byte{pubKeys[0], badKey}, ErrInvalidPubKey},
		{"truncated key", 1, [][]byte{pubKeys[0][:20]}, ErrInvalidPubKey},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		_, err := BuildStandard(test.threshold, test.pubKeys)
		require.Truef(t, IsErrorCode(err, test.err), "%s: got %v",
			test.name, err)
	}

	// Sixteen keys is the largest supported set.
	s, err := BuildStandard(16, pubKeys[:16])
	require.NoError(t, err)
	require.Equal(t, StandardMultiSigTy, mustParse(t, s).MultiSigType())
}

// TestBuildFlyoverErrors ensures the zero hash, already wrapped scripts and
// non redeem scripts are rejected.
func TestBuildFlyoverErrors(t *testing.T) {
	t.Parallel()

	_, pubKeys := testKeySet(1, 3)
	standard := mustStandard(t, 2, pubKeys)

	_, err := BuildFlyover(standard, chainhash.Hash{})
	require.True(t, IsErrorCode(err, ErrInvalidDerivationHash), err)

	flyover, err := BuildFlyover(standard, testHash(1))
	require.NoError(t, err)
	_, err = BuildFlyover(flyover, testHash(2))
	require.True(t, IsErrorCode(err, ErrAlreadyFlyover), err)

	p2pkh := script.NewScript([]script.Chunk{
		script.OpChunk(script.OP_DUP),
		script.OpChunk(script.OP_HASH160),
		script.DataChunk(make([]byte, 20)),
		script.OpChunk(script.OP_EQUALVERIFY),
		script.OpChunk(script.OP_CHECKSIG),
	})
	_, err = BuildFlyover(p2pkh, testHash(1))
	require.True(t, IsErrorCode(err, ErrInvalidScript), err)

	// Redeem-like scripts without a flyover form are rejected too.
	unknown := script.NewScript(multisigChunks(script.OP_4, script.OP_3,
		pubKeys, script.OP_CHECKMULTISIG))
	require.Equal(t, NoMultiSigTy, mustParse(t, unknown).MultiSigType())
	_, err = BuildFlyover(unknown, testHash(1))
	require.True(t, IsErrorCode(err, ErrInvalidScript), err)

	hardcoded := script.NewScript(chunksOf(t,
		hexToBytes(legacyEmergencyScriptHex)))
	_, err = BuildFlyover(hardcoded, testHash(1))
	require.True(t, IsErrorCode(err, ErrInvalidScript), err)

	// Every wrapped script classifies as a flyover variant.
	defaultScript, emergencyScript := testErpScripts(t)
	erp, err := BuildErp(defaultScript, emergencyScript, 500)
	require.NoError(t, err)
	for _, inner := range []*script.Script{standard, erp} {
		wrapped, err := BuildFlyover(inner, testHash(3))
		require.NoError(t, err)
		require.True(t, mustParse(t, wrapped).MultiSigType().IsFlyover())
	}
}

// TestBuildErpErrors ensures every ERP builder validates both branches and
// the relative lock time.
func TestBuildErpErrors(t *testing.T) {
	t.Parallel()

	defaultScript, emergencyScript := testErpScripts(t)
	notStandard, err := BuildP2shErp(defaultScript, emergencyScript, 10)
	require.NoError(t, err)

	builders := map[string]func(d, e *script.Script, csv int64) (*script.Script, error){
		"erp":        BuildErp,
		"legacy erp": BuildLegacyErp,
		"p2sh erp":   BuildP2shErp,
		"flyover erp": func(d, e *script.Script, csv int64) (*script.Script, error) {
			return BuildFlyoverErp(d, e, csv, testHash(1))
		},
		"flyover p2sh erp": func(d, e *script.Script, csv int64) (*script.Script, error) {
			return BuildFlyoverP2shErp(d, e, csv, testHash(1))
		},
	}

	for name, build := range builders {
		for _, csv := range []int64{-1, 0, MaxCSVValue + 1, 1 << 32} {
			_, err := build(defaultScript, emergencyScript, csv)
			require.Truef(t, IsErrorCode(err, ErrInvalidCSVValue),
				"%s csv %d: got %v", name, csv, err)
		}
		// The legacy encoding of the smallest lock times is ambiguous,
		// so its lower bound is the first unambiguous value.
		valid := []int64{MinCSVValue, MaxCSVValue}
		if name == "legacy erp" {
			valid = []int64{128, MaxCSVValue}
		}
		for _, csv := range valid {
			_, err := build(defaultScript, emergencyScript, csv)
			require.NoErrorf(t, err, "%s csv %d", name, csv)
		}

		_, err := build(notStandard, emergencyScript, 10)
		require.Truef(t, IsErrorCode(err, ErrNotStandardMultiSig),
			"%s default: got %v", name, err)
		_, err = build(defaultScript, notStandard, 10)
		require.Truef(t, IsErrorCode(err, ErrNotStandardMultiSig),
			"%s emergency: got %v", name, err)
	}

	_, err = BuildFlyoverErp(defaultScript, emergencyScript, 10,
		chainhash.Hash{})
	require.True(t, IsErrorCode(err, ErrInvalidDerivationHash), err)
}

// TestBuildRoundTrip ensures every builder produces a script that classifies
// as the type it targets and whose standard fragment is the default input.
func TestBuildRoundTrip(t *testing.T) {
	t.Parallel()

	defaultScript, emergencyScript := testErpScripts(t)
	hash := testHash(42)

	tests := []struct {
		name    string
		build   func() (*script.Script, error)
		want    MultiSigType
		wantCSV int64
	}{{
		name: "erp",
		build: func() (*script.Script, error) {
			return BuildErp(defaultScript, emergencyScript, 500)
		},
		want:    ErpMultiSigTy,
		wantCSV: 500,
	}, {
		name: "erp small integer csv",
		build: func() (*script.Script, error) {
			return BuildErp(defaultScript, emergencyScript, 16)
		},
		want:    ErpMultiSigTy,
		wantCSV: 16,
	}, {
		name: "erp max csv",
		build: func() (*script.Script, error) {
			return BuildErp(defaultScript, emergencyScript, MaxCSVValue)
		},
		want:    ErpMultiSigTy,
		wantCSV: MaxCSVValue,
	}, {
		name: "legacy erp",
		build: func() (*script.Script, error) {
			return BuildLegacyErp(defaultScript, emergencyScript, 500)
		},
		want:    NonStandardErpMultiSigTy,
		wantCSV: 500,
	}, {
		name: "legacy erp max csv",
		build: func() (*script.Script, error) {
			return BuildLegacyErp(defaultScript, emergencyScript,
				MaxCSVValue)
		},
		want:    NonStandardErpMultiSigTy,
		wantCSV: MaxCSVValue,
	}, {
		name: "p2sh erp",
		build: func() (*script.Script, error) {
			return BuildP2shErp(defaultScript, emergencyScript, 52560)
		},
		want:    P2shErpMultiSigTy,
		wantCSV: 52560,
	}, {
		name: "flyover erp",
		build: func() (*script.Script, error) {
			return BuildFlyoverErp(defaultScript, emergencyScript,
				500, hash)
		},
		want:    FlyoverErpMultiSigTy,
		wantCSV: 500,
	}, {
		name: "flyover p2sh erp",
		build: func() (*script.Script, error) {
			return BuildFlyoverP2shErp(defaultScript,
				emergencyScript, 500, hash)
		},
		want:    FlyoverP2shErpMultiSigTy,
		wantCSV: 500,
	}, {
		name: "flyover legacy erp",
		build: func() (*script.Script, error) {
			legacy, err := BuildLegacyErp(defaultScript,
				emergencyScript, 500)
			if err != nil {
				return nil, err
			}
			return BuildFlyover(legacy, hash)
		},
		want:    FlyoverErpMultiSigTy,
		wantCSV: 500,
	}}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		redeem, err := test.build()
		require.NoErrorf(t, err, test.name)

		p := mustParse(t, redeem)
		require.Equalf(t, test.want, p.MultiSigType(), "%s: %v",
			test.name, redeem)
		require.Truef(t, p.HasEmergencyRecoveryFormat(), test.name)
		require.Truef(t, p.MultiSigType().IsErp(), test.name)

		fragment, err := p.ExtractStandardFragment()
		require.NoErrorf(t, err, test.name)
		require.Truef(t, fragment.Equal(defaultScript), "%s: got %v",
			test.name, fragment)

		if flyover, ok := p.(*FlyoverParser); ok {
			require.Equalf(t, hash, flyover.DerivationHash(), test.name)
			p = flyover.Inner()
		}
		erp, ok := p.(*ErpParser)
		require.Truef(t, ok, test.name)
		require.Truef(t, erp.EmergencyFragment().Equal(emergencyScript),
			test.name)

		csv, err := erp.CSVValue()
		require.NoErrorf(t, err, test.name)
		require.Equalf(t, test.wantCSV, csv, test.name)
	}
}

// TestErpVariantsDistinct ensures the inlined and P2SH ERP layouts never
// classify as each other.
func TestErpVariantsDistinct(t *testing.T) {
	t.Parallel()

	defaultScript, emergencyScript := testErpScripts(t)

	inlined, err := BuildErp(defaultScript, emergencyScript, 500)
	require.NoError(t, err)
	legacy, err := BuildLegacyErp(defaultScript, emergencyScript, 500)
	require.NoError(t, err)
	p2sh, err := BuildP2shErp(defaultScript, emergencyScript, 500)
	require.NoError(t, err)

	for _, s := range []*script.Script{inlined, legacy} {
		require.True(t, HasNonStandardErpStructure(s.Chunks()))
		require.False(t, HasP2shErpStructure(s.Chunks()))
		require.NotEqual(t, P2shErpMultiSigTy, mustParse(t, s).MultiSigType())
	}
	require.True(t, HasP2shErpStructure(p2sh.Chunks()))
	require.False(t, HasNonStandardErpStructure(p2sh.Chunks()))

	// The encodings differ even though the value is the same.
	require.False(t, inlined.Equal(legacy))
}

// TestBuildLegacyErpEncoding ensures the deprecated builder pushes the lock
// time as two big-endian bytes.
func TestBuildLegacyErpEncoding(t *testing.T) {
	t.Parallel()

	defaultScript, emergencyScript := testErpScripts(t)
	legacy, err := BuildLegacyErp(defaultScript, emergencyScript, 500)
	require.NoError(t, err)

	erp, ok := mustParse(t, legacy).(*ErpParser)
	require.True(t, ok)
	require.Equal(t, []byte{0x01, 0xf4}, erp.CSVBytes())
}

// TestBuildLegacyErpCSVRange ensures the deprecated builder only accepts lock
// times whose two big-endian bytes cannot also be read as a minimal script
// number, and that every accepted value reads back unchanged.
func TestBuildLegacyErpCSVRange(t *testing.T) {
	t.Parallel()

	defaultScript, emergencyScript := testErpScripts(t)

	tests := []struct {
		csv   int64
		valid bool
	}{
		{1, false},     // 0x0001
		{5, false},     // 0x0005
		{100, false},   // 0x0064
		{127, false},   // 0x007f
		{128, true},    // 0x0080
		{200, true},    // 0x00c8
		{255, true},    // 0x00ff
		{256, true},    // 0x0100
		{257, false},   // 0x0101
		{500, true},    // 0x01f4
		{32512, true},  // 0x7f00
		{32767, true},  // 0x7fff
		{32768, false}, // 0x8000
		{33024, false}, // 0x8100
		{52560, false}, // 0xcd50
		{65407, false}, // 0xff7f
		{65408, true},  // 0xff80
		{65535, true},  // 0xffff
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		redeem, err := BuildLegacyErp(defaultScript, emergencyScript,
			test.csv)
		if !test.valid {
			require.Truef(t, IsErrorCode(err, ErrInvalidCSVValue),
				"csv %d: got %v", test.csv, err)
			require.Nilf(t, redeem, "csv %d", test.csv)

			// The same value is fine with the minimal encoding.
			_, err = BuildErp(defaultScript, emergencyScript,
				test.csv)
			require.NoErrorf(t, err, "csv %d", test.csv)
			continue
		}
		require.NoErrorf(t, err, "csv %d", test.csv)

		p := mustParse(t, redeem)
		require.Equalf(t, NonStandardErpMultiSigTy, p.MultiSigType(),
			"csv %d", test.csv)
		csv, err := p.(*ErpParser).CSVValue()
		require.NoErrorf(t, err, "csv %d", test.csv)
		require.Equalf(t, test.csv, csv, "csv %d", test.csv)
	}
}
