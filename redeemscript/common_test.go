// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"bytes"
	"encoding/hex"
	"sort"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
	"github.com/stretchr/testify/require"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  It will only (and must only) be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// testPrivKey returns a deterministic private key derived from the seed.
func testPrivKey(seed byte) *btcec.PrivateKey {
	var secret [32]byte
	secret[31] = seed
	secret[0] = 0x01
	privKey, _ := btcec.PrivKeyFromBytes(secret[:])
	return privKey
}

// testKeySet returns n deterministic private keys starting at seed together
// with their compressed public keys, ordered by public key.
func testKeySet(seed byte, n int) ([]*btcec.PrivateKey, [][]byte) {
	privKeys := make([]*btcec.PrivateKey, n)
	for i := range privKeys {
		privKeys[i] = testPrivKey(seed + byte(i))
	}
	sort.Slice(privKeys, func(i, j int) bool {
		return bytes.Compare(
			privKeys[i].PubKey().SerializeCompressed(),
			privKeys[j].PubKey().SerializeCompressed(),
		) < 0
	})

	pubKeys := make([][]byte, n)
	for i, privKey := range privKeys {
		pubKeys[i] = privKey.PubKey().SerializeCompressed()
	}
	return privKeys, pubKeys
}

// testHash returns a non-zero derivation hash.
func testHash(b byte) chainhash.Hash {
	var h chainhash.Hash
	for i := range h {
		h[i] = b + byte(i)
	}
	return h
}

func mustStandard(t testing.TB, threshold int, pubKeys [][]byte) *script.Script {
	t.Helper()

	s, err := BuildStandard(threshold, pubKeys)
	require.NoError(t, err)
	return s
}

func mustParse(t testing.TB, s *script.Script) Parser {
	t.Helper()

	p, err := ParseScript(s)
	require.NoError(t, err)
	return p
}

// testErpScripts returns the default and emergency scripts used across the
// ERP tests: a 2-of-3 default set and a 3-of-5 emergency set.
func testErpScripts(t testing.TB) (*script.Script, *script.Script) {
	t.Helper()

	_, defaultKeys := testKeySet(1, 3)
	_, emergencyKeys := testKeySet(4, 5)
	return mustStandard(t, 2, defaultKeys), mustStandard(t, 3, emergencyKeys)
}

// chunksOf tokenizes a hard-coded program.
func chunksOf(t testing.TB, program []byte) []script.Chunk {
	t.Helper()

	s, err := script.ParseScript(program)
	require.NoError(t, err)
	return s.Chunks()
}
