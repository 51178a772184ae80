// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/rsksmart/bitcoinj-thin-sub000/redeemscript"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

// decodePubKeys decodes hex encoded public keys.
func decodePubKeys(hexKeys []string) ([][]byte, error) {
	pubKeys := make([][]byte, len(hexKeys))
	for i, hexKey := range hexKeys {
		pubKey, err := hex.DecodeString(hexKey)
		if err != nil {
			return nil, fmt.Errorf("public key #%d: %w", i, err)
		}
		pubKeys[i] = pubKey
	}
	return pubKeys, nil
}

// buildStandardScript builds a standard multisig out of a threshold and hex
// encoded keys.
func buildStandardScript(threshold int, hexKeys []string) (*script.Script, error) {
	pubKeys, err := decodePubKeys(hexKeys)
	if err != nil {
		return nil, err
	}
	return redeemscript.BuildStandard(threshold, pubKeys)
}

// buildScript builds the redeem script requested by the configuration.
func buildScript(cfg *config) (*script.Script, error) {
	defaultScript, err := buildStandardScript(cfg.Threshold, cfg.PubKeys)
	if err != nil {
		return nil, fmt.Errorf("default key set: %w", err)
	}

	var redeem *script.Script
	switch cfg.Build {
	case buildStandard:
		redeem = defaultScript

	default:
		emergencyScript, err := buildStandardScript(
			cfg.EmergencyThreshold, cfg.EmergencyPubKeys,
		)
		if err != nil {
			return nil, fmt.Errorf("emergency key set: %w", err)
		}

		switch cfg.Build {
		case buildErp:
			redeem, err = redeemscript.BuildErp(defaultScript,
				emergencyScript, cfg.CSV)
		case buildLegacyErp:
			redeem, err = redeemscript.BuildLegacyErp(defaultScript,
				emergencyScript, cfg.CSV)
		case buildP2shErp:
			redeem, err = redeemscript.BuildP2shErp(defaultScript,
				emergencyScript, cfg.CSV)
		}
		if err != nil {
			return nil, err
		}
	}

	if cfg.derivationHash == nil {
		return redeem, nil
	}
	return redeemscript.BuildFlyover(redeem, *cfg.derivationHash)
}
