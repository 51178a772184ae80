// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	fn "github.com/lightningnetwork/lnd/fn/v2"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

// Descriptor is a flat summary of a classified redeem script.  Fields that
// do not apply to the script type are None.
type Descriptor struct {
	MultiSigType MultiSigType
	ScriptType   ScriptType

	Threshold        fn.Option[int]
	PubKeys          fn.Option[[][]byte]
	StandardFragment fn.Option[*script.Script]

	EmergencyThreshold fn.Option[int]
	EmergencyPubKeys   fn.Option[[][]byte]
	CSVValue           fn.Option[int64]

	DerivationHash fn.Option[chainhash.Hash]
}

// Describe summarizes the script behind the parser.
func Describe(p Parser) Descriptor {
	d := Descriptor{
		MultiSigType: p.MultiSigType(),
		ScriptType:   p.ScriptType(),
	}

	if threshold, err := p.Threshold(); err == nil {
		d.Threshold = fn.Some(threshold)
	}
	if pubKeys, err := p.PubKeys(); err == nil {
		d.PubKeys = fn.Some(pubKeys)
	}
	if fragment, err := p.ExtractStandardFragment(); err == nil {
		d.StandardFragment = fn.Some(fragment)
	}

	if flyover, ok := p.(*FlyoverParser); ok {
		d.DerivationHash = fn.Some(flyover.DerivationHash())
		p = flyover.Inner()
	}

	if erp, ok := p.(*ErpParser); ok {
		emergency := erp.EmergencyParser()
		if threshold, err := emergency.Threshold(); err == nil {
			d.EmergencyThreshold = fn.Some(threshold)
		}
		pubKeys, _ := emergency.PubKeys()
		d.EmergencyPubKeys = fn.Some(pubKeys)

		if csv, err := erp.CSVValue(); err == nil {
			d.CSVValue = fn.Some(csv)
		} else {
			log.Debugf("Unable to decode csv of %v script: %v",
				erp.MultiSigType(), err)
		}
	}

	return d
}
