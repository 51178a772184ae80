// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"encoding/binary"
	"fmt"

	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

const (
	// MinCSVValue and MaxCSVValue bound the relative lock time of the
	// emergency branch of an ERP script.
	MinCSVValue = 1
	MaxCSVValue = 65535

	// legacyCSVLen is the width of the deprecated big-endian encoding.
	legacyCSVLen = 2

	// maxCSVNumLen is the longest minimal script number encoding of a
	// value up to MaxCSVValue.
	maxCSVNumLen = 3
)

func checkCSVRange(csv int64) error {
	if csv < MinCSVValue || csv > MaxCSVValue {
		str := fmt.Sprintf("csv value %d is out of range [%d, %d]", csv,
			MinCSVValue, MaxCSVValue)
		return redeemError(ErrInvalidCSVValue, str)
	}
	return nil
}

// EncodeCSV returns the minimal signed little-endian script number encoding
// of the relative lock time.
func EncodeCSV(csv int64) ([]byte, error) {
	if err := checkCSVRange(csv); err != nil {
		return nil, err
	}
	return script.ScriptNum(csv).Bytes(), nil
}

// DecodeCSV decodes the relative lock time held by the passed chunk.  The
// chunk must be OP_1 through OP_16 or a push of a minimally encoded script
// number within range.
func DecodeCSV(c script.Chunk) (int64, error) {
	if c.Opcode >= script.OP_1 && c.Opcode <= script.OP_16 {
		n, err := c.SmallInt()
		if err != nil {
			return 0, err
		}
		return int64(n), nil
	}
	if !c.IsPushData() {
		str := fmt.Sprintf("csv chunk %s is not a data push", c)
		return 0, redeemError(ErrInvalidCSVValue, str)
	}

	num, err := script.MakeScriptNum(c.Data, true, maxCSVNumLen)
	if err != nil {
		str := fmt.Sprintf("csv value %x is not a script number: %v",
			c.Data, err)
		return 0, redeemError(ErrInvalidCSVValue, str)
	}
	if err := checkCSVRange(int64(num)); err != nil {
		return 0, err
	}
	return int64(num), nil
}

// EncodeLegacyCSV returns the deprecated fixed-width unsigned big-endian
// encoding of the relative lock time used by early ERP deployments.
func EncodeLegacyCSV(csv int64) ([]byte, error) {
	if err := checkCSVRange(csv); err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint16(nil, uint16(csv)), nil
}

// checkLegacyCSVUnambiguous returns an error when the legacy encoding of a
// lock time is also a minimal script number.  An inlined ERP script carrying
// such a push classifies as ErpMultiSigTy and its lock time is read as the
// little-endian value, which differs from the one encoded.
//
// The legacy encoding [hi, lo] is unambiguous when lo >= 0x80, or when lo is
// zero and hi < 0x80.
func checkLegacyCSVUnambiguous(csv int64, data []byte) error {
	num, err := DecodeCSV(script.DataChunk(data))
	if err != nil {
		return nil
	}
	str := fmt.Sprintf("legacy csv value %d encodes as %x which also "+
		"reads as the script number %d", csv, data, num)
	return redeemError(ErrInvalidCSVValue, str)
}

// DecodeLegacyCSV decodes the deprecated fixed-width big-endian encoding.
func DecodeLegacyCSV(data []byte) (int64, error) {
	if len(data) != legacyCSVLen {
		str := fmt.Sprintf("legacy csv value %x must be %d bytes", data,
			legacyCSVLen)
		return 0, redeemError(ErrInvalidCSVValue, str)
	}
	csv := int64(binary.BigEndian.Uint16(data))
	if err := checkCSVRange(csv); err != nil {
		return 0, err
	}
	return csv, nil
}
