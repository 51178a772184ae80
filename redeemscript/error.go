// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of redeem script error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInvalidScript is returned by the factory when neither the script
	// itself nor its last push looks like a multisig redeem script, so no
	// candidate could be extracted for classification.
	ErrInvalidScript ErrorCode = iota

	// ErrNotStandardMultiSig is returned when a builder is given a script
	// that does not have the standard M-of-N multisig structure.
	ErrNotStandardMultiSig

	// ErrInvalidThreshold is returned when the required number of
	// signatures is below one or above the number of keys.
	ErrInvalidThreshold

	// ErrTooManyPubKeys is returned when more keys are provided than can
	// be expressed by a small integer opcode.
	ErrTooManyPubKeys

	// ErrInvalidPubKey is returned when a provided key is not a valid
	// secp256k1 public key.
	ErrInvalidPubKey

	// ErrInvalidCSVValue is returned when a relative lock time is out of
	// range or its serialized form cannot be decoded.
	ErrInvalidCSVValue

	// ErrInvalidDerivationHash is returned when a flyover derivation hash
	// is the all-zero hash.
	ErrInvalidDerivationHash

	// ErrAlreadyFlyover is returned when asked to wrap a script that
	// already carries a flyover prefix.
	ErrAlreadyFlyover

	// ErrUnsupported is returned when a query is invoked on a parser
	// variant that cannot answer it.
	ErrUnsupported

	// ErrKeyNotFound is returned when a public key is not part of the
	// declared key set.
	ErrKeyNotFound

	// ErrSignatureNotFound is returned when a signature does not verify
	// against any of the declared keys.
	ErrSignatureNotFound

	// ErrInputIndex is returned when a signature hash is requested for an
	// input the transaction does not have.
	ErrInputIndex

	// numErrorCodes is the maximum error code number used in tests.  This
	// entry MUST be the last entry in the enum.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidScript:         "ErrInvalidScript",
	ErrNotStandardMultiSig:   "ErrNotStandardMultiSig",
	ErrInvalidThreshold:      "ErrInvalidThreshold",
	ErrTooManyPubKeys:        "ErrTooManyPubKeys",
	ErrInvalidPubKey:         "ErrInvalidPubKey",
	ErrInvalidCSVValue:       "ErrInvalidCSVValue",
	ErrInvalidDerivationHash: "ErrInvalidDerivationHash",
	ErrAlreadyFlyover:        "ErrAlreadyFlyover",
	ErrUnsupported:           "ErrUnsupported",
	ErrKeyNotFound:           "ErrKeyNotFound",
	ErrSignatureNotFound:     "ErrSignatureNotFound",
	ErrInputIndex:            "ErrInputIndex",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a redeem script related error.  Classification never
// produces one: a script that matches no known shape is reported through the
// NoMultiSigTy tag instead.  Errors are returned for
//  1. Builder inputs that violate the structure the builder targets
//  2. Queries a parser variant does not support
//  3. Keys and signatures that are not part of the declared key set
//
// The caller can use type assertions on the returned errors to access the
// ErrorCode field to ascertain the specific reason for the error.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// redeemError creates an Error given a set of arguments.
func redeemError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a redeem script
// error with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var rerr Error
	if errors.As(err, &rerr) {
		return rerr.ErrorCode == c
	}
	return false
}
