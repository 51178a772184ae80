// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of script error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrMalformedPush is returned when a data push opcode tries to push
	// more bytes than are left in the script.
	ErrMalformedPush ErrorCode = iota

	// ErrElementTooBig is returned when a builder is asked to push an
	// element that exceeds MaxScriptElementSize.
	ErrElementTooBig

	// ErrNumberTooBig is returned when a script number is encoded with
	// more bytes than the caller allows.
	ErrNumberTooBig

	// ErrMinimalData is returned when a script number is not minimally
	// encoded.
	ErrMinimalData

	// ErrNotSmallInt is returned when a chunk is decoded as a small
	// integer but is not one of OP_0 or OP_1 through OP_16.
	ErrNotSmallInt

	// numErrorCodes is the maximum error code number used in tests.  This
	// entry MUST be the last entry in the enum.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrMalformedPush: "ErrMalformedPush",
	ErrElementTooBig: "ErrElementTooBig",
	ErrNumberTooBig:  "ErrNumberTooBig",
	ErrMinimalData:   "ErrMinimalData",
	ErrNotSmallInt:   "ErrNotSmallInt",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a script-related error.  It is used to indicate these
// classes of errors:
//  1. Programming errors such as asking for a small integer from a chunk that
//     does not encode one
//  2. Malformed programs that cannot be tokenized
//  3. Script numbers that do not fit the expected encoding
//  4. Data pushes the builder refuses because they exceed engine limits
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

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a script error with
// the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var serr Error
	if errors.As(err, &serr) {
		return serr.ErrorCode == c
	}
	return false
}
