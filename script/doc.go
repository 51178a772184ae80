// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package script implements the byte-level model of bitcoin scripts used by the
redeem script parsers: opcode constants, a zero-allocation tokenizer, the
immutable Chunk and Script values, script numbers and a canonical
ScriptBuilder.

It does not execute scripts.  Only the structure of a program is modeled: an
ordered list of chunks, each either an opcode or a length-prefixed data push.

# Errors

Errors returned by this package are of type script.Error.  This allows the
caller to programmatically determine the specific error by examining the
ErrorCode field of the type asserted script.Error while still providing rich
error messages with contextual information.  A convenience function named
IsErrorCode is also provided to allow callers to easily check for a specific
error code.  See ErrorCode in the package documentation for a full list.
*/
package script
