// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package redeemscript classifies, inspects and builds the multisig redeem
scripts that hold federation funds.

# Script Shapes

A standard script is an M-of-N multisig.  Emergency recovery (ERP) scripts
add a second key set that can only spend after a relative lock time enforced
by OP_CHECKSEQUENCEVERIFY, either inlined (the branches share one trailing
OP_CHECKMULTISIG) or as two complete multisig scripts for P2SH.  Any of those
may be prefixed with a 32-byte flyover derivation hash followed by OP_DROP.

# Classification

Parse and ParseChunks accept either a redeem script or a P2SH signature
script whose last push is the redeem script, and return a Parser chosen by a
fixed dispatch order: flyover, standard, inlined ERP, P2SH ERP, and finally
an allow-list of historical scripts.  Scripts matching none of them get a
parser of type NoMultiSigTy.

# Errors

Errors returned by this package are of type redeemscript.Error.  Use
IsErrorCode to check for a specific ErrorCode.  Tokenization failures are
script.Error values.
*/
package redeemscript
