// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"encoding/binary"
	"fmt"
)

// ScriptTokenizer provides a facility for easily and efficiently tokenizing
// redeem scripts without creating allocations.  Each successive chunk is
// parsed with the Next function, which returns false when iteration is
// complete, either due to successfully tokenizing the entire script or
// encountering a parse error.  In the case of failure, the Err function may be
// used to obtain the specific parse error.
//
// Upon successfully parsing a chunk, the opcode and data associated with it may
// be obtained via the Opcode and Data functions, respectively.  Data is a view
// into the tokenized program and must not be modified.
//
// The ByteIndex function may be used to obtain the tokenizer's current offset
// into the raw script.
type ScriptTokenizer struct {
	script []byte
	offset int32
	start  int32
	op     byte
	data   []byte
	err    error
}

// Done returns true when either all chunks have been exhausted or a parse
// failure was encountered and therefore the state has an associated error.
func (t *ScriptTokenizer) Done() bool {
	return t.err != nil || t.offset >= int32(len(t.script))
}

// Next attempts to parse the next chunk and returns whether or not it was
// successful.  It will not be successful if invoked when already at the end of
// the script, a parse failure is encountered, or an associated error already
// exists due to a previous parse failure.
//
// In the case of a true return, the parsed opcode and data can be obtained with
// the associated functions and the offset into the script will either point to
// the next chunk or the end of the script if the final chunk was parsed.
//
// In the case of a false return, the parsed opcode and data will be the last
// successfully parsed values (if any) and the offset into the script will
// either point to the failing chunk or the end of the script if the function
// was invoked when already at the end of the script.
func (t *ScriptTokenizer) Next() bool {
	if t.Done() {
		return false
	}

	op := t.script[t.offset]
	switch {
	// Data pushes of specific lengths -- OP_0 and OP_DATA_[1-75].  The
	// opcode itself is the number of bytes to push, so OP_0 pushes an
	// empty element.
	case op < OP_PUSHDATA1:
		dataLen := int32(op)
		script := t.script[t.offset+1:]
		if int32(len(script)) < dataLen {
			str := fmt.Sprintf("opcode %s at offset %d requires %d "+
				"bytes, but script only has %d remaining",
				OpcodeName(op), t.offset, dataLen, len(script))
			t.err = scriptError(ErrMalformedPush, str)
			return false
		}

		t.start = t.offset
		t.offset += 1 + dataLen
		t.op = op
		t.data = script[:dataLen:dataLen]
		return true

	// Data pushes with parsed lengths -- OP_PUSHDATA{1,2,4}.
	case op <= OP_PUSHDATA4:
		var lenBytes int32
		switch op {
		case OP_PUSHDATA1:
			lenBytes = 1
		case OP_PUSHDATA2:
			lenBytes = 2
		default:
			lenBytes = 4
		}

		script := t.script[t.offset+1:]
		if int32(len(script)) < lenBytes {
			str := fmt.Sprintf("opcode %s at offset %d requires %d "+
				"length bytes, but script only has %d remaining",
				OpcodeName(op), t.offset, lenBytes, len(script))
			t.err = scriptError(ErrMalformedPush, str)
			return false
		}

		// Next lenBytes bytes are little endian length of data.
		var dataLen int64
		switch lenBytes {
		case 1:
			dataLen = int64(script[0])
		case 2:
			dataLen = int64(binary.LittleEndian.Uint16(script[:2]))
		default:
			dataLen = int64(binary.LittleEndian.Uint32(script[:4]))
		}

		// Move to the beginning of the data.
		script = script[lenBytes:]

		// Disallow entries that do not fit script.
		if dataLen > int64(len(script)) {
			str := fmt.Sprintf("opcode %s at offset %d pushes %d "+
				"bytes, but script only has %d remaining",
				OpcodeName(op), t.offset, dataLen, len(script))
			t.err = scriptError(ErrMalformedPush, str)
			return false
		}

		t.start = t.offset
		t.offset += 1 + lenBytes + int32(dataLen)
		t.op = op
		t.data = script[:dataLen:dataLen]
		return true
	}

	// No additional data.  Note that some of the opcodes, notably
	// OP_1NEGATE and OP_[1-16] represent the data themselves.
	t.start = t.offset
	t.offset++
	t.op = op
	t.data = nil
	return true
}

// Script returns the full script associated with the tokenizer.
func (t *ScriptTokenizer) Script() []byte {
	return t.script
}

// ByteIndex returns the current offset into the full script that will be parsed
// next and therefore also implies everything before it has already been parsed.
func (t *ScriptTokenizer) ByteIndex() int32 {
	return t.offset
}

// ChunkOffset returns the offset into the full script at which the most
// recently parsed chunk starts.
func (t *ScriptTokenizer) ChunkOffset() int32 {
	return t.start
}

// Opcode returns the current opcode associated with the tokenizer.
func (t *ScriptTokenizer) Opcode() byte {
	return t.op
}

// Data returns the data associated with the most recently successfully parsed
// opcode.
func (t *ScriptTokenizer) Data() []byte {
	return t.data
}

// Err returns any errors currently associated with the tokenizer.  This will
// only be non-nil in the case a parsing error was encountered.
func (t *ScriptTokenizer) Err() error {
	return t.err
}

// MakeScriptTokenizer returns a new instance of a script tokenizer.
//
// See the docs for ScriptTokenizer for more details.
func MakeScriptTokenizer(script []byte) ScriptTokenizer {
	return ScriptTokenizer{script: script}
}
