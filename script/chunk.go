// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
)

// Chunk is a single parsed token of a script program: either an opcode without
// operands or a data push together with the data it pushes.
//
// A push opcode (OP_0 through OP_PUSHDATA4) always carries non-nil Data whose
// length equals the declared push length, while every other opcode carries nil
// Data.  Offset is the position of the opcode in the program the chunk was
// parsed from.
type Chunk struct {
	Opcode byte
	Data   []byte
	Offset int32
}

// OpChunk returns a chunk for the passed opcode without operands.
func OpChunk(op byte) Chunk {
	return Chunk{Opcode: op}
}

// DataChunk returns a chunk that pushes the passed data using the smallest
// push opcode able to express its length.  Unlike ScriptBuilder.AddData, data
// that happens to be a small integer is not converted to OP_N.
func DataChunk(data []byte) Chunk {
	if data == nil {
		data = []byte{}
	}

	dataLen := len(data)
	var op byte
	switch {
	case dataLen < OP_PUSHDATA1:
		op = byte(dataLen)
	case dataLen <= 0xff:
		op = OP_PUSHDATA1
	case dataLen <= 0xffff:
		op = OP_PUSHDATA2
	default:
		op = OP_PUSHDATA4
	}
	return Chunk{Opcode: op, Data: data}
}

// IsOpcode returns whether the chunk is an opcode rather than a data push.
// Note that OP_1NEGATE and OP_1 through OP_16 are opcodes.
func (c Chunk) IsOpcode() bool {
	return c.Opcode > OP_PUSHDATA4
}

// IsPushData returns whether the chunk pushes data, including the empty push
// OP_0.
func (c Chunk) IsPushData() bool {
	return c.Opcode <= OP_PUSHDATA4
}

// EqualsOpcode returns whether the chunk is the passed opcode.
func (c Chunk) EqualsOpcode(op byte) bool {
	return c.Opcode == op
}

// IsSmallInt returns whether the chunk encodes a small integer, which is an
// OP_0, or OP_1 through OP_16.
func (c Chunk) IsSmallInt() bool {
	return isSmallInt(c.Opcode)
}

// SmallInt decodes the small integer encoded by the chunk.  ErrNotSmallInt is
// returned when the chunk is not OP_0 or OP_1 through OP_16.
func (c Chunk) SmallInt() (int, error) {
	if !isSmallInt(c.Opcode) {
		str := fmt.Sprintf("opcode %s is not a small integer",
			OpcodeName(c.Opcode))
		return 0, scriptError(ErrNotSmallInt, str)
	}
	return asSmallInt(c.Opcode), nil
}

// IsCheckMultiSig returns whether the chunk is OP_CHECKMULTISIG or
// OP_CHECKMULTISIGVERIFY.
func (c Chunk) IsCheckMultiSig() bool {
	return c.Opcode == OP_CHECKMULTISIG || c.Opcode == OP_CHECKMULTISIGVERIFY
}

// Size returns the number of bytes the chunk occupies once serialized.
func (c Chunk) Size() int {
	switch {
	case c.Opcode < OP_PUSHDATA1:
		return 1 + len(c.Data)
	case c.Opcode == OP_PUSHDATA1:
		return 2 + len(c.Data)
	case c.Opcode == OP_PUSHDATA2:
		return 3 + len(c.Data)
	case c.Opcode == OP_PUSHDATA4:
		return 5 + len(c.Data)
	}
	return 1
}

// AppendBytes appends the serialized chunk to dst and returns the extended
// buffer.  The push opcode the chunk was parsed with is preserved, so
// non-canonical pushes serialize back to the exact bytes they came from.
func (c Chunk) AppendBytes(dst []byte) []byte {
	dst = append(dst, c.Opcode)
	switch {
	case c.Opcode == OP_PUSHDATA1:
		dst = append(dst, byte(len(c.Data)))
	case c.Opcode == OP_PUSHDATA2:
		dst = binary.LittleEndian.AppendUint16(dst, uint16(len(c.Data)))
	case c.Opcode == OP_PUSHDATA4:
		dst = binary.LittleEndian.AppendUint32(dst, uint32(len(c.Data)))
	case c.Opcode > OP_PUSHDATA4:
		return dst
	}
	return append(dst, c.Data...)
}

// Bytes returns the serialized chunk.
func (c Chunk) Bytes() []byte {
	return c.AppendBytes(make([]byte, 0, c.Size()))
}

// String returns the one-line disassembly of the chunk.  Data pushes are
// printed as hex, small integers as decimal numbers and everything else by
// opcode name.
func (c Chunk) String() string {
	switch {
	case c.Opcode == OP_0:
		return "0"
	case c.Opcode == OP_1NEGATE:
		return "-1"
	case c.Opcode >= OP_1 && c.Opcode <= OP_16:
		return strconv.Itoa(asSmallInt(c.Opcode))
	case c.IsPushData():
		return hex.EncodeToString(c.Data)
	}
	return OpcodeName(c.Opcode)
}
