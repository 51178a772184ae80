// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"strings"
)

const (
	// MaxScriptSize is the maximum allowed length of a raw script.
	MaxScriptSize = 10000

	// MaxScriptElementSize is the maximum number of bytes a single push may
	// place on the stack.
	MaxScriptElementSize = 520
)

// Script is an immutable, ordered sequence of chunks together with the program
// bytes it serializes to.  The program is a pure function of the chunks.
//
// A Script is safe for concurrent use; none of its methods modify it.
type Script struct {
	chunks  []Chunk
	program []byte
}

// ParseScript tokenizes the passed program into a Script.  The program is
// copied, so the caller is free to reuse it.  An ErrMalformedPush error is
// returned when a push declares more bytes than remain in the program.
func ParseScript(program []byte) (*Script, error) {
	prog := make([]byte, len(program))
	copy(prog, program)

	chunks := make([]Chunk, 0, len(prog)/8+1)
	tokenizer := MakeScriptTokenizer(prog)
	for tokenizer.Next() {
		chunks = append(chunks, Chunk{
			Opcode: tokenizer.Opcode(),
			Data:   tokenizer.Data(),
			Offset: tokenizer.ChunkOffset(),
		})
	}
	if err := tokenizer.Err(); err != nil {
		return nil, err
	}

	return &Script{chunks: chunks, program: prog}, nil
}

// NewScript materializes a Script from the passed chunks.  The chunk data is
// copied and the offsets are recomputed from the serialized program.
func NewScript(chunks []Chunk) *Script {
	size := 0
	for _, c := range chunks {
		size += c.Size()
	}

	prog := make([]byte, 0, size)
	owned := make([]Chunk, len(chunks))
	for i, c := range chunks {
		offset := len(prog)
		prog = c.AppendBytes(prog)

		owned[i] = Chunk{Opcode: c.Opcode, Offset: int32(offset)}
		if c.IsPushData() {
			start := len(prog) - len(c.Data)
			owned[i].Data = prog[start:len(prog):len(prog)]
		}
	}

	return &Script{chunks: owned, program: prog}
}

// SerializeChunks returns the program bytes for the passed chunk sequence.
func SerializeChunks(chunks []Chunk) []byte {
	var prog []byte
	for _, c := range chunks {
		prog = c.AppendBytes(prog)
	}
	return prog
}

// Chunks returns a copy of the chunk sequence.  The data of each chunk is a
// view into the script and must not be modified.
func (s *Script) Chunks() []Chunk {
	chunks := make([]Chunk, len(s.chunks))
	copy(chunks, s.chunks)
	return chunks
}

// Chunk returns the chunk at the passed index.
func (s *Script) Chunk(i int) Chunk {
	return s.chunks[i]
}

// Len returns the number of chunks in the script.
func (s *Script) Len() int {
	return len(s.chunks)
}

// Program returns a copy of the serialized script.
func (s *Script) Program() []byte {
	prog := make([]byte, len(s.program))
	copy(prog, s.program)
	return prog
}

// Equal returns whether both scripts serialize to the same program.
func (s *Script) Equal(other *Script) bool {
	if s == nil || other == nil {
		return s == other
	}
	return bytes.Equal(s.program, other.program)
}

// String returns the one-line disassembly of the script.
func (s *Script) String() string {
	return disasmChunks(s.chunks)
}

// DisasmString formats a disassembled script for one line printing.  When the
// script fails to parse, the returned string will contain the disassembled
// script up to the point the failure occurred along with the string '[error]'
// appended.  In addition, the reason the script failed to parse is returned
// if the caller wants more information about the failure.
func DisasmString(program []byte) (string, error) {
	var chunks []Chunk
	tokenizer := MakeScriptTokenizer(program)
	for tokenizer.Next() {
		chunks = append(chunks, Chunk{
			Opcode: tokenizer.Opcode(),
			Data:   tokenizer.Data(),
		})
	}

	disbuf := disasmChunks(chunks)
	if err := tokenizer.Err(); err != nil {
		if disbuf != "" {
			disbuf += " "
		}
		return disbuf + "[error]", err
	}
	return disbuf, nil
}

func disasmChunks(chunks []Chunk) string {
	var sb strings.Builder
	for i, c := range chunks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
