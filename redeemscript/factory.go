// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redeemscript

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rsksmart/bitcoinj-thin-sub000/script"
)

// classifier pairs a structural predicate with the constructor of the parser
// for the chunks it matches.
type classifier struct {
	name  string
	match func([]script.Chunk) bool
	parse func(ScriptType, []script.Chunk) Parser
}

// classifiers is the ordered dispatch table consulted by classify.  The first
// matching entry wins.  It is populated in init to break the initialization
// cycle through parseFlyover, and never modified afterwards.
var classifiers []classifier

func init() {
	classifiers = []classifier{
		{"flyover", HasFlyoverStructure, parseFlyover},
		{"standard", HasStandardStructure, parseStandard},
		{"inlined erp", HasNonStandardErpStructure, parseInlinedErp},
		{"p2sh erp", HasP2shErpStructure, parseP2shErp},
		{"hardcoded legacy", isHardcodedLegacy, parseHardcoded},
	}
}

// Parse tokenizes the program and classifies it.  See ParseChunks.
func Parse(program []byte) (Parser, error) {
	s, err := script.ParseScript(program)
	if err != nil {
		return nil, err
	}
	return parseChunks(s.Chunks())
}

// ParseScript classifies an already tokenized script.  See ParseChunks.
func ParseScript(s *script.Script) (Parser, error) {
	return parseChunks(s.Chunks())
}

// ParseChunks returns the parser for the redeem script held by the chunks.
// The chunks may be the redeem script itself, or a P2SH signature script
// whose last push is the redeem script.
//
// Scripts that match no known shape produce a parser of type NoMultiSigTy
// rather than an error.  An error is only returned when the embedded redeem
// script fails to tokenize, or when the chunks are neither redeem-like nor
// end with a push that looks like one.
//
// The returned parser keeps its own copy of the chunks, so the caller may
// reuse or modify the passed slice afterwards.
func ParseChunks(chunks []script.Chunk) (Parser, error) {
	return parseChunks(script.NewScript(chunks).Chunks())
}

// parseChunks is ParseChunks for chunks the caller no longer modifies.
func parseChunks(chunks []script.Chunk) (Parser, error) {
	if len(chunks) < minRedeemChunks {
		log.Tracef("Script with %d chunks is too short to be a "+
			"redeem script", len(chunks))
		return &NoneParser{scriptType: UndefinedScriptTy}, nil
	}

	redeemChunks, scriptType, err := extractRedeemChunks(chunks)
	if err != nil {
		return nil, err
	}
	return classify(scriptType, redeemChunks), nil
}

// isRedeemTerminator returns whether a program ending in the passed byte may
// be a redeem script.
func isRedeemTerminator(op byte) bool {
	return op == script.OP_CHECKMULTISIG ||
		op == script.OP_CHECKMULTISIGVERIFY || op == script.OP_ENDIF
}

// extractRedeemChunks returns the chunks of the redeem script and where they
// were found.
func extractRedeemChunks(chunks []script.Chunk) ([]script.Chunk, ScriptType, error) {
	if IsRedeemLike(chunks) {
		return chunks, RedeemScriptTy, nil
	}

	last := chunks[len(chunks)-1]
	if last.IsPushData() && len(last.Data) > 0 &&
		isRedeemTerminator(last.Data[len(last.Data)-1]) {

		embedded, err := script.ParseScript(last.Data)
		if err != nil {
			return nil, UndefinedScriptTy, err
		}
		return embedded.Chunks(), P2SHScriptTy, nil
	}

	str := fmt.Sprintf("script %s is neither a redeem script nor ends "+
		"with one", script.NewScript(chunks))
	return nil, UndefinedScriptTy, redeemError(ErrInvalidScript, str)
}

// classify walks the dispatch table over the redeem script chunks.
func classify(st ScriptType, chunks []script.Chunk) Parser {
	if len(chunks) < minRedeemChunks {
		log.Tracef("Redeem script with %d chunks is too short",
			len(chunks))
		return &NoneParser{scriptType: st}
	}

	for _, c := range classifiers {
		if !c.match(chunks) {
			continue
		}
		p := c.parse(st, chunks)
		log.Tracef("Matched %s structure, classified as %v", c.name,
			p.MultiSigType())
		return p
	}

	log.Tracef("Script matches no known redeem script structure")
	return &NoneParser{scriptType: st}
}

func parseStandard(st ScriptType, chunks []script.Chunk) Parser {
	return newStandardParser(st, chunks)
}

func parseFlyover(st ScriptType, chunks []script.Chunk) Parser {
	inner := classify(st, chunks[flyoverPrefixLen:])
	t, ok := flyoverTypeFor(inner.MultiSigType())
	if !ok {
		log.Tracef("Flyover prefix wraps a %v script", inner.MultiSigType())
		return &NoneParser{scriptType: st}
	}

	var hash chainhash.Hash
	copy(hash[:], chunks[0].Data)
	return &FlyoverParser{
		multiSigType:   t,
		derivationHash: hash,
		inner:          inner,
	}
}

// parseInlinedErp tells ERP and non-standard ERP scripts apart by how the
// relative lock time is encoded.
func parseInlinedErp(st ScriptType, chunks []script.Chunk) Parser {
	layout, _ := nonStandardErpLayout(chunks)
	t := ErpMultiSigTy
	if _, err := DecodeCSV(layout.csv); err != nil {
		log.Tracef("CSV %v is not a canonical script number: %v",
			layout.csv, err)
		t = NonStandardErpMultiSigTy
	}
	return newErpParser(t, st, layout)
}

func parseP2shErp(st ScriptType, chunks []script.Chunk) Parser {
	layout, _ := p2shErpLayout(chunks)
	return newErpParser(P2shErpMultiSigTy, st, layout)
}

func parseHardcoded(st ScriptType, chunks []script.Chunk) Parser {
	return &HardcodedParser{
		scriptType: st,
		program:    script.SerializeChunks(chunks),
	}
}
