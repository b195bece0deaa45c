package main

import (
	"context"
	"sort"

	"github.com/signadot/marc-format/marc/token"
	"go.lsp.dev/protocol"
)

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
	modifiers []protocol.SemanticTokenModifiers
}

// lexDocument tokenizes content.  When the whole document does not
// tokenize, lines are tokenized one at a time and failing lines skipped.
func lexDocument(doc *document) []token.Token {
	toks, err := token.Tokenize(nil, []byte(doc.content))
	if err == nil {
		return toks
	}
	for ln := 0; ln < doc.pos.NumLines(); ln++ {
		start := doc.pos.LineStart(ln)
		lnToks, err := token.Tokenize(nil, []byte(doc.pos.Line(ln)))
		if err != nil {
			continue
		}
		for _, t := range lnToks {
			t.Span.Start += start
			t.Span.End += start
			toks = append(toks, t)
		}
	}
	return toks
}

func semanticType(t *token.Token, afterEq bool) (protocol.SemanticTokenTypes, bool) {
	switch t.Type {
	case token.TNewline:
		return "", false
	case token.TComment:
		return protocol.SemanticTokenComment, true
	case token.TWord:
		return protocol.SemanticTokenProperty, true
	case token.TString:
		if afterEq {
			return protocol.SemanticTokenString, true
		}
		return protocol.SemanticTokenProperty, true
	case token.TInteger, token.TNumber:
		return protocol.SemanticTokenNumber, true
	case token.TTrue, token.TFalse, token.TNull:
		return protocol.SemanticTokenKeyword, true
	}
	return protocol.SemanticTokenOperator, true
}

// collectSemanticTokens classifies the tokens of doc.  The identifier
// assigned by an entry is marked as a definition.
func collectSemanticTokens(doc *document) []tokenInfo {
	toks := lexDocument(doc)
	var (
		tokenList []tokenInfo
		afterEq   bool
		lastKey   = -1
	)
	for i := range toks {
		t := &toks[i]
		switch t.Type {
		case token.TNewline:
			afterEq = false
			lastKey = -1
			continue
		case token.TEquals:
			afterEq = true
			if lastKey >= 0 {
				tokenList[lastKey].modifiers = []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefinition}
			}
		}
		tt, ok := semanticType(t, afterEq)
		if !ok {
			continue
		}
		pieces := doc.linePieces(t.Span)
		if tt == protocol.SemanticTokenProperty && len(pieces) == 1 {
			lastKey = len(tokenList)
		}
		for _, p := range pieces {
			p.tokenType = tt
			tokenList = append(tokenList, p)
		}
	}
	sort.SliceStable(tokenList, func(i, j int) bool {
		if tokenList[i].line != tokenList[j].line {
			return tokenList[i].line < tokenList[j].line
		}
		return tokenList[i].character < tokenList[j].character
	})
	return tokenList
}

// linePieces splits s at newlines, since semantic tokens may not span
// lines.
func (doc *document) linePieces(s token.Span) []tokenInfo {
	var res []tokenInfo
	start := s.Start
	for start < s.End {
		ln, _ := doc.pos.LineCol(start)
		end := min(s.End, doc.pos.LineEnd(ln))
		if end > start {
			a, b := doc.lspPosition(start), doc.lspPosition(end)
			res = append(res, tokenInfo{
				line:      a.Line,
				character: a.Character,
				length:    b.Character - a.Character,
			})
		}
		start = end + 1
	}
	return res
}

// encodeSemanticTokens delta encodes tokens in the order of the legend
// advertised by Initialize.
func encodeSemanticTokens(tokenList []tokenInfo) []uint32 {
	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}
	modifierMap := make(map[protocol.SemanticTokenModifiers]uint32)
	for i, tm := range tokenModifiers {
		modifierMap[tm] = uint32(i)
	}

	tokens := []uint32{}
	var prevLine, prevChar uint32
	for _, ti := range tokenList {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		tokenModifierBits := uint32(0)
		for _, mod := range ti.modifiers {
			if modIdx, ok := modifierMap[mod]; ok {
				tokenModifierBits |= (1 << modIdx)
			}
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, typeMap[ti.tokenType], tokenModifierBits)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	var inRange []tokenInfo
	for _, ti := range collectSemanticTokens(doc) {
		if ti.line >= params.Range.Start.Line && ti.line <= params.Range.End.Line {
			inRange = append(inRange, ti)
		}
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(inRange),
	}, nil
}
