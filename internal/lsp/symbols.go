package lsp

import (
	"encoding/json"
	"sort"

	"github.com/ember-lang/ember/internal/bound"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/types"
)

// occurrence is a span of source naming a symbol.
type occurrence struct {
	span   diag.Span
	symbol types.Symbol
}

// symbolIndex records every declaration and resolved reference of a
// bound program, ordered by position.
type symbolIndex struct {
	occurrences []occurrence
	global      *types.Scope
	functions   []*bound.FunctionDeclaration
}

func newSymbolIndex(prog *bound.Program) *symbolIndex {
	idx := &symbolIndex{}
	if prog == nil {
		return idx
	}
	idx.global = prog.Global
	idx.functions = prog.Functions()

	for _, s := range prog.Statements {
		bound.Walk(s, func(n bound.Node) bool {
			switch n := n.(type) {
			case *bound.Declaration:
				idx.add(n.Symbol.Span(), n.Symbol)
			case *bound.FunctionDeclaration:
				idx.add(n.Symbol.Span(), n.Symbol)
				for _, p := range n.Symbol.Params {
					idx.add(p.Span(), p)
				}
			case *bound.Symbol:
				if n.Symbol != nil {
					idx.add(n.Span(), n.Symbol)
				}
			}
			return true
		})
	}
	sort.SliceStable(idx.occurrences, func(i, j int) bool {
		return idx.occurrences[i].span.Start < idx.occurrences[j].span.Start
	})
	return idx
}

func (idx *symbolIndex) add(span diag.Span, sym types.Symbol) {
	idx.occurrences = append(idx.occurrences, occurrence{span: span, symbol: sym})
}

// at returns the symbol whose occurrence covers offset, or nil.
func (idx *symbolIndex) at(offset int) types.Symbol {
	for _, o := range idx.occurrences {
		if o.span.Start <= offset && offset < o.span.End {
			return o.symbol
		}
	}
	return nil
}

// visible returns the symbols in scope at offset: globals, then the
// parameters and locals of the function containing offset declared before it.
func (idx *symbolIndex) visible(offset int) []types.Symbol {
	var out []types.Symbol
	if idx.global != nil {
		out = append(out, idx.global.Symbols()...)
	}
	for _, fn := range idx.functions {
		if fn.Body == nil {
			continue
		}
		body := fn.Body.Span()
		if offset < body.Start || offset > body.End {
			continue
		}
		for _, p := range fn.Symbol.Params {
			out = append(out, p)
		}
		bound.Walk(fn.Body, func(n bound.Node) bool {
			if d, ok := n.(*bound.Declaration); ok && d.Symbol.Span().End <= offset {
				out = append(out, d.Symbol)
			}
			return true
		})
	}
	return out
}

// describe renders a symbol for hover and completion detail.
func describe(sym types.Symbol) string {
	t := sym.Type()
	if t == nil {
		return sym.Name()
	}
	if fn, ok := sym.(*types.Func); ok {
		sig := fn.Signature()
		if sig == nil {
			return fn.Name() + ": " + t.String()
		}
		params := ""
		for i, p := range fn.Params {
			if i > 0 {
				params += ", "
			}
			params += sig.Params[i].String() + " " + p.Name()
		}
		s := sig.Return.String() + " " + fn.Name() + "(" + params + ")"
		if fn.Extern {
			s = "extern " + s
		}
		return s
	}
	return t.String() + " " + sym.Name()
}

// TextDocumentPositionParams represents a position in a text document.
type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

// Hover represents hover information.
type Hover struct {
	Contents MarkupContent `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}

type MarkupContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// Location represents a location in a document.
type Location struct {
	URI   string `json:"uri"`
	Range Range  `json:"range"`
}

// lookupDocument decodes position params and returns the open document.
func (s *Server) lookupDocument(msg *jsonrpcMessage) (*Document, int, *jsonrpcMessage) {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return nil, 0, replyError(msg, codeInvalidParams, "Invalid params: %v", err)
	}

	s.mu.RLock()
	doc, ok := s.Documents[params.TextDocument.URI]
	s.mu.RUnlock()
	if !ok {
		return nil, 0, reply(msg, nil)
	}
	return doc, positionToOffset(doc.Content, params.Position), nil
}

func (s *Server) handleHover(msg *jsonrpcMessage) *jsonrpcMessage {
	doc, offset, errReply := s.lookupDocument(msg)
	if doc == nil {
		return errReply
	}

	sym := doc.index.at(offset)
	if sym == nil {
		return reply(msg, nil)
	}
	return reply(msg, Hover{
		Contents: MarkupContent{Kind: "markdown", Value: "```ember\n" + describe(sym) + "\n```"},
	})
}

func (s *Server) handleDefinition(msg *jsonrpcMessage) *jsonrpcMessage {
	doc, offset, errReply := s.lookupDocument(msg)
	if doc == nil {
		return errReply
	}

	sym := doc.index.at(offset)
	if sym == nil {
		return reply(msg, nil)
	}
	return reply(msg, Location{URI: doc.URI, Range: spanRange(doc.Content, sym.Span())})
}

// CompletionList represents a list of completion items.
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

type CompletionItem struct {
	Label  string `json:"label"`
	Kind   int    `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

const (
	completionKindFunction = 3
	completionKindVariable = 6
	completionKindKeyword  = 14
)

var completionKeywords = []string{
	"return", "if", "else", "true", "false", "as", "default", "extern", "export",
	"void", "ptrsize", "bool", "char", "int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64", "float16", "float32", "float64", "auto", "let",
}

func (s *Server) handleCompletion(msg *jsonrpcMessage) *jsonrpcMessage {
	doc, offset, errReply := s.lookupDocument(msg)
	if doc == nil {
		return errReply
	}

	var items []CompletionItem
	for _, sym := range doc.index.visible(offset) {
		kind := completionKindVariable
		if _, ok := sym.(*types.Func); ok {
			kind = completionKindFunction
		}
		items = append(items, CompletionItem{Label: sym.Name(), Kind: kind, Detail: describe(sym)})
	}
	for _, kw := range completionKeywords {
		items = append(items, CompletionItem{Label: kw, Kind: completionKindKeyword})
	}
	return reply(msg, CompletionList{Items: items})
}
