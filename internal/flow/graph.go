// Package flow builds a control-flow graph for each function body and runs
// the reachability and return-path analysis over it.
package flow

import (
	"fmt"
	"strings"

	"github.com/ember-lang/ember/internal/bound"
)

// State is the dataflow fact attached to a block.
type State struct {
	Reachable bool
	HasReturn bool
}

// Block is a straight-line run of bound statements.
type Block struct {
	Name  string
	Stmts []bound.Stmt
	Preds []*Block
	Succs []*Block
	State State
}

// Graph is the control-flow graph of one function. Exit is synthetic and
// never holds statements.
type Graph struct {
	Function *bound.FunctionDeclaration
	Entry    *Block
	Exit     *Block
	Blocks   []*Block
}

func link(from, to *Block) {
	for _, s := range from.Succs {
		if s == to {
			return
		}
	}
	from.Succs = append(from.Succs, to)
	to.Preds = append(to.Preds, from)
}

func remove(list []*Block, b *Block) []*Block {
	out := list[:0]
	for _, x := range list {
		if x != b {
			out = append(out, x)
		}
	}
	return out
}

// endsWithReturn reports whether the last statement of b is a return.
func (b *Block) endsWithReturn() bool {
	if len(b.Stmts) == 0 {
		return false
	}
	_, ok := b.Stmts[len(b.Stmts)-1].(*bound.Return)
	return ok
}

// PrettyPrint returns a human-readable listing of the graph edges.
func (g *Graph) PrettyPrint() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("fn %s {\n", g.Function.Symbol.Name()))
	for _, block := range g.Blocks {
		names := make([]string, len(block.Succs))
		for i, s := range block.Succs {
			names[i] = s.Name
		}
		b.WriteString(fmt.Sprintf("  %s (%d stmts) -> [%s]\n", block.Name, len(block.Stmts), strings.Join(names, ", ")))
	}
	b.WriteString("}")
	return b.String()
}
