package flow

import (
	"fmt"

	"github.com/ember-lang/ember/internal/bound"
)

type builder struct {
	graph   *Graph
	current *Block
	counter int
}

// Build creates one graph per function with a body, in declaration order.
func Build(prog *bound.Program) []*Graph {
	var graphs []*Graph
	for _, fn := range prog.Functions() {
		if fn.Body == nil {
			continue
		}
		graphs = append(graphs, BuildFunction(fn))
	}
	return graphs
}

// BuildFunction creates the graph of fn, which must have a body.
func BuildFunction(fn *bound.FunctionDeclaration) *Graph {
	b := &builder{graph: &Graph{Function: fn}}
	b.graph.Entry = b.newBlock("entry")
	b.graph.Exit = &Block{Name: "exit"}
	b.current = b.graph.Entry

	b.stmts(fn.Body.Stmts)
	link(b.current, b.graph.Exit)

	b.graph.Blocks = append(b.graph.Blocks, b.graph.Exit)
	b.prune()
	return b.graph
}

func (b *builder) newBlock(label string) *Block {
	if label == "" {
		label = fmt.Sprintf("bb%d", b.counter)
		b.counter++
	}
	block := &Block{Name: label}
	b.graph.Blocks = append(b.graph.Blocks, block)
	return block
}

func (b *builder) stmts(list []bound.Stmt) {
	for _, s := range list {
		b.stmt(s)
	}
}

func (b *builder) stmt(s bound.Stmt) {
	switch s := s.(type) {
	case *bound.Block:
		b.stmts(s.Stmts)

	case *bound.Return:
		b.current.Stmts = append(b.current.Stmts, s)
		link(b.current, b.graph.Exit)
		// whatever follows lands in a block with no predecessors
		b.current = b.newBlock("")

	case *bound.If:
		b.current.Stmts = append(b.current.Stmts, s)
		cond := b.current

		then := b.newBlock("")
		link(cond, then)
		b.current = then
		b.stmt(s.Then)
		thenEnd := b.current

		var elseEnd *Block
		if s.Else != nil {
			els := b.newBlock("")
			link(cond, els)
			b.current = els
			b.stmt(s.Else)
			elseEnd = b.current
		}

		join := b.newBlock("")
		link(thenEnd, join)
		if elseEnd != nil {
			link(elseEnd, join)
		} else {
			link(cond, join)
		}
		b.current = join

	default:
		b.current.Stmts = append(b.current.Stmts, s)
	}
}

// prune removes empty blocks other than entry and exit, connecting each
// predecessor directly to each successor.
func (b *builder) prune() {
	g := b.graph
	kept := g.Blocks[:0]
	for _, block := range g.Blocks {
		if len(block.Stmts) != 0 || block == g.Entry || block == g.Exit {
			kept = append(kept, block)
			continue
		}
		for _, p := range block.Preds {
			p.Succs = remove(p.Succs, block)
		}
		for _, s := range block.Succs {
			s.Preds = remove(s.Preds, block)
		}
		for _, p := range block.Preds {
			for _, s := range block.Succs {
				link(p, s)
			}
		}
	}
	g.Blocks = kept
}
