package flow

import (
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/types"
)

type Option func(*options)

type options struct {
	policy *diag.Policy
}

// WithPolicy applies a severity policy to the reported diagnostics.
func WithPolicy(p *diag.Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// Analyze runs the dataflow analysis over every graph and reports missing
// returns and unreachable code.
func Analyze(graphs []*Graph, opts ...Option) []diag.Diagnostic {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	bag := diag.NewBag(cfg.policy)
	for _, g := range graphs {
		g.Solve()
		g.report(bag)
	}
	return bag.Diagnostics()
}

// Solve computes the fixpoint state of every block.
func (g *Graph) Solve() {
	for _, block := range g.Blocks {
		block.State = State{Reachable: false, HasReturn: true}
	}
	g.Entry.State = State{Reachable: true, HasReturn: false}

	worklist := []*Block{g.Entry}
	for len(worklist) > 0 {
		block := worklist[0]
		worklist = worklist[1:]

		out := State{
			Reachable: block.State.Reachable,
			HasReturn: block.endsWithReturn(),
		}
		for _, succ := range block.Succs {
			merged := State{
				Reachable: succ.State.Reachable || out.Reachable,
				HasReturn: succ.State.HasReturn && out.HasReturn,
			}
			if merged != succ.State {
				succ.State = merged
				worklist = append(worklist, succ)
			}
		}
	}
}

func (g *Graph) report(bag *diag.Bag) {
	fn := g.Function
	if !types.IsKind(fn.Return, types.Void) && g.Exit.State.Reachable && !g.Exit.State.HasReturn {
		bag.Report(diag.FunctionMustReturnFromAllPaths, fn.Symbol.Span(), fn.Symbol.Name())
	}

	for _, block := range g.Blocks {
		if block.State.Reachable || len(block.Stmts) == 0 {
			continue
		}
		bag.Report(diag.UnreachableCode, block.Stmts[0].Span())
	}
}
