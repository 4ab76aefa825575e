// Package check type-checks a bound program in place. It computes the type
// of every expression once, records it on the node, finalizes symbol types,
// and wraps values in bound.ImplicitCast where a representation change is
// needed. Only structural type equality is verified.
package check

import (
	"github.com/ember-lang/ember/internal/bound"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/lexer"
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

// Checker performs type checking on the bound tree.
type Checker struct {
	diags    *diag.Bag
	function *bound.FunctionDeclaration // enclosing function, nil at file scope
}

// NewChecker creates a new type checker.
func NewChecker(opts ...Option) *Checker {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Checker{diags: diag.NewBag(cfg.policy)}
}

// Check type-checks prog and returns the diagnostics found.
func Check(prog *bound.Program, opts ...Option) []diag.Diagnostic {
	c := NewChecker(opts...)
	c.CheckProgram(prog)
	return c.Diagnostics()
}

// Diagnostics returns the diagnostics reported so far.
func (c *Checker) Diagnostics() []diag.Diagnostic {
	return c.diags.Diagnostics()
}

// CheckProgram validates every top-level statement in source order.
func (c *Checker) CheckProgram(prog *bound.Program) {
	for _, s := range prog.Statements {
		c.checkStmt(s)
	}
}

// typeDiffers reports a mismatch unless either side is already invalid.
func (c *Checker) typeDiffers(span lexer.Span, want, got types.Type) {
	if types.IsInvalid(want) || types.IsInvalid(got) {
		return
	}
	c.diags.Report(diag.TypeDiffers, span, want.String(), got.String())
}

// validType reports void, auto and zero-sized arrays in a type written
// where a concrete type is required. void is accepted at the top level only
// when allowVoid is set, and always behind a pointer.
func (c *Checker) validType(t types.Type, span lexer.Span, allowVoid bool) bool {
	switch t := t.(type) {
	case *types.Base:
		switch {
		case t.Kind == types.Void && !allowVoid:
			c.diags.Report(diag.VoidNotAllowed, span)
			return false
		case t.Kind == types.Auto:
			c.diags.Report(diag.AutoNotAllowed, span)
			return false
		}
	case *types.Pointer:
		return c.validType(t.Inner, span, true)
	case *types.Array:
		ok := true
		if t.Size == 0 {
			c.diags.Report(diag.ArraySizeZero, span)
			ok = false
		}
		return c.validType(t.Inner, span, false) && ok
	case *types.Function:
		ok := c.validType(t.Return, span, true)
		for _, p := range t.Params {
			ok = c.validType(p, span, false) && ok
		}
		return ok
	}
	return !types.IsInvalid(t)
}

// coerce checks that e can be used where want is expected and returns the
// expression to store in its place, wrapped in an implicit cast when an
// array decays to a pointer to its element type.
func (c *Checker) coerce(e bound.Expr, want types.Type) bound.Expr {
	got := c.expr(e)
	if types.IsKind(got, types.Void) {
		c.diags.Report(diag.ExpressionDoesNotReturnValue, e.Span())
		return e
	}
	if types.Equal(got, want) {
		return e
	}
	if arr, ok := got.(*types.Array); ok {
		if ptr, ok := want.(*types.Pointer); ok && types.Equal(arr.Inner, ptr.Inner) {
			return bound.NewImplicitCast(e, want)
		}
	}
	c.typeDiffers(e.Span(), want, got)
	return e
}
