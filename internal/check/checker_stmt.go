package check

import (
	"github.com/ember-lang/ember/internal/bound"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/types"
)

func (c *Checker) checkStmt(s bound.Stmt) {
	switch s := s.(type) {
	case *bound.ExpressionStmt:
		c.expr(s.Expr)
	case *bound.Declaration:
		c.checkDeclaration(s)
	case *bound.FunctionDeclaration:
		c.checkFunctionDeclaration(s)
	case *bound.Return:
		c.checkReturn(s)
	case *bound.Block:
		c.checkBlock(s)
	case *bound.If:
		c.checkIf(s)
	default:
		panic("check: unhandled bound statement")
	}
}

// checkDeclaration finalizes the variable type. An explicit type is set
// before the initializer is checked; auto takes the initializer's type.
func (c *Checker) checkDeclaration(s *bound.Declaration) {
	if !types.IsKind(s.Declared, types.Auto) {
		t := s.Declared
		if !c.validType(t, s.Span(), false) {
			t = types.Invalid
			// "T x = default;" carries the same written type; report it once.
			if d, ok := s.Init.(*bound.DefaultValue); ok && types.Equal(d.Target, s.Declared) {
				d.SetType(types.Invalid)
			}
		}
		s.Symbol.SetType(t)
		s.Init = c.coerce(s.Init, t)
		return
	}

	t := c.expr(s.Init)
	if types.IsKind(t, types.Void) {
		c.diags.Report(diag.ExpressionDoesNotReturnValue, s.Init.Span())
		t = types.Invalid
	}
	s.Symbol.SetType(t)
}

func (c *Checker) checkFunctionDeclaration(s *bound.FunctionDeclaration) {
	ret := s.Return
	if !c.validType(ret, s.Span(), true) {
		ret = types.Invalid
	}
	params := make([]types.Type, len(s.ParamTypes))
	for i, p := range s.ParamTypes {
		if !c.validType(p, s.Symbol.Params[i].Span(), false) {
			p = types.Invalid
		}
		params[i] = p
	}

	s.Symbol.SetType(&types.Function{Return: ret, Params: params})
	for i, p := range s.Symbol.Params {
		p.SetType(params[i])
	}

	if s.Body == nil {
		return
	}
	saved := c.function
	c.function = s
	defer func() { c.function = saved }()

	for _, st := range s.Body.Stmts {
		c.checkStmt(st)
	}
}

func (c *Checker) checkReturn(s *bound.Return) {
	if c.function == nil {
		// already reported by the binder
		if s.Value != nil {
			c.expr(s.Value)
		}
		return
	}

	want := c.function.Symbol.Signature().Return
	switch {
	case s.Value == nil:
		if !types.IsKind(want, types.Void) && !types.IsInvalid(want) {
			c.diags.Report(diag.ExpectedReturnValue, s.Span(), want.String())
		}
	case types.IsKind(want, types.Void):
		c.expr(s.Value)
		c.diags.Report(diag.UnexpectedReturnValue, s.Value.Span())
	default:
		s.Value = c.coerce(s.Value, want)
	}
}

func (c *Checker) checkBlock(s *bound.Block) {
	for _, st := range s.Stmts {
		c.checkStmt(st)
	}
}

func (c *Checker) checkIf(s *bound.If) {
	if t := c.expr(s.Cond); !types.IsKind(t, types.Bool) {
		c.typeDiffers(s.Cond.Span(), types.TypeBool, t)
	}
	c.checkStmt(s.Then)
	if s.Else != nil {
		c.checkStmt(s.Else)
	}
}
