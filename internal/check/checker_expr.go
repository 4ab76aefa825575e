package check

import (
	"github.com/ember-lang/ember/internal/bound"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/lexer"
	"github.com/ember-lang/ember/internal/types"
)

// expr returns the type of e, computing and recording it on first use.
func (c *Checker) expr(e bound.Expr) types.Type {
	if t := e.Type(); t != nil {
		return t
	}
	t := c.evalExpr(e)
	if t == nil {
		t = types.Invalid
	}
	e.SetType(t)
	return t
}

func (c *Checker) evalExpr(e bound.Expr) types.Type {
	switch e := e.(type) {
	case *bound.Literal:
		return literalType(e.Token)

	case *bound.Binary:
		left := c.expr(e.Left)
		right := c.expr(e.Right)
		if !types.Equal(left, right) {
			c.typeDiffers(e.Span(), left, right)
		}
		if types.IsInvalid(left) {
			return right
		}
		return left

	case *bound.Unary:
		t := c.expr(e.Operand)
		if e.Op != lexer.BANG {
			return t
		}
		if !types.IsKind(t, types.Bool) {
			c.typeDiffers(e.Operand.Span(), types.TypeBool, t)
		}
		return types.TypeBool

	case *bound.Grouping:
		return c.expr(e.Inner)

	case *bound.Comparison:
		c.operands(e.Span(), e.Left, e.Right)
		return types.TypeBool

	case *bound.Equality:
		c.operands(e.Span(), e.Left, e.Right)
		return types.TypeBool

	case *bound.Logic:
		c.operands(e.Span(), e.Left, e.Right)
		return types.TypeBool

	case *bound.Symbol:
		return c.symbolType(e)

	case *bound.AssignmentReference:
		return c.expr(e.Ref)

	case *bound.Assignment:
		target := c.expr(e.Target)
		e.Value = c.coerce(e.Value, target)
		return target

	case *bound.Dereference:
		return c.dereference(e)

	case *bound.AddressOf:
		return &types.Pointer{Inner: c.expr(e.Operand)}

	case *bound.Call:
		return c.call(e)

	case *bound.Cast:
		if types.IsKind(c.expr(e.Value), types.Void) {
			c.diags.Report(diag.ExpressionDoesNotReturnValue, e.Value.Span())
		}
		if !c.validType(e.Target, e.Span(), false) {
			return types.Invalid
		}
		return e.Target

	case *bound.ArrayLiteral:
		return c.arrayLiteral(e)

	case *bound.DefaultValue:
		if !c.validType(e.Target, e.Span(), false) {
			return types.Invalid
		}
		return e.Target

	case *bound.ImplicitCast, *bound.Error:
		// typed at construction
		return e.Type()
	}

	panic("check: unhandled bound expression")
}

// literalType types a literal: integers are int32, floats float64, and a
// string is a NUL-terminated char array.
func literalType(tok lexer.Token) types.Type {
	switch tok.Type {
	case lexer.INT:
		return types.TypeInt32
	case lexer.FLOAT:
		return types.TypeFloat64
	case lexer.CHAR:
		return types.TypeChar
	case lexer.TRUE, lexer.FALSE:
		return types.TypeBool
	case lexer.STRING:
		b, _ := tok.Value.([]byte)
		return &types.Array{Inner: types.TypeChar, Size: uint64(len(b)) + 1}
	}
	panic("check: unknown literal token " + string(tok.Type))
}

// operands checks that both sides of a binary test have the same type.
func (c *Checker) operands(span lexer.Span, left, right bound.Expr) {
	lt := c.expr(left)
	rt := c.expr(right)
	if !types.Equal(lt, rt) {
		c.typeDiffers(span, lt, rt)
	}
}

func (c *Checker) symbolType(e *bound.Symbol) types.Type {
	if e.Symbol == nil {
		return types.Invalid
	}
	t := e.Symbol.Type()
	if t == nil {
		c.diags.Report(diag.SymbolTypeUnknown, e.Span(), e.Name)
		return types.Invalid
	}
	if e.AddressOf {
		return &types.Pointer{Inner: t}
	}
	return t
}

func (c *Checker) dereference(e *bound.Dereference) types.Type {
	pt := c.expr(e.Pointer)
	if e.Index != nil {
		if types.IsKind(c.expr(e.Index), types.Void) {
			c.diags.Report(diag.ExpressionDoesNotReturnValue, e.Index.Span())
		}
	}
	if types.IsInvalid(pt) {
		return types.Invalid
	}
	inner, ok := types.Pointee(pt)
	if !ok {
		c.diags.Report(diag.PointerExpected, e.Pointer.Span(), pt.String())
		return types.Invalid
	}
	return inner
}

// call types a call. A callee that is not a function is reported once and
// the call is given the invalid type so nothing else cascades from it.
func (c *Checker) call(e *bound.Call) types.Type {
	ct := c.expr(e.Callee)
	sig, ok := ct.(*types.Function)
	if !ok {
		for _, arg := range e.Args {
			c.expr(arg)
		}
		if !types.IsInvalid(ct) {
			c.diags.Report(diag.CannotCallNonFunction, e.Callee.Span(), ct.String())
		}
		return types.Invalid
	}

	if len(e.Args) != len(sig.Params) {
		c.diags.Report(diag.ArityDiffers, e.Span(), len(sig.Params), len(e.Args))
	}
	for i, arg := range e.Args {
		if i < len(sig.Params) {
			e.Args[i] = c.coerce(arg, sig.Params[i])
		} else {
			c.expr(arg)
		}
	}
	return sig.Return
}

func (c *Checker) arrayLiteral(e *bound.ArrayLiteral) types.Type {
	valid := c.validType(e.Elem, e.Span(), false)
	if e.Size == 0 {
		c.diags.Report(diag.ArraySizeZero, e.Span())
		valid = false
	}
	if uint64(len(e.Values)) > e.Size {
		c.diags.Report(diag.TooManyElements, e.Span(), e.Size, len(e.Values))
	}

	elem := e.Elem
	if !valid {
		elem = types.Invalid
	}
	for i, v := range e.Values {
		e.Values[i] = c.coerce(v, elem)
	}

	if !valid {
		return types.Invalid
	}
	return &types.Array{Inner: e.Elem, Size: e.Size}
}
