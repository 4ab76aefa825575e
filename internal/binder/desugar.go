package binder

import (
	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/types"
)

// desugarDefaultDeclaration rewrites "T x = default;" into
// "T x = default(T);". The syntax tree itself is left untouched.
func desugarDefaultDeclaration(s *ast.DefaultDeclaration) *ast.Declaration {
	init := ast.NewDefaultValue(s.Type, s.Default)
	return ast.NewDeclaration(s.Modifiers, s.Type, s.Name, init, s.Span())
}

// resolveType maps type syntax to a type. Every type name is a primitive
// keyword, so resolution cannot fail on parsed input.
func resolveType(t ast.TypeExpr) types.Type {
	switch t := t.(type) {
	case *ast.NamedType:
		if b, ok := types.LookupBase(t.Name); ok {
			return b
		}
	case *ast.PointerType:
		return &types.Pointer{Inner: resolveType(t.Elem)}
	case *ast.ArrayType:
		return &types.Array{Inner: resolveType(t.Elem), Size: t.Size}
	case *ast.FunctionType:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = resolveType(p)
		}
		return &types.Function{Return: resolveType(t.Return), Params: params}
	}
	return types.Invalid
}
