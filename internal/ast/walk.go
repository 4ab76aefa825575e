package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	// Statements
	case *ExpressionStmt:
		Walk(n.Expr, fn)

	case *Declaration:
		walkType(n.Type, fn)
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Init != nil {
			Walk(n.Init, fn)
		}

	case *DefaultDeclaration:
		walkType(n.Type, fn)
		if n.Name != nil {
			Walk(n.Name, fn)
		}

	case *FunctionDeclaration:
		walkType(n.ReturnType, fn)
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, param := range n.Params {
			Walk(param, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *Param:
		walkType(n.Type, fn)
		if n.Name != nil {
			Walk(n.Name, fn)
		}

	case *Return:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *Block:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *If:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		if n.Else != nil {
			Walk(n.Else, fn)
		}

	// Expressions
	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *Comparison:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *Equality:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *Logic:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *Unary:
		Walk(n.Operand, fn)

	case *Grouping:
		Walk(n.Inner, fn)

	case *Assignment:
		Walk(n.Target, fn)
		Walk(n.Value, fn)

	case *Dereference:
		Walk(n.Pointer, fn)

	case *AddressOf:
		Walk(n.Operand, fn)

	case *Call:
		Walk(n.Callee, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *Cast:
		Walk(n.Value, fn)
		walkType(n.Target, fn)

	case *ArrayLiteral:
		walkType(n.Elem, fn)
		for _, v := range n.Values {
			Walk(v, fn)
		}

	case *Index:
		Walk(n.Array, fn)
		Walk(n.Index, fn)

	case *DefaultValue:
		walkType(n.Target, fn)

	// Types
	case *PointerType:
		walkType(n.Elem, fn)

	case *ArrayType:
		walkType(n.Elem, fn)

	case *FunctionType:
		walkType(n.Return, fn)
		for _, p := range n.Params {
			walkType(p, fn)
		}

	case *Literal, *Symbol, *Ident, *NamedType:
		// leaves
	}
}

// walkType avoids passing a typed nil TypeExpr to Walk.
func walkType(t TypeExpr, fn func(Node) bool) {
	if t != nil {
		Walk(t, fn)
	}
}
