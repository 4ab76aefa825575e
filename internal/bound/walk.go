package bound

// Walk traverses the bound tree starting from node, calling fn for each node.
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
		Walk(n.Init, fn)

	case *FunctionDeclaration:
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *Return:
		Walk(n.Value, fn)

	case *Block:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *If:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		Walk(n.Else, fn)

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

	case *AssignmentReference:
		Walk(n.Ref, fn)

	case *Assignment:
		Walk(n.Target, fn)
		Walk(n.Value, fn)

	case *Dereference:
		Walk(n.Pointer, fn)
		Walk(n.Index, fn)

	case *AddressOf:
		Walk(n.Operand, fn)

	case *Call:
		Walk(n.Callee, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *Cast:
		Walk(n.Value, fn)

	case *ArrayLiteral:
		for _, v := range n.Values {
			Walk(v, fn)
		}

	case *ImplicitCast:
		Walk(n.Value, fn)

	case *Literal, *Symbol, *DefaultValue, *Error:
		// leaves
	}
}
