package ast

// ExprVisitor has one method per concrete expression kind. Implementations
// keep their result in their own state; adding a node kind breaks every
// visitor at compile time.
type ExprVisitor interface {
	VisitLiteral(e *Literal)
	VisitBinary(e *Binary)
	VisitUnary(e *Unary)
	VisitGrouping(e *Grouping)
	VisitComparison(e *Comparison)
	VisitEquality(e *Equality)
	VisitLogic(e *Logic)
	VisitSymbol(e *Symbol)
	VisitAssignment(e *Assignment)
	VisitDereference(e *Dereference)
	VisitAddressOf(e *AddressOf)
	VisitCall(e *Call)
	VisitCast(e *Cast)
	VisitArrayLiteral(e *ArrayLiteral)
	VisitIndex(e *Index)
	VisitDefaultValue(e *DefaultValue)
}

// StmtVisitor has one method per concrete statement kind.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt)
	VisitDeclaration(s *Declaration)
	VisitDefaultDeclaration(s *DefaultDeclaration)
	VisitFunctionDeclaration(s *FunctionDeclaration)
	VisitReturn(s *Return)
	VisitBlock(s *Block)
	VisitIf(s *If)
}
