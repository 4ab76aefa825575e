package diag

// Kind describes one diagnostic enumerant. Code is the ordinal within Stage
// and never changes once released; Severity is the default severity, which a
// Policy may override.
type Kind struct {
	Stage    Stage
	Code     int
	ID       string
	Severity Severity
}

// Lexer diagnostics.
var (
	UnexpectedCharacter      = Kind{StageLexer, 0, "UnexpectedCharacter", SeverityError}
	MalformedNumber          = Kind{StageLexer, 1, "MalformedNumber", SeverityError}
	NumberTooLarge           = Kind{StageLexer, 2, "NumberTooLarge", SeverityError}
	UnterminatedString       = Kind{StageLexer, 3, "UnterminatedString", SeverityError}
	UnterminatedChar         = Kind{StageLexer, 4, "UnterminatedChar", SeverityError}
	UnknownEscapeSequence    = Kind{StageLexer, 5, "UnknownEscapeSequence", SeverityError}
	EmptyCharLiteral         = Kind{StageLexer, 6, "EmptyCharLiteral", SeverityError}
	CharLiteralTooLong       = Kind{StageLexer, 7, "CharLiteralTooLong", SeverityError}
	UnterminatedBlockComment = Kind{StageLexer, 8, "UnterminatedBlockComment", SeverityError}
)

// Parser diagnostics.
var (
	ExpectedToken       = Kind{StageParser, 0, "ExpectedToken", SeverityError}
	ExpectedExpression  = Kind{StageParser, 1, "ExpectedExpression", SeverityError}
	ExpectedTypeName    = Kind{StageParser, 2, "ExpectedTypeName", SeverityError}
	ExpectedIdentifier  = Kind{StageParser, 3, "ExpectedIdentifier", SeverityError}
	UnclosedBlock       = Kind{StageParser, 4, "UnclosedBlock", SeverityError}
	WrongBlockPlacement = Kind{StageParser, 5, "WrongBlockPlacement", SeverityError}
	InvalidArraySize    = Kind{StageParser, 6, "InvalidArraySize", SeverityError}
	ExternWithBody      = Kind{StageParser, 7, "ExternWithBody", SeverityError}
	MissingFunctionBody = Kind{StageParser, 8, "MissingFunctionBody", SeverityError}
)

// Binder diagnostics.
var (
	MultipleSymbolDeclaration = Kind{StageBinder, 0, "MultipleSymbolDeclaration", SeverityError}
	UndeclaredSymbol          = Kind{StageBinder, 1, "UndeclaredSymbol", SeverityError}
	SymbolIsNotValue          = Kind{StageBinder, 2, "SymbolIsNotValue", SeverityError}
	MustBeAssignmentReference = Kind{StageBinder, 3, "MustBeAssignmentReference", SeverityError}
	ValueMustBeAddressable    = Kind{StageBinder, 4, "ValueMustBeAddressable", SeverityError}
	NestedFunctionDeclaration = Kind{StageBinder, 5, "NestedFunctionDeclaration", SeverityError}
	ReturnOutsideFunction     = Kind{StageBinder, 6, "ReturnOutsideFunction", SeverityError}
	StatementOutsideFunction  = Kind{StageBinder, 7, "StatementOutsideFunction", SeverityError}
)

// Type checker diagnostics.
var (
	TypeDiffers                  = Kind{StageTypeChecker, 0, "TypeDiffers", SeverityError}
	PointerExpected              = Kind{StageTypeChecker, 1, "PointerExpected", SeverityError}
	ArityDiffers                 = Kind{StageTypeChecker, 2, "ArityDiffers", SeverityError}
	CannotCallNonFunction        = Kind{StageTypeChecker, 3, "CannotCallNonFunction", SeverityError}
	ArraySizeZero                = Kind{StageTypeChecker, 4, "ArraySizeZero", SeverityError}
	TooManyElements              = Kind{StageTypeChecker, 5, "TooManyElements", SeverityError}
	ExpectedReturnValue          = Kind{StageTypeChecker, 6, "ExpectedReturnValue", SeverityError}
	UnexpectedReturnValue        = Kind{StageTypeChecker, 7, "UnexpectedReturnValue", SeverityError}
	ExpressionDoesNotReturnValue = Kind{StageTypeChecker, 8, "ExpressionDoesNotReturnValue", SeverityError}
	VoidNotAllowed               = Kind{StageTypeChecker, 9, "VoidNotAllowed", SeverityError}
	AutoNotAllowed               = Kind{StageTypeChecker, 10, "AutoNotAllowed", SeverityError}
	SymbolTypeUnknown            = Kind{StageTypeChecker, 11, "SymbolTypeUnknown", SeverityError}
)

// Control-flow diagnostics.
var (
	FunctionMustReturnFromAllPaths = Kind{StageControlFlow, 0, "FunctionMustReturnFromAllPaths", SeverityError}
	UnreachableCode                = Kind{StageControlFlow, 1, "UnreachableCode", SeverityWarning}
)

var registry = []Kind{
	UnexpectedCharacter, MalformedNumber, NumberTooLarge, UnterminatedString, UnterminatedChar,
	UnknownEscapeSequence, EmptyCharLiteral, CharLiteralTooLong, UnterminatedBlockComment,

	ExpectedToken, ExpectedExpression, ExpectedTypeName, ExpectedIdentifier, UnclosedBlock,
	WrongBlockPlacement, InvalidArraySize, ExternWithBody, MissingFunctionBody,

	MultipleSymbolDeclaration, UndeclaredSymbol, SymbolIsNotValue, MustBeAssignmentReference,
	ValueMustBeAddressable, NestedFunctionDeclaration, ReturnOutsideFunction, StatementOutsideFunction,

	TypeDiffers, PointerExpected, ArityDiffers, CannotCallNonFunction, ArraySizeZero, TooManyElements,
	ExpectedReturnValue, UnexpectedReturnValue, ExpressionDoesNotReturnValue, VoidNotAllowed,
	AutoNotAllowed, SymbolTypeUnknown,

	FunctionMustReturnFromAllPaths, UnreachableCode,
}

// Lookup finds a kind by its symbolic id.
func Lookup(id string) (Kind, bool) {
	for _, k := range registry {
		if k.ID == id {
			return k, true
		}
	}
	return Kind{}, false
}

// Kinds returns every registered diagnostic kind in stage/code order.
func Kinds() []Kind {
	out := make([]Kind, len(registry))
	copy(out, registry)
	return out
}

// Messages is the default English message table keyed by diagnostic id.
// Templates use fmt verbs and receive Diagnostic.Args positionally.
var Messages = map[string]string{
	"UnexpectedCharacter":      "unexpected character %q",
	"MalformedNumber":          "malformed number literal %q",
	"NumberTooLarge":           "number literal %q does not fit in 64 bits",
	"UnterminatedString":       "unterminated string literal",
	"UnterminatedChar":         "unterminated character literal",
	"UnknownEscapeSequence":    "unknown escape sequence '\\%c'",
	"EmptyCharLiteral":         "empty character literal",
	"CharLiteralTooLong":       "character literal must contain exactly one character, found %d",
	"UnterminatedBlockComment": "unterminated block comment",

	"ExpectedToken":       "expected %s, found %s",
	"ExpectedExpression":  "expected an expression, found %s",
	"ExpectedTypeName":    "expected a type name, found %s",
	"ExpectedIdentifier":  "expected an identifier, found %s",
	"UnclosedBlock":       "unclosed block",
	"WrongBlockPlacement": "wrong block placement: unexpected '}'",
	"InvalidArraySize":    "array size must be an integer literal, found %s",
	"ExternWithBody":      "extern function %q cannot have a body",
	"MissingFunctionBody": "function %q is missing a body",

	"MultipleSymbolDeclaration": "symbol %q is already declared in this scope",
	"UndeclaredSymbol":          "undeclared symbol %q",
	"SymbolIsNotValue":          "symbol %q is not a value",
	"MustBeAssignmentReference": "left side of an assignment must be a variable or a dereference",
	"ValueMustBeAddressable":    "value must be addressable",
	"NestedFunctionDeclaration": "function %q must be declared at file scope",
	"ReturnOutsideFunction":     "return statement outside of a function",
	"StatementOutsideFunction":  "only declarations are allowed at file scope",

	"TypeDiffers":                  "type differs: expected %s, found %s",
	"PointerExpected":              "pointer expected, found %s",
	"ArityDiffers":                 "function expects %d argument(s), found %d",
	"CannotCallNonFunction":        "cannot call non-function of type %s",
	"ArraySizeZero":                "array size must be at least 1",
	"TooManyElements":              "array of size %d initialised with %d elements",
	"ExpectedReturnValue":          "expected a return value of type %s",
	"UnexpectedReturnValue":        "function returning void cannot return a value",
	"ExpressionDoesNotReturnValue": "expression does not return any value",
	"VoidNotAllowed":               "void is not allowed here",
	"AutoNotAllowed":               "cannot infer a type here",
	"SymbolTypeUnknown":            "type of %q is not known at this point",

	"FunctionMustReturnFromAllPaths": "function %q must return from all paths",
	"UnreachableCode":                "unreachable code",
}
