// Package diag defines the small error taxonomy shared by the lexer,
// parser, and evaluator: a kind tag plus a human-readable message,
// generalized from go-mix's ad hoc []string parser error list
// (parser/parser.go addError) into one typed value that implements the
// standard error interface.
package diag

import "fmt"

// Kind tags the category of a Diagnostic.
type Kind int

const (
	LexError Kind = iota
	ParseError
	NameError
	TypeError
	ArityError
	DivisionByZero
	OtherRuntimeError
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case ParseError:
		return "parse error"
	case NameError:
		return "name error"
	case TypeError:
		return "type error"
	case ArityError:
		return "arity error"
	case DivisionByZero:
		return "division by zero"
	case OtherRuntimeError:
		return "runtime error"
	default:
		return "error"
	}
}

// Diagnostic is the single error type surfaced by every stage of the
// core. It carries no location info yet (spec's designed extension
// point) beyond what the message text includes.
type Diagnostic struct {
	Kind    Kind
	Message string
}

// Error implements the standard error interface so Diagnostic can be
// returned and compared anywhere Go code expects an error.
func (d *Diagnostic) Error() string {
	return d.Message
}

// Render formats the diagnostic the way the REPL prints it to stderr:
// "ERR: <message>".
func (d *Diagnostic) Render() string {
	return fmt.Sprintf("ERR: %s", d.Message)
}

func New(kind Kind, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Lex(format string, args ...any) *Diagnostic {
	return New(LexError, format, args...)
}

func Parse(format string, args ...any) *Diagnostic {
	return New(ParseError, format, args...)
}

func Name(format string, args ...any) *Diagnostic {
	return New(NameError, format, args...)
}

func Type(format string, args ...any) *Diagnostic {
	return New(TypeError, format, args...)
}

func Arity(format string, args ...any) *Diagnostic {
	return New(ArityError, format, args...)
}

func DivByZero() *Diagnostic {
	return New(DivisionByZero, "division by zero")
}

func Other(format string, args ...any) *Diagnostic {
	return New(OtherRuntimeError, format, args...)
}
