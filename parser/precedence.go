package parser

import "github.com/klugscript/klug/lexer"

// Binding powers per the Klug precedence table. Left-associative
// operators have right bp = left bp + 1, so at equal precedence the
// left operand binds first (ties go left). Grounded on
// original_source/klug/crates/klug/src/parser/expr/op.rs's
// InfixOp::binding_power / PrefixOp::binding_power, which use the same
// numbering.
const (
	minBindingPower = 0

	addSubLeftBP  = 1
	addSubRightBP = 2

	mulDivLeftBP  = 3
	mulDivRightBP = 4

	prefixRightBP = 5
)

// infixBindingPower returns (left, right) binding power for a token
// that can appear as a binary operator, or ok=false if it cannot.
func infixBindingPower(kind lexer.Kind) (left, right int, ok bool) {
	switch kind {
	case lexer.PLUS, lexer.MINUS:
		return addSubLeftBP, addSubRightBP, true
	case lexer.STAR, lexer.SLASH:
		return mulDivLeftBP, mulDivRightBP, true
	default:
		return 0, 0, false
	}
}

// argumentStart reports whether kind can open a function-call
// argument. Prefix operators (-, !) deliberately are not included: an
// identifier immediately followed by '-' is parsed as subtraction, not
// as the start of a new call argument, resolving the ambiguity the
// original two parser sketches left unaddressed (see DESIGN.md).
func argumentStart(kind lexer.Kind) bool {
	switch kind {
	case lexer.NUMBER, lexer.STRING, lexer.IDENT, lexer.TRUE, lexer.FALSE, lexer.LPAREN:
		return true
	default:
		return false
	}
}
