package reltime

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TOKEN_NOW TokenType = iota
	TOKEN_NUMBER
	TOKEN_PLUS
	TOKEN_MINUS
	TOKEN_SLASH
	TOKEN_UNIT
	TOKEN_EOF
)

// Token represents a single lexer token. Number is set for TOKEN_NUMBER
// and Unit for TOKEN_UNIT; both are zero otherwise.
type Token struct {
	Type   TokenType
	Pos    int // byte offset in the input
	Number uint32
	Unit   Unit
}

func (t Token) String() string {
	switch t.Type {
	case TOKEN_NOW:
		return fmt.Sprintf("Token(now, %d)", t.Pos)
	case TOKEN_NUMBER:
		return fmt.Sprintf("Token(%d, %d)", t.Number, t.Pos)
	case TOKEN_PLUS:
		return fmt.Sprintf("Token(+, %d)", t.Pos)
	case TOKEN_MINUS:
		return fmt.Sprintf("Token(-, %d)", t.Pos)
	case TOKEN_SLASH:
		return fmt.Sprintf("Token(/, %d)", t.Pos)
	case TOKEN_UNIT:
		return fmt.Sprintf("Token(%s, %d)", t.Unit, t.Pos)
	default:
		return fmt.Sprintf("Token(eof, %d)", t.Pos)
	}
}

// TokenKind is the coarse classification used in format errors: a grammar
// slot is an operator, a value (number or now), or a unit. KindNone stands
// for end of input.
type TokenKind int

const (
	KindNone TokenKind = iota
	KindOperator
	KindValue
	KindUnit
)

func (k TokenKind) String() string {
	switch k {
	case KindOperator:
		return "operator"
	case KindValue:
		return "number or now"
	case KindUnit:
		return "unit"
	default:
		return "nothing"
	}
}

// Kind maps the token onto the grammar slot it can fill.
func (t Token) Kind() TokenKind {
	switch t.Type {
	case TOKEN_NOW, TOKEN_NUMBER:
		return KindValue
	case TOKEN_PLUS, TOKEN_MINUS, TOKEN_SLASH:
		return KindOperator
	case TOKEN_UNIT:
		return KindUnit
	default:
		return KindNone
	}
}
