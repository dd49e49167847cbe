package reltime

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// EOT is the sentinel rune reported by character errors when the input
// ends in the middle of a `now` literal.
const EOT = '\x03'

// Lexer is a pull cursor over the raw expression text. Each Next call
// yields the following token, skipping whitespace; the token stream ends
// with TOKEN_EOF.
type Lexer struct {
	input string
	pos   int
}

// NewLexer returns a lexer positioned at the start of input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next scans and returns the next token.
func (l *Lexer) Next() (Token, error) {
	// Skip whitespace
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += size
	}

	if l.pos >= len(l.input) {
		return Token{Type: TOKEN_EOF, Pos: l.pos}, nil
	}

	start := l.pos
	ch := l.input[l.pos]

	switch {
	case isDigit(ch):
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
		literal := l.input[start:l.pos]
		n, err := strconv.ParseUint(literal, 10, 32)
		if err != nil {
			return Token{}, &InvalidNumberError{Literal: literal, Err: err}
		}
		return Token{Type: TOKEN_NUMBER, Pos: start, Number: uint32(n)}, nil

	case ch == 'n':
		l.pos++
		if err := l.expect('o'); err != nil {
			return Token{}, err
		}
		if err := l.expect('w'); err != nil {
			return Token{}, err
		}
		return Token{Type: TOKEN_NOW, Pos: start}, nil

	case ch == '+':
		l.pos++
		return Token{Type: TOKEN_PLUS, Pos: start}, nil

	case ch == '-':
		l.pos++
		return Token{Type: TOKEN_MINUS, Pos: start}, nil

	case ch == '/':
		l.pos++
		return Token{Type: TOKEN_SLASH, Pos: start}, nil
	}

	if u, ok := lookupUnit(ch); ok {
		l.pos++
		return Token{Type: TOKEN_UNIT, Pos: start, Unit: u}, nil
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return Token{}, &InvalidCharacterError{Pos: start, Char: r}
}

// expect consumes the next byte of a `now` literal, failing on any
// deviation. End of input is reported as the EOT sentinel.
func (l *Lexer) expect(want byte) error {
	if l.pos >= len(l.input) {
		return &InvalidCharacterError{Pos: l.pos, Char: EOT}
	}
	if l.input[l.pos] != want {
		r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
		return &InvalidCharacterError{Pos: l.pos, Char: r}
	}
	l.pos++
	return nil
}

// Tokens scans the whole input into a token slice, stopping at the first
// error. The terminating TOKEN_EOF is not included.
func Tokens(input string) ([]Token, error) {
	lex := NewLexer(input)
	var tokens []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TOKEN_EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
