package reltime

import "fmt"

// Operator selects what a step does to the accumulator.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpFloor
)

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	default:
		return "floor"
	}
}

// Value is a step operand: either the reference instant or an unsigned
// count of units.
type Value struct {
	Now    bool
	Number uint32
}

// Step is one parsed operation. Unit is meaningful for floors and for
// number-valued adds and subtracts; a now-valued step carries no unit.
type Step struct {
	Op    Operator
	Value Value
	Unit  Unit
}

func (s Step) String() string {
	switch {
	case s.Op == OpFloor:
		return fmt.Sprintf("floor %s", s.Unit)
	case s.Value.Now:
		return fmt.Sprintf("%s now", s.Op)
	default:
		return fmt.Sprintf("%s %d %s", s.Op, s.Value.Number, s.Unit)
	}
}

// Parser groups the token stream into steps. Each Next call yields one
// step; nil marks the end of the expression. Only a `now` may open an
// expression without an explicit operator (the implicit add of the
// reference instant); every other step starts with +, - or /.
type Parser struct {
	lex    *Lexer
	first  bool
	peeked *Token
	err    error
}

// NewParser returns a parser over the expression text.
func NewParser(input string) *Parser {
	return &Parser{lex: NewLexer(input), first: true}
}

func (p *Parser) peek() (Token, error) {
	if p.err != nil {
		return Token{}, p.err
	}
	if p.peeked == nil {
		tok, err := p.lex.Next()
		if err != nil {
			p.err = err
			return Token{}, err
		}
		p.peeked = &tok
	}
	return *p.peeked, nil
}

func (p *Parser) advance() (Token, error) {
	tok, err := p.peek()
	p.peeked = nil
	return tok, err
}

// Next returns the next step, or nil at the end of the expression.
func (p *Parser) Next() (*Step, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	if p.first {
		p.first = false
		switch tok.Type {
		case TOKEN_NOW:
			p.advance() // consume 'now'
			return &Step{Op: OpAdd, Value: Value{Now: true}}, nil
		case TOKEN_NUMBER:
			// A bare leading quantity has no reference to apply to.
			return nil, p.fail(&InvalidFormatError{Pos: tok.Pos, Expected: KindOperator, Found: KindValue})
		}
	}

	if tok.Type == TOKEN_EOF {
		return nil, nil
	}

	var op Operator
	switch tok.Type {
	case TOKEN_PLUS:
		op = OpAdd
	case TOKEN_MINUS:
		op = OpSub
	case TOKEN_SLASH:
		op = OpFloor
	default:
		return nil, p.fail(&InvalidFormatError{Pos: tok.Pos, Expected: KindOperator, Found: tok.Kind()})
	}
	p.advance() // consume the operator

	if op == OpFloor {
		unit, err := p.advance()
		if err != nil {
			return nil, err
		}
		if unit.Type != TOKEN_UNIT {
			return nil, p.fail(&InvalidFormatError{Pos: unit.Pos, Expected: KindUnit, Found: unit.Kind()})
		}
		return &Step{Op: OpFloor, Unit: unit.Unit}, nil
	}

	val, err := p.advance()
	if err != nil {
		return nil, err
	}
	switch val.Type {
	case TOKEN_NOW:
		return &Step{Op: op, Value: Value{Now: true}}, nil
	case TOKEN_NUMBER:
		unit, err := p.advance()
		if err != nil {
			return nil, err
		}
		if unit.Type != TOKEN_UNIT {
			return nil, p.fail(&InvalidFormatError{Pos: unit.Pos, Expected: KindUnit, Found: unit.Kind()})
		}
		return &Step{Op: op, Value: Value{Number: val.Number}, Unit: unit.Unit}, nil
	default:
		return nil, p.fail(&InvalidFormatError{Pos: val.Pos, Expected: KindValue, Found: val.Kind()})
	}
}

func (p *Parser) fail(err error) error {
	p.err = err
	return err
}

// Steps parses the whole expression into a step slice, stopping at the
// first error.
func Steps(input string) ([]Step, error) {
	p := NewParser(input)
	var steps []Step
	for {
		step, err := p.Next()
		if err != nil {
			return nil, err
		}
		if step == nil {
			return steps, nil
		}
		steps = append(steps, *step)
	}
}
