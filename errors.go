package reltime

import "fmt"

// InvalidCharacterError reports an unrecognized character and the byte
// offset it was found at. End of input inside a `now` literal is reported
// as the EOT sentinel '\x03' at the end offset.
type InvalidCharacterError struct {
	Pos  int
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Pos)
}

// InvalidNumberError reports a digit run that does not fit an unsigned
// 32-bit integer. Err holds the strconv cause.
type InvalidNumberError struct {
	Literal string
	Err     error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("number %s is not valid: %v", e.Literal, e.Err)
}

func (e *InvalidNumberError) Unwrap() error { return e.Err }

// InvalidFormatError reports a grammar violation: the kind of token the
// parser expected at Pos against the kind it found. Found is KindNone when
// the input ended mid-step.
type InvalidFormatError struct {
	Pos      int
	Expected TokenKind
	Found    TokenKind
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("unexpected token at position %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

// InvalidTimestampError reports that the computed components do not
// correspond to a representable instant.
type InvalidTimestampError struct {
	Components TimeComponents
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("the computed date value is invalid: %+v", e.Components)
}
