package reltime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	addNow := Step{Op: OpAdd, Value: Value{Now: true}}

	tests := []struct {
		input string
		want  []Step
	}{
		{input: "now", want: []Step{addNow}},
		{input: "+now", want: []Step{addNow}},
		{input: "  now  ", want: []Step{addNow}},
		{
			input: "now+1y",
			want: []Step{
				addNow,
				{Op: OpAdd, Value: Value{Number: 1}, Unit: UnitYear},
			},
		},
		{
			input: "-5d+now",
			want: []Step{
				{Op: OpSub, Value: Value{Number: 5}, Unit: UnitDay},
				addNow,
			},
		},
		{
			input: "+1s+now",
			want: []Step{
				{Op: OpAdd, Value: Value{Number: 1}, Unit: UnitSecond},
				addNow,
			},
		},
		{
			input: "now/w",
			want: []Step{
				addNow,
				{Op: OpFloor, Unit: UnitWeek},
			},
		},
		{
			input: "now-now",
			want:  []Step{addNow, {Op: OpSub, Value: Value{Now: true}}},
		},
		{
			input: "now+0y-0m+0s",
			want: []Step{
				addNow,
				{Op: OpAdd, Value: Value{Number: 0}, Unit: UnitYear},
				{Op: OpSub, Value: Value{Number: 0}, Unit: UnitMinute},
				{Op: OpAdd, Value: Value{Number: 0}, Unit: UnitSecond},
			},
		},
		{
			// A floor can stand on its own: it rounds the zero accumulator.
			input: "/d",
			want:  []Step{{Op: OpFloor, Unit: UnitDay}},
		},
		{input: "", want: nil},
		{input: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Steps(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Steps(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestStepsInvalidFormat(t *testing.T) {
	tests := []struct {
		input    string
		pos      int
		expected TokenKind
		found    TokenKind
	}{
		{"1d-now", 0, KindOperator, KindValue}, // bare leading quantity
		{"now 5d", 4, KindOperator, KindValue},
		{"now now", 4, KindOperator, KindValue},
		{"y", 0, KindOperator, KindUnit},
		{"now+", 4, KindValue, KindNone},   // operator at end of input
		{"now+5", 5, KindUnit, KindNone},   // number at end of input
		{"now+y", 4, KindValue, KindUnit},  // unit where a value belongs
		{"now++1d", 4, KindValue, KindOperator},
		{"now/5d", 4, KindUnit, KindValue}, // floors take no quantity
		{"now/", 4, KindUnit, KindNone},
		{"/5d", 1, KindUnit, KindValue},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Steps(tt.input)
			var fmtErr *InvalidFormatError
			require.ErrorAs(t, err, &fmtErr)
			assert.Equal(t, tt.pos, fmtErr.Pos)
			assert.Equal(t, tt.expected, fmtErr.Expected)
			assert.Equal(t, tt.found, fmtErr.Found)
		})
	}
}

func TestParserErrorIsSticky(t *testing.T) {
	p := NewParser("now+1x")

	step, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, step)

	_, err = p.Next()
	require.Error(t, err)

	_, again := p.Next()
	assert.Equal(t, err, again)
}

func TestParserPropagatesLexerErrors(t *testing.T) {
	_, err := Steps("now+4294967297y")
	var numErr *InvalidNumberError
	assert.ErrorAs(t, err, &numErr)

	_, err = Steps("now?1d")
	var charErr *InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, 3, charErr.Pos)
}

func TestStepString(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{Step{Op: OpAdd, Value: Value{Now: true}}, "add now"},
		{Step{Op: OpSub, Value: Value{Number: 5}, Unit: UnitDay}, "subtract 5 day"},
		{Step{Op: OpFloor, Unit: UnitWeek}, "floor week"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.step.String())
	}
}
