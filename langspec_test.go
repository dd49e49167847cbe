package reltime

// The tests in this file are tied to LANGUAGE.md. If one of them breaks
// the documentation needs an update, not just the code.

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageExamples(t *testing.T) {
	now := refTime() // 2023-08-21T05:40:00, a Monday

	tests := []struct {
		expr string
		want string
	}{
		{"now+1d", "2023-08-22T05:40:00"},
		{"now-2h", "2023-08-21T03:40:00"},
		{"now/d", "2023-08-21T00:00:00"},
		{"now+1d/d", "2023-08-22T00:00:00"},
		{"now-1y/M", "2022-08-01T00:00:00"},
		{"-5d+now", "2023-08-16T05:40:00"},
		{"now + 1y - 1M + 3w - 2d + 4h - 30m + 15s", "2024-08-09T09:10:15"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseWithNow(tt.expr, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(stampFormat))
		})
	}

	got, err := ParseWithNow("now", now)
	require.NoError(t, err)
	assert.True(t, got.Equal(now))
}

func TestLanguageRules(t *testing.T) {
	now := refTime()

	t.Run("whitespace anywhere between tokens", func(t *testing.T) {
		a, err := ParseWithNow("now + 1 d", now)
		require.NoError(t, err)
		b, err := ParseWithNow("now+1d", now)
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})

	t.Run("capital M is month", func(t *testing.T) {
		month, err := ParseWithNow("now+1M", now)
		require.NoError(t, err)
		minute, err := ParseWithNow("now+1m", now)
		require.NoError(t, err)
		assert.Equal(t, "2023-09-21T05:40:00", month.Format(stampFormat))
		assert.Equal(t, "2023-08-21T05:41:00", minute.Format(stampFormat))
	})

	t.Run("month arithmetic clamps", func(t *testing.T) {
		jan31 := time.Date(2023, time.January, 31, 12, 0, 0, 0, time.UTC)
		got, err := ParseWithNow("now+1M", jan31)
		require.NoError(t, err)
		assert.Equal(t, "2023-02-28T12:00:00", got.Format(stampFormat))
	})

	t.Run("year arithmetic keeps the date", func(t *testing.T) {
		feb29 := time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)
		got, err := ParseWithNow("now+1y", feb29)
		require.NoError(t, err)
		assert.Equal(t, "2025-02-28T12:00:00", got.Format(stampFormat))
	})

	t.Run("zero count is a no-op", func(t *testing.T) {
		got, err := ParseWithNow("now+0d", now)
		require.NoError(t, err)
		assert.Equal(t, "2023-08-21T05:40:00", got.Format(stampFormat))
	})

	t.Run("leading bare quantity is a format error", func(t *testing.T) {
		_, err := ParseWithNow("1d", now)
		var fmtErr *InvalidFormatError
		require.ErrorAs(t, err, &fmtErr)
		assert.Equal(t, 0, fmtErr.Pos)
	})
}

func TestLanguageErrorMessages(t *testing.T) {
	now := refTime()

	tests := []struct {
		expr string
		msg  string
	}{
		{"now+1d^", `unexpected character '^' at position 6`},
		{"now+4294967296s", `number 4294967296 is not valid: strconv.ParseUint: parsing "4294967296": value out of range`},
		{"now+", "unexpected token at position 4: expected number or now, found nothing"},
		{"now/5d", "unexpected token at position 4: expected unit, found number or now"},
		{"1d", "unexpected token at position 0: expected operator, found number or now"},
	}

	for _, tt := range tests {
		_, err := ParseWithNow(tt.expr, now)
		require.Error(t, err, tt.expr)
		assert.Equal(t, tt.msg, err.Error(), tt.expr)
	}
}
