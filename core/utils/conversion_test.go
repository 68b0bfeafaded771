package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 7, 7},
		{"Int64", int64(9), 9},
		{"Float", 3.9, 3},
		{"String", "12", 12},
		{"Bytes", []byte("5"), 5},
		{"Garbage", "abc", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "42", ToString(42))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool("TRUE"))
	assert.False(t, ToBool("0"))
	assert.False(t, ToBool(nil))
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Int", 4, "4"},
		{"Float", 2.5, "2.5"},
		{"String", " 10 ", "10"},
		{"Comma Separator", "3,75", "3.75"},
		{"Dot Thousands Comma Decimal", "1.234,5", "1234.5"},
		{"Comma Thousands Dot Decimal", "1,234.5", "1234.5"},
		{"Repeated Dot Grouping", "1.234.567", "1234567"},
		{"Repeated Comma Grouping", "2,500,000", "2500000"},
		{"Spaced Grouping", "1 234,5", "1234.5"},
		{"Negative", "-1.234,5", "-1234.5"},
		{"Decimal", decimal.RequireFromString("1.5"), "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDecimal(tt.in)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}

	for _, bad := range []any{nil, "", "  ", "ten", "1.2.3", "1,234,5.6.7", "12,34.5"} {
		_, err := ToDecimal(bad)
		assert.Error(t, err, "%v", bad)
	}
}
