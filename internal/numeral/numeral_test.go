package numeral

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLegalNumeral(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{
			name:   "zero amount",
			amount: "0",
			want:   "零元整",
		},
		{
			name:   "simple amount with no decimal",
			amount: "100",
			want:   "壹佰元整",
		},
		{
			name:   "amount with jiao",
			amount: "100.5",
			want:   "壹佰元伍角",
		},
		{
			name:   "amount with jiao and fen",
			amount: "123.56",
			want:   "壹佰贰拾叁元伍角陆分",
		},
		{
			name:   "fen only after integer needs zero bridge",
			amount: "1000.08",
			want:   "壹仟元零捌分",
		},
		{
			name:   "one hundred million exact",
			amount: "100000000",
			want:   "壹亿元整",
		},
		{
			name:   "pending zeros bridging a group boundary",
			amount: "100200.00",
			want:   "壹拾万零贰佰元整",
		},
		{
			name:   "fully zero middle group drops its big unit",
			amount: "100002000",
			want:   "壹亿零贰仟元整",
		},
		{
			name:   "ten thousand",
			amount: "10000",
			want:   "壹万元整",
		},
		{
			name:   "interior zero run collapses to one zero",
			amount: "100001",
			want:   "壹拾万零壹元整",
		},
		{
			name:   "jiao only without integer part",
			amount: "0.5",
			want:   "伍角",
		},
		{
			name:   "fen only without integer part has no zero bridge",
			amount: "0.05",
			want:   "伍分",
		},
		{
			name:   "trillion group",
			amount: "1000000000000",
			want:   "壹兆元整",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)

			got, err := ToLegalNumeral(amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToLegalNumeralOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{name: "negative amount", amount: "-1"},
		{name: "ceiling", amount: "1000000000000000"},
		{name: "above ceiling", amount: "1000000000000001.50"},
		{name: "beyond int64 cents range", amount: "184467440737095516.16"},
		{name: "rounds up onto ceiling", amount: "999999999999999.999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)

			got, convErr := ToLegalNumeral(amount)
			assert.ErrorIs(t, convErr, ErrOutOfRange)
			assert.Empty(t, got)
		})
	}
}

func TestMustLegalNumeralDegradesToEmpty(t *testing.T) {
	assert.Equal(t, "", MustLegalNumeral(decimal.NewFromInt(-5)))
	assert.Equal(t, "壹佰元整", MustLegalNumeral(decimal.NewFromInt(100)))
}

func TestToLegalNumeralJustBelowCeiling(t *testing.T) {
	amount, err := decimal.NewFromString("999999999999999")
	require.NoError(t, err)

	got, err := ToLegalNumeral(amount)
	require.NoError(t, err)
	assert.Equal(t, "玖佰玖拾玖兆玖仟玖佰玖拾玖亿玖仟玖佰玖拾玖万玖仟玖佰玖拾玖元整", got)
}
