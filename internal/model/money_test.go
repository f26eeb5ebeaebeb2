package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input   string
		want    Money
		wantErr bool
	}{
		{input: "1000", want: 10000000},
		{input: "1000.0000", want: 10000000},
		{input: "1.5", want: 15000},
		{input: " 2.25 ", want: 22500},
		{input: "0.0001", want: 1},
		{input: "0.00019", want: 1},
		{input: "-3.5", want: -35000},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "1.2.3", wantErr: true},
		{input: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "1000.0000", Money(10000000).String())
	assert.Equal(t, "0.0000", Money(0).String())
	assert.Equal(t, "0.0001", Money(1).String())
	assert.Equal(t, "-1.2500", Money(-12500).String())
}

func TestParseKind(t *testing.T) {
	for _, in := range []string{"deposit", "Deposit", "DEPOSIT", " deposit "} {
		kind, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, KindDeposit, kind)
	}

	kind, err := ParseKind("chargeback")
	require.NoError(t, err)
	assert.Equal(t, "chargeback", kind.String())

	_, err = ParseKind("transfer")
	assert.Error(t, err)
}

func TestMoneyAdd(t *testing.T) {
	sum, ok := Money(5).Add(-7)
	assert.True(t, ok)
	assert.Equal(t, Money(-2), sum)

	_, ok = Money(math.MaxInt64).Add(1)
	assert.False(t, ok)

	_, ok = Money(math.MinInt64).Add(-1)
	assert.False(t, ok)

	sum, ok = Money(math.MaxInt64 - 1).Add(1)
	assert.True(t, ok)
	assert.Equal(t, Money(math.MaxInt64), sum)
}

