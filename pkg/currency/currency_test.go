package currency_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/SscSPs/pricebook_svc/pkg/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFloat_KeepsRawValue(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{name: "integral amount", value: 200},
		{name: "two fractional digits", value: 9999.99},
		{name: "more digits than the scale", value: 3950.123456},
		{name: "negative amount", value: -123.456},
		{name: "tiny fraction", value: 0.000001},
		{name: "largest double", value: math.MaxFloat64},
		{name: "smallest positive double", value: math.SmallestNonzeroFloat64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := currency.NewFloat(tt.value)
			assert.Equal(t, tt.value, c.Float64(), "construction must not round the stored amount")
			assert.Equal(t, currency.DefaultScale, c.Scale())
		})
	}
}

func TestCurrency_String_DefaultScale(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1, "1.00"},
		{9999.99, "9999.99"},
		{3950.123456, "3950.12"},
		{3950, "3950.00"},
		{0.1, "0.10"},
		{0.01, "0.01"},
		{0.001, "0.00"},
		{0.0001, "0.00"},
		{0.00001, "0.00"},
		{0.000001, "0.00"},
		{-100, "-100.00"},
		{-123.456, "-123.46"},
		{119996.25, "119996.25"},
		{1000000, "1000000.00"},
		{9999999.99999, "10000000.00"},
		{12340.56789, "12340.57"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.NewFloat(tt.value).String())
		})
	}
}

func TestCurrency_String_CustomScale(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		scale uint32
		want  string
	}{
		{name: "scale zero drops the point", value: 12.3456, scale: 0, want: "12"},
		{name: "scale one", value: 12.3456, scale: 1, want: "12.3"},
		{name: "scale three", value: 12.3456, scale: 3, want: "12.346"},
		{name: "scale six pads zeros", value: 12.34, scale: 6, want: "12.340000"},
		{name: "scale zero rounds away from zero", value: 12.5, scale: 0, want: "13"},
		{name: "negative at scale four", value: -1.5, scale: 4, want: "-1.5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.NewFloatWithScale(tt.value, tt.scale).String())
		})
	}
}

// Ties must round away from zero on the decimal the user typed, not on the
// binary approximation the float actually holds.
func TestCurrency_String_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{2.675, "2.68"},
		{-2.675, "-2.68"},
		{0.005, "0.01"},
		{-0.005, "-0.01"},
		{1.005, "1.01"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.NewFloat(tt.value).String())
		})
	}
}

func TestCurrency_SignPreservation(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{-100, "-100.00"},
		{-123.456, "-123.46"},
		{-0.005, "-0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := currency.NewFloat(tt.value).String()
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasPrefix(got, "-"))
			assert.Equal(t, 1, strings.Count(got, "-"), "exactly one minus sign")
		})
	}
}

func TestCurrency_Equal(t *testing.T) {
	a := currency.NewFloat(200)
	b := currency.NewFloat(200)
	assert.True(t, a.Equal(b))
	assert.True(t, a == b, "Currency must stay comparable")

	differentValue := currency.NewFloat(200.01)
	assert.False(t, a.Equal(differentValue))

	differentScale := currency.NewFloatWithScale(200, 3)
	assert.False(t, a.Equal(differentScale), "same amount at another scale is a different value")
}

func TestNewFloat_NonFiniteNormalizedToZero(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{name: "NaN", value: math.NaN()},
		{name: "positive infinity", value: math.Inf(1)},
		{name: "negative infinity", value: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := currency.NewFloat(tt.value)
			assert.Equal(t, float64(0), c.Float64())
			assert.Equal(t, "0.00", c.String())
		})
	}
}

func TestNewString(t *testing.T) {
	c, err := currency.NewString("3950.123456")
	require.NoError(t, err)
	assert.Equal(t, "3950.12", c.String())
	assert.Equal(t, currency.DefaultScale, c.Scale())

	_, err = currency.NewString("not-a-number")
	assert.Error(t, err)
}

func TestCurrency_Decimal(t *testing.T) {
	got := currency.NewFloat(12340.56789).Decimal()
	want := decimal.RequireFromString("12340.57")
	assert.True(t, got.Equal(want), "Decimal() = %s, want %s", got, want)
}

func TestCurrency_IsNegative(t *testing.T) {
	assert.True(t, currency.NewFloat(-0.01).IsNegative())
	assert.False(t, currency.NewFloat(0).IsNegative())
	assert.False(t, currency.NewFloat(19.99).IsNegative())
}

func TestCurrency_JSON(t *testing.T) {
	t.Run("marshals canonical text", func(t *testing.T) {
		out, err := json.Marshal(currency.NewFloat(9999999.99999))
		require.NoError(t, err)
		assert.Equal(t, `"10000000.00"`, string(out))
	})

	t.Run("unmarshals from number", func(t *testing.T) {
		var c currency.Currency
		require.NoError(t, json.Unmarshal([]byte(`123.456`), &c))
		assert.Equal(t, "123.46", c.String())
	})

	t.Run("unmarshals from string", func(t *testing.T) {
		var c currency.Currency
		require.NoError(t, json.Unmarshal([]byte(`"42.1"`), &c))
		assert.Equal(t, "42.10", c.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var c currency.Currency
		assert.Error(t, json.Unmarshal([]byte(`"so much money"`), &c))
	})
}
