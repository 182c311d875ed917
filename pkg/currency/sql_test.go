package currency_test

import (
	"database/sql/driver"
	"math"
	"testing"

	"github.com/SscSPs/pricebook_svc/pkg/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency_Value_IsRawFloat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{name: "fractional", value: 0.10},
		{name: "integral", value: 200},
		{name: "negative", value: -123.456},
		{name: "beyond display precision", value: 9999999.99999},
		{name: "largest double", value: math.MaxFloat64},
		{name: "smallest positive double", value: math.SmallestNonzeroFloat64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := currency.NewFloat(tt.value).Value()
			require.NoError(t, err)
			assert.Equal(t, driver.Value(tt.value), v, "no rounding on the write path")
		})
	}
}

func TestCurrency_ValueScanRoundTrip(t *testing.T) {
	values := []float64{
		0, 0.10, 200, -200, 0.000001, -123.456, 119996.25,
		9999999.99999, math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64,
	}

	for _, value := range values {
		v, err := currency.NewFloat(value).Value()
		require.NoError(t, err)

		var got currency.Currency
		require.NoError(t, got.Scan(v))
		assert.Equal(t, value, got.Float64(), "round trip must be lossless for %v", value)
		assert.Equal(t, currency.DefaultScale, got.Scale(), "decoded amounts always carry the default scale")
	}
}

func TestCurrency_Scan(t *testing.T) {
	t.Run("float64 column value", func(t *testing.T) {
		var c currency.Currency
		require.NoError(t, c.Scan(float64(3950.123456)))
		assert.Equal(t, 3950.123456, c.Float64())
		assert.Equal(t, "3950.12", c.String())
	})

	t.Run("integer column value widens", func(t *testing.T) {
		var c currency.Currency
		require.NoError(t, c.Scan(int64(3950)))
		assert.Equal(t, float64(3950), c.Float64())
		assert.Equal(t, "3950.00", c.String())
	})

	t.Run("NULL is a schema mismatch", func(t *testing.T) {
		var c currency.Currency
		err := c.Scan(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NullCurrency")
	})

	t.Run("textual column value is rejected", func(t *testing.T) {
		var c currency.Currency
		assert.Error(t, c.Scan("9999.99"), "decimal text must be cast by the engine, never parsed here")
		assert.Error(t, c.Scan([]byte("9999.99")))
	})

	t.Run("bool column value is rejected", func(t *testing.T) {
		var c currency.Currency
		assert.Error(t, c.Scan(true))
	})
}

func TestNullCurrency_Scan(t *testing.T) {
	t.Run("NULL yields no value and no error", func(t *testing.T) {
		n := currency.NullCurrency{Currency: currency.NewFloat(1), Valid: true}
		require.NoError(t, n.Scan(nil))
		assert.False(t, n.Valid)
		assert.Equal(t, currency.Currency{}, n.Currency, "the constructor must not run for NULL")
	})

	t.Run("present value decodes like Currency", func(t *testing.T) {
		var n currency.NullCurrency
		require.NoError(t, n.Scan(float64(0.10)))
		assert.True(t, n.Valid)
		assert.Equal(t, "0.10", n.Currency.String())
	})

	t.Run("decode failure propagates", func(t *testing.T) {
		var n currency.NullCurrency
		assert.Error(t, n.Scan("0.10"))
	})
}

func TestNullCurrency_Value(t *testing.T) {
	var empty currency.NullCurrency
	v, err := empty.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	full := currency.NullCurrency{Currency: currency.NewFloat(19.99), Valid: true}
	v, err = full.Value()
	require.NoError(t, err)
	assert.Equal(t, driver.Value(19.99), v)
}
