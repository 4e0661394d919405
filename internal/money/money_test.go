package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Three decimals", func(t *testing.T) {
		a, err := Parse("21.000")
		require.NoError(t, err)
		assert.Equal(t, int64(21000), a.Millimes())
	})

	t.Run("Short fraction is padded", func(t *testing.T) {
		a, err := Parse("5.5")
		require.NoError(t, err)
		assert.Equal(t, int64(5500), a.Millimes())
	})

	t.Run("No fraction", func(t *testing.T) {
		a, err := Parse("10")
		require.NoError(t, err)
		assert.Equal(t, int64(10000), a.Millimes())
	})

	t.Run("Negative", func(t *testing.T) {
		a, err := Parse("-0.250")
		require.NoError(t, err)
		assert.Equal(t, int64(-250), a.Millimes())
	})

	t.Run("Too many decimals", func(t *testing.T) {
		_, err := Parse("1.0001")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := Parse("abc")
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = Parse("")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "21.000", FromMillimes(21000).String())
	assert.Equal(t, "0.000", FromMillimes(0).String())
	assert.Equal(t, "0.050", FromMillimes(50).String())
	assert.Equal(t, "-3.100", FromMillimes(-3100).String())
}

func TestMulQty(t *testing.T) {
	// 5.500 * 2 = 11.000, no drift
	a := FromMillimes(5500)
	assert.Equal(t, "11.000", a.MulQty(2).String())
}

func TestJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(FromMillimes(10000))
	require.NoError(t, err)
	assert.Equal(t, `"10.000"`, string(raw))

	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`"5.500"`), &a))
	assert.Equal(t, int64(5500), a.Millimes())
}
