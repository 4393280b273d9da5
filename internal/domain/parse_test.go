package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLine = "TN\t1428300000000\tdn3msvv0wynb\t93.0\t0.0\t100.0\t1.0\t95644.0\t277.58716"

func TestParse(t *testing.T) {
	var p Parser

	t.Run("valid observation line", func(t *testing.T) {
		obs, coerced, err := p.Parse(sampleLine)

		require.NoError(t, err)
		assert.Zero(t, coerced)
		assert.Equal(t, "TN", obs.StateCode)
		assert.Equal(t, int64(1428300000), obs.Timestamp)
		assert.Equal(t, "dn3msvv0wynb", obs.Geohash)
		assert.Equal(t, 93.0, obs.Humidity)
		assert.Equal(t, 0.0, obs.SnowIndicator)
		assert.Equal(t, 100.0, obs.CloudCover)
		assert.Equal(t, 1.0, obs.LightningIndicator)
		assert.Equal(t, 95644.0, obs.Pressure)
		assert.InDelta(t, 39.986888, obs.TemperatureF, 1e-6)
	})

	t.Run("boiling point of water converts exactly", func(t *testing.T) {
		obs, _, err := p.Parse("CA\t0\tgeo\t0\t0\t0\t0\t0\t373.15")

		require.NoError(t, err)
		assert.InDelta(t, 212.0, obs.TemperatureF, 1e-9)
	})

	t.Run("timestamp truncates toward zero", func(t *testing.T) {
		obs, _, err := p.Parse("CA\t1999\tgeo\t0\t0\t0\t0\t0\t0")

		require.NoError(t, err)
		assert.Equal(t, int64(1), obs.Timestamp)
	})

	t.Run("too few fields", func(t *testing.T) {
		_, _, err := p.Parse("CA\t1428300000000\tgeo\t93.0\t0.0")

		require.ErrorIs(t, err, ErrMalformedLine)
	})

	t.Run("empty line", func(t *testing.T) {
		_, _, err := p.Parse("")

		require.ErrorIs(t, err, ErrMalformedLine)
	})

	t.Run("extra trailing fields are ignored", func(t *testing.T) {
		obs, coerced, err := p.Parse(sampleLine + "\textra\tfields")

		require.NoError(t, err)
		assert.Zero(t, coerced)
		assert.Equal(t, "TN", obs.StateCode)
	})

	t.Run("unparseable numeric field coerces to zero", func(t *testing.T) {
		obs, coerced, err := p.Parse("WA\t1428300000000\tgeo\tN/A\t0.0\t50.0\t0.0\t101325.0\t280.0")

		require.NoError(t, err)
		assert.Equal(t, 1, coerced)
		assert.Equal(t, 0.0, obs.Humidity)
		assert.Equal(t, 50.0, obs.CloudCover)
	})

	t.Run("unparseable timestamp coerces to zero", func(t *testing.T) {
		obs, coerced, err := p.Parse("WA\tlast tuesday\tgeo\t10.0\t0.0\t50.0\t0.0\t101325.0\t280.0")

		require.NoError(t, err)
		assert.Equal(t, 1, coerced)
		assert.Equal(t, int64(0), obs.Timestamp)
	})

	t.Run("unparseable temperature still converts the zero", func(t *testing.T) {
		// atof-style coercion feeds 0 K into the conversion, matching the
		// historical tooling: the record lands at -459.67F.
		obs, coerced, err := p.Parse("WA\t1428300000000\tgeo\t10.0\t0.0\t50.0\t0.0\t101325.0\tbroken")

		require.NoError(t, err)
		assert.Equal(t, 1, coerced)
		assert.InDelta(t, -459.67, obs.TemperatureF, 1e-9)
	})
}

func TestParse_Strict(t *testing.T) {
	p := Parser{Strict: true}

	t.Run("rejects record with unparseable field", func(t *testing.T) {
		_, coerced, err := p.Parse("WA\t1428300000000\tgeo\tN/A\t0.0\t50.0\t0.0\t101325.0\t280.0")

		require.ErrorIs(t, err, ErrUnparseableField)
		assert.Equal(t, 1, coerced)
	})

	t.Run("accepts clean record", func(t *testing.T) {
		obs, coerced, err := p.Parse(sampleLine)

		require.NoError(t, err)
		assert.Zero(t, coerced)
		assert.Equal(t, "TN", obs.StateCode)
	})

	t.Run("malformed line reported as malformed, not unparseable", func(t *testing.T) {
		_, _, err := p.Parse("WA\tnot-a-number")

		require.ErrorIs(t, err, ErrMalformedLine)
	})
}
