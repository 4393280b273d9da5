package aggregate_test

import (
	"testing"

	"github.com/couchcryptid/climate-summary/internal/aggregate"
	"github.com/couchcryptid/climate-summary/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obsAt(tempF float64, ts int64) domain.Observation {
	return domain.Observation{StateCode: "CA", TemperatureF: tempF, Timestamp: ts}
}

func TestAccumulator_FirstFoldSetsBothExtrema(t *testing.T) {
	a := aggregate.NewTable().GetOrCreate("CA")

	a.Fold(obsAt(72.5, 100))

	assert.Equal(t, uint64(1), a.RecordCount)
	assert.Equal(t, 72.5, a.MaxTemperature)
	assert.Equal(t, int64(100), a.MaxTemperatureAt)
	assert.Equal(t, 72.5, a.MinTemperature)
	assert.Equal(t, int64(100), a.MinTemperatureAt)
}

func TestAccumulator_TwoRecordScenario(t *testing.T) {
	a := aggregate.NewTable().GetOrCreate("CA")

	a.Fold(obsAt(50.0, 1000))
	a.Fold(obsAt(60.0, 2000))

	assert.Equal(t, uint64(2), a.RecordCount)
	assert.Equal(t, 110.0, a.TemperatureSum)
	assert.Equal(t, 60.0, a.MaxTemperature)
	assert.Equal(t, int64(2000), a.MaxTemperatureAt)
	assert.Equal(t, 50.0, a.MinTemperature)
	assert.Equal(t, int64(1000), a.MinTemperatureAt)
	assert.GreaterOrEqual(t, a.MaxTemperature, a.MinTemperature)
}

func TestAccumulator_TieKeepsFirstTimestamp(t *testing.T) {
	t.Run("max", func(t *testing.T) {
		a := aggregate.NewTable().GetOrCreate("CA")
		a.Fold(obsAt(10.0, 1))
		a.Fold(obsAt(90.0, 2))
		a.Fold(obsAt(90.0, 3))

		assert.Equal(t, 90.0, a.MaxTemperature)
		assert.Equal(t, int64(2), a.MaxTemperatureAt)
	})

	t.Run("min", func(t *testing.T) {
		a := aggregate.NewTable().GetOrCreate("CA")
		a.Fold(obsAt(-5.0, 1))
		a.Fold(obsAt(-5.0, 2))
		a.Fold(obsAt(40.0, 3))

		assert.Equal(t, -5.0, a.MinTemperature)
		assert.Equal(t, int64(1), a.MinTemperatureAt)
	})

	t.Run("single value is both extrema regardless of later ties", func(t *testing.T) {
		a := aggregate.NewTable().GetOrCreate("CA")
		a.Fold(obsAt(33.0, 7))
		a.Fold(obsAt(33.0, 8))

		assert.Equal(t, int64(7), a.MaxTemperatureAt)
		assert.Equal(t, int64(7), a.MinTemperatureAt)
	})
}

func TestAccumulator_SumsAndAverages(t *testing.T) {
	a := aggregate.NewTable().GetOrCreate("CA")

	a.Fold(domain.Observation{StateCode: "CA", Humidity: 40, CloudCover: 10, TemperatureF: 50})
	a.Fold(domain.Observation{StateCode: "CA", Humidity: 60, CloudCover: 30, TemperatureF: 70})

	avgHumidity, ok := a.AvgHumidity()
	require.True(t, ok)
	assert.Equal(t, 50.0, avgHumidity)

	avgTemp, ok := a.AvgTemperature()
	require.True(t, ok)
	assert.Equal(t, 60.0, avgTemp)

	avgCloud, ok := a.AvgCloudCover()
	require.True(t, ok)
	assert.Equal(t, 20.0, avgCloud)
}

func TestAccumulator_AveragesUndefinedWithoutRecords(t *testing.T) {
	a := &aggregate.Accumulator{Code: "XX"}

	_, ok := a.AvgHumidity()
	assert.False(t, ok)
	_, ok = a.AvgTemperature()
	assert.False(t, ok)
	_, ok = a.AvgCloudCover()
	assert.False(t, ok)
}

func TestAccumulator_IndicatorSumsTruncateAtRead(t *testing.T) {
	a := aggregate.NewTable().GetOrCreate("CA")

	// The historical tooling sums indicator fields without checking they
	// are 0 or 1; fractional values skew the tally and the truncation
	// reproduces its integer narrowing.
	a.Fold(domain.Observation{StateCode: "CA", SnowIndicator: 0.5, LightningIndicator: 1})
	a.Fold(domain.Observation{StateCode: "CA", SnowIndicator: 0.5, LightningIndicator: 1})
	a.Fold(domain.Observation{StateCode: "CA", SnowIndicator: 0.5, LightningIndicator: 0})

	assert.Equal(t, uint64(1), a.SnowCoverCount())
	assert.Equal(t, uint64(2), a.LightningCount())
}

func TestAccumulator_MergeMatchesSequentialFold(t *testing.T) {
	first := []domain.Observation{obsAt(50, 1), obsAt(80, 2), obsAt(80, 3)}
	second := []domain.Observation{obsAt(80, 4), obsAt(20, 5)}

	want := aggregate.NewTable().GetOrCreate("CA")
	for _, o := range append(append([]domain.Observation{}, first...), second...) {
		want.Fold(o)
	}

	a := aggregate.NewTable().GetOrCreate("CA")
	for _, o := range first {
		a.Fold(o)
	}
	b := aggregate.NewTable().GetOrCreate("CA")
	for _, o := range second {
		b.Fold(o)
	}
	a.Merge(b)

	assert.Equal(t, want, a)
	// The 80F tie across the split keeps the first stream's timestamp.
	assert.Equal(t, int64(2), a.MaxTemperatureAt)
}
