// Package aggregate maintains per-state running summaries of climate
// observations. A single pass over the input folds each observation into its
// state's Accumulator; the Table owns every Accumulator and preserves
// first-seen order for reporting.
package aggregate

import "github.com/couchcryptid/climate-summary/internal/domain"

// Extremum seeds. Any physically plausible Fahrenheit reading lies strictly
// between these, so the first folded record always sets both extrema.
const (
	initialMax = -1000.0
	initialMin = 1000.0
)

// Accumulator is the mutable running aggregate for one state code. It is
// created by Table.GetOrCreate and mutated only through Fold and Merge.
type Accumulator struct {
	Code        string
	RecordCount uint64

	TemperatureSum float64
	HumiditySum    float64
	CloudCoverSum  float64

	MaxTemperature   float64
	MaxTemperatureAt int64
	MinTemperature   float64
	MinTemperatureAt int64

	// Indicator fields are summed as raw floats, not guarded 0/1
	// increments. The count accessors truncate at read time, reproducing
	// the integer narrowing the historical tooling applied. A non-boolean
	// indicator value skews the tally the same way it always has.
	lightningSum float64
	snowCoverSum float64
}

func newAccumulator(code string) *Accumulator {
	return &Accumulator{
		Code:           code,
		MaxTemperature: initialMax,
		MinTemperature: initialMin,
	}
}

// Fold incorporates one observation. Extrema move only on strict
// comparisons, so the first record reaching an extreme value keeps both the
// value and its timestamp.
func (a *Accumulator) Fold(obs domain.Observation) {
	a.RecordCount++
	a.TemperatureSum += obs.TemperatureF
	a.HumiditySum += obs.Humidity
	a.CloudCoverSum += obs.CloudCover
	a.snowCoverSum += obs.SnowIndicator
	a.lightningSum += obs.LightningIndicator

	if obs.TemperatureF > a.MaxTemperature {
		a.MaxTemperature = obs.TemperatureF
		a.MaxTemperatureAt = obs.Timestamp
	}
	if obs.TemperatureF < a.MinTemperature {
		a.MinTemperature = obs.TemperatureF
		a.MinTemperatureAt = obs.Timestamp
	}
}

// Merge folds b into a. Provided every record in b was observed after every
// record in a, the result is identical to folding both record sequences into
// a single accumulator: strict comparisons keep a's extrema on ties.
func (a *Accumulator) Merge(b *Accumulator) {
	a.RecordCount += b.RecordCount
	a.TemperatureSum += b.TemperatureSum
	a.HumiditySum += b.HumiditySum
	a.CloudCoverSum += b.CloudCoverSum
	a.snowCoverSum += b.snowCoverSum
	a.lightningSum += b.lightningSum

	if b.MaxTemperature > a.MaxTemperature {
		a.MaxTemperature = b.MaxTemperature
		a.MaxTemperatureAt = b.MaxTemperatureAt
	}
	if b.MinTemperature < a.MinTemperature {
		a.MinTemperature = b.MinTemperature
		a.MinTemperatureAt = b.MinTemperatureAt
	}
}

// LightningCount is the lightning indicator sum truncated to a whole count.
func (a *Accumulator) LightningCount() uint64 { return uint64(a.lightningSum) }

// SnowCoverCount is the snow indicator sum truncated to a whole count.
func (a *Accumulator) SnowCoverCount() uint64 { return uint64(a.snowCoverSum) }

// AvgTemperature returns the mean Fahrenheit temperature, or false when no
// records have been folded.
func (a *Accumulator) AvgTemperature() (float64, bool) {
	if a.RecordCount == 0 {
		return 0, false
	}
	return a.TemperatureSum / float64(a.RecordCount), true
}

// AvgHumidity returns the mean humidity percentage, or false when no records
// have been folded.
func (a *Accumulator) AvgHumidity() (float64, bool) {
	if a.RecordCount == 0 {
		return 0, false
	}
	return a.HumiditySum / float64(a.RecordCount), true
}

// AvgCloudCover returns the mean cloud cover percentage, or false when no
// records have been folded.
func (a *Accumulator) AvgCloudCover() (float64, bool) {
	if a.RecordCount == 0 {
		return 0, false
	}
	return a.CloudCoverSum / float64(a.RecordCount), true
}
