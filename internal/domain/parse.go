package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// fieldCount is the number of tab-separated fields in a TDV observation line.
const fieldCount = 9

var (
	// ErrMalformedLine marks a line with fewer than nine tab-separated fields.
	ErrMalformedLine = errors.New("malformed observation line")

	// ErrUnparseableField marks a record rejected in strict mode because a
	// numeric field failed to parse.
	ErrUnparseableField = errors.New("unparseable numeric field")
)

// Parser converts raw TDV lines into Observations.
//
// The zero value is the production parser: unparseable numeric fields are
// coerced to zero and reported through the coerced-field count, matching the
// historical exporter tooling.
type Parser struct {
	// Strict rejects a record containing any unparseable numeric field
	// instead of coercing it to zero.
	Strict bool
}

// Parse converts one line into an Observation. It returns the number of
// numeric fields that failed to parse and were coerced to zero; in strict
// mode any such field fails the whole record with ErrUnparseableField.
//
// Parse is a pure function of its input and is safe for concurrent use.
func (p Parser) Parse(line string) (Observation, int, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < fieldCount {
		return Observation{}, 0, fmt.Errorf("%w: got %d of %d fields", ErrMalformedLine, len(fields), fieldCount)
	}

	coerced := 0
	floatField := func(s string) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			coerced++
			return 0
		}
		return v
	}

	millis, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		coerced++
		millis = 0
	}

	obs := Observation{
		StateCode:          fields[0],
		Timestamp:          millis / 1000,
		Geohash:            strings.TrimSpace(fields[2]),
		Humidity:           floatField(fields[3]),
		SnowIndicator:      floatField(fields[4]),
		CloudCover:         floatField(fields[5]),
		LightningIndicator: floatField(fields[6]),
		Pressure:           floatField(fields[7]),
		TemperatureF:       kelvinToFahrenheit(floatField(fields[8])),
	}

	if p.Strict && coerced > 0 {
		return Observation{}, coerced, fmt.Errorf("%w: %d field(s) for state %q", ErrUnparseableField, coerced, obs.StateCode)
	}
	return obs, coerced, nil
}

// kelvinToFahrenheit applies F = K * 1.8 - 459.67, the only temperature
// conversion in the system.
func kelvinToFahrenheit(k float64) float64 {
	return k*1.8 - 459.67
}
