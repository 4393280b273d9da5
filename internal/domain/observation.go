package domain

// Observation is one parsed TDV line with unit conversions already applied.
type Observation struct {
	StateCode string
	// Timestamp is the observation time in whole UNIX seconds, truncated
	// from the millisecond value on the wire.
	Timestamp int64
	Geohash   string
	Humidity  float64
	// SnowIndicator and LightningIndicator are nominally 0 or 1 but are
	// carried as raw floats; aggregation sums them as-is.
	SnowIndicator      float64
	CloudCover         float64
	LightningIndicator float64
	Pressure           float64
	// TemperatureF is the surface temperature in Fahrenheit, converted
	// from the Kelvin wire value.
	TemperatureF float64
}
