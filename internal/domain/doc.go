// Package domain models NOAA tab-delimited climate observation (TDV) data.
//
// # Data Source
//
// Observations originate from National Oceanic and Atmospheric Administration
// (NOAA) surface datasets, exported as tab-delimited value files with one
// observation per newline-terminated line:
//
//	TN	1428300000000	dn3msvv0wynb	93.0	0.0	100.0	0.0	95644.0	277.58716
//
// Fields, in order:
//
//	state code    two-letter US state abbreviation (e.g. CA, TX)
//	timestamp     observation time, UNIX milliseconds
//	geolocation   geohash string (carried through, unused by aggregation)
//	humidity      0 - 100 %
//	snow          1.0 = snow cover present, 0.0 = none
//	cloud cover   0 - 100 %
//	lightning     1.0 = lightning strike, 0.0 = none
//	pressure      surface pressure in Pa (carried through, unused by aggregation)
//	temperature   surface temperature in Kelvin
//
// # Parsing Conventions
//
// The upstream exporter is lossy: numeric columns occasionally contain
// non-numeric garbage. The historical tooling coerced such values to zero
// rather than dropping the row, and downstream consumers depend on that
// accounting. [Parser] keeps coerce-to-zero as the default, named policy;
// strict mode is available for pipelines that prefer rejecting the record.
// See [Parser.Strict].
//
// Lines with fewer than nine tab-separated fields (truncated rows, trailing
// blank lines) are malformed and carry no data. Extra trailing fields are
// ignored, matching the historical tokenizer.
//
// # Unit Conversions
//
// Temperature is converted from Kelvin to Fahrenheit at parse time:
//
//	F = K * 1.8 - 459.67
//
// Timestamps are truncated from milliseconds to whole seconds. Both
// conversions are applied exactly once, in [Parser.Parse]; no other unit
// paths exist.
package domain
