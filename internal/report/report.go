// Package report turns finalized accumulators into the per-state climate
// summary: derived averages for presentation plus the text rendering the
// historical tooling produced.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/couchcryptid/climate-summary/internal/aggregate"
)

// StateSummary is the read-only view of one state's finalized accumulator,
// with averages already derived. The JSON form is what the Kafka sink
// publishes.
type StateSummary struct {
	Code             string    `json:"code"`
	RecordCount      uint64    `json:"record_count"`
	AvgHumidity      float64   `json:"avg_humidity"`
	AvgTemperature   float64   `json:"avg_temperature"`
	AvgCloudCover    float64   `json:"avg_cloud_cover"`
	MaxTemperature   float64   `json:"max_temperature"`
	MaxTemperatureAt time.Time `json:"max_temperature_at"`
	MinTemperature   float64   `json:"min_temperature"`
	MinTemperatureAt time.Time `json:"min_temperature_at"`
	LightningStrikes uint64    `json:"lightning_strikes"`
	SnowCoverRecords uint64    `json:"snow_cover_records"`
}

// Summary is the full report: one StateSummary per state in first-seen order.
type Summary struct {
	States      []StateSummary `json:"states"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Build derives a Summary from a finalized table. States with no folded
// records cannot occur in a table produced by the engine (accumulators are
// created alongside their first fold), but Build skips them anyway rather
// than divide by zero.
func Build(table *aggregate.Table) Summary {
	s := Summary{GeneratedAt: clock.Now().UTC()}
	for _, a := range table.All() {
		avgHumidity, ok := a.AvgHumidity()
		if !ok {
			continue
		}
		avgTemperature, _ := a.AvgTemperature()
		avgCloudCover, _ := a.AvgCloudCover()

		s.States = append(s.States, StateSummary{
			Code:             a.Code,
			RecordCount:      a.RecordCount,
			AvgHumidity:      avgHumidity,
			AvgTemperature:   avgTemperature,
			AvgCloudCover:    avgCloudCover,
			MaxTemperature:   a.MaxTemperature,
			MaxTemperatureAt: time.Unix(a.MaxTemperatureAt, 0).UTC(),
			MinTemperature:   a.MinTemperature,
			MinTemperatureAt: time.Unix(a.MinTemperatureAt, 0).UTC(),
			LightningStrikes: a.LightningCount(),
			SnowCoverRecords: a.SnowCoverCount(),
		})
	}
	return s
}

// Render writes the summary in the historical report layout, one block per
// state in first-seen order.
func Render(w io.Writer, s Summary) error {
	codes := make([]string, len(s.States))
	for i, st := range s.States {
		codes[i] = st.Code
	}
	if _, err := fmt.Fprintf(w, "States found: %s\n", strings.Join(codes, " ")); err != nil {
		return err
	}

	for _, st := range s.States {
		_, err := fmt.Fprintf(w,
			"-- State: %s --\n"+
				"Number of Records: %d\n"+
				"Average Humidity: %.1f%%\n"+
				"Average Temperature: %.1fF\n"+
				"Max Temperature: %.1fF\n"+
				"Max Temperature on: %s\n"+
				"Min Temperature: %.1fF\n"+
				"Min Temperature on: %s\n"+
				"Lightning Strikes: %d\n"+
				"Records with Snow Cover: %d\n"+
				"Average Cloud Cover: %.1f%%\n",
			st.Code,
			st.RecordCount,
			st.AvgHumidity,
			st.AvgTemperature,
			st.MaxTemperature,
			st.MaxTemperatureAt.Format(time.ANSIC),
			st.MinTemperature,
			st.MinTemperatureAt.Format(time.ANSIC),
			st.LightningStrikes,
			st.SnowCoverRecords,
			st.AvgCloudCover,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
