// Command validate re-aggregates TDV observation files and checks the
// resulting accumulator table against the engine's own invariants: extrema
// ordering, record counts, and average ranges. It is a data integrity
// smoke-check for newly exported files before they are fed to dashboards.
//
// Usage:
//
//	go run ./cmd/validate data_tn.tdv data_wa.tdv
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/climate-summary/internal/aggregate"
	"github.com/couchcryptid/climate-summary/internal/domain"
	"github.com/couchcryptid/climate-summary/internal/observability"
	"github.com/couchcryptid/climate-summary/internal/pipeline"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s tdv_file1 tdv_file2 ... tdv_fileN\n", os.Args[0])
		os.Exit(2)
	}
	os.Exit(run(paths))
}

func run(paths []string) int {
	fmt.Println("=== Climate Data Integrity Validation ===")
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := pipeline.New(domain.Parser{}, logger, observability.NewMetricsForTesting())

	table, err := engine.Run(context.Background(), paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: aggregation: %v\n", err)
		return 1
	}

	phases := []*phase{
		checkPopulation(table),
		checkExtrema(table),
		checkAverages(table),
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS  %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL  %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("      - %s\n", e)
		}
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d of %d phases failed\n", failed, len(phases))
		return 1
	}
	fmt.Printf("all %d phases passed (%d states)\n", len(phases), table.Len())
	return 0
}

// checkPopulation verifies every tracked state holds at least one record.
func checkPopulation(table *aggregate.Table) *phase {
	p := &phase{name: "population"}
	if table.Len() == 0 {
		p.errorf("no states found in input")
	}
	for _, a := range table.All() {
		if a.RecordCount == 0 {
			p.errorf("%s: accumulator exists with zero records", a.Code)
		}
		if len(a.Code) != 2 {
			p.errorf("%s: state code is not two characters", a.Code)
		}
	}
	return p
}

// checkExtrema verifies max >= min and that both were set by real records.
func checkExtrema(table *aggregate.Table) *phase {
	p := &phase{name: "extrema"}
	for _, a := range table.All() {
		if a.MaxTemperature < a.MinTemperature {
			p.errorf("%s: max %.2fF below min %.2fF", a.Code, a.MaxTemperature, a.MinTemperature)
		}
		if a.MaxTemperatureAt == 0 && a.MinTemperatureAt == 0 && a.RecordCount > 0 {
			p.errorf("%s: extrema timestamps never set", a.Code)
		}
	}
	return p
}

// checkAverages verifies derived averages exist and percentages are in range.
func checkAverages(table *aggregate.Table) *phase {
	p := &phase{name: "averages"}
	for _, a := range table.All() {
		avgHumidity, ok := a.AvgHumidity()
		if !ok {
			p.errorf("%s: no average humidity", a.Code)
			continue
		}
		if avgHumidity < 0 || avgHumidity > 100 {
			p.errorf("%s: average humidity %.2f%% out of range", a.Code, avgHumidity)
		}
		if avgCloud, _ := a.AvgCloudCover(); avgCloud < 0 || avgCloud > 100 {
			p.errorf("%s: average cloud cover %.2f%% out of range", a.Code, avgCloud)
		}
		if avgTemp, _ := a.AvgTemperature(); avgTemp < a.MinTemperature || avgTemp > a.MaxTemperature {
			p.errorf("%s: average temperature %.2fF outside [min, max]", a.Code, avgTemp)
		}
	}
	return p
}
