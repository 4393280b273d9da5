// Command gendata generates deterministic TDV observation fixtures for tests
// and local runs. It uses a seeded random source so the same flags always
// produce the same file.
//
// Usage:
//
//	go run ./cmd/gendata -out testdata/data_mixed.tdv -states TN,WA,CA -records 5000
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"
)

// geohashAlphabet is the base32 character set geohashes are drawn from.
const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the TDV fixture")
	states := flag.String("states", "TN,WA,CA", "comma-separated state codes to generate")
	records := flag.Int("records", 1000, "total number of observation records")
	seed := flag.Int64("seed", 1, "random seed")
	start := flag.String("start", "2015-01-01", "first observation date (YYYY-MM-DD)")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	codes := strings.Split(*states, ",")
	if len(codes) == 0 {
		return fmt.Errorf("no state codes given")
	}

	startTime, err := time.Parse("2006-01-02", *start)
	if err != nil {
		return fmt.Errorf("invalid -start: %w", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	rng := rand.New(rand.NewSource(*seed))

	for i := 0; i < *records; i++ {
		code := codes[rng.Intn(len(codes))]
		// Hourly cadence, jittered across states.
		ts := startTime.Add(time.Duration(i) * time.Hour).UnixMilli()

		fmt.Fprintf(w, "%s\t%d\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.5f\n",
			code,
			ts,
			randomGeohash(rng),
			rng.Float64()*100,        // humidity
			float64(rng.Intn(10)/9),  // snow: ~10% of records
			rng.Float64()*100,        // cloud cover
			float64(rng.Intn(20)/19), // lightning: ~5% of records
			95000+rng.Float64()*8000, // pressure Pa
			250+rng.Float64()*60,     // temperature Kelvin
		)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	log.Printf("wrote %d records for states %s: %s", *records, *states, *out)
	return nil
}

func randomGeohash(rng *rand.Rand) string {
	var b [12]byte
	for i := range b {
		b[i] = geohashAlphabet[rng.Intn(len(geohashAlphabet))]
	}
	return string(b[:])
}
