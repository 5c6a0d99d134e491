package perf

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/ahalverson/mandelgrid/collections"
)

// Result holds the timings of a single test run.
type Result struct {
	// Size is the element count of the collections used in the run.
	Size int

	// Value is the reduced sum; it is recorded so the timed work cannot be
	// optimized away and so runs can be eyeballed for sanity.
	Value float64

	// GenTime1 and GenTime2 are the construction times of the two inputs.
	GenTime1 time.Duration
	GenTime2 time.Duration

	// ZipTime is the element-wise multiplication time.
	ZipTime time.Duration

	// ReduceTime is the sum time.
	ReduceTime time.Duration
}

// Run executes one timed pass per size, generating elements with gen (called
// once per element; typically a random source). Results are returned in the
// order the sizes were given.
func Run(sizes []int, gen func(int) float64) []Result {
	results := make([]Result, 0, len(sizes))
	for _, size := range sizes {
		results = append(results, runOne(size, gen))
	}
	return results
}

func runOne(size int, gen func(int) float64) Result {
	res := Result{Size: size}

	start := time.Now()
	u := collections.Generate(size, gen)
	res.GenTime1 = time.Since(start)

	start = time.Now()
	v := collections.Generate(size, gen)
	res.GenTime2 = time.Since(start)

	start = time.Now()
	w := collections.Mul(u, v)
	res.ZipTime = time.Since(start)

	start = time.Now()
	res.Value = collections.Sum(w)
	res.ReduceTime = time.Since(start)

	return res
}

// Report logs one result as a structured record.
func Report(logger *slog.Logger, res Result) {
	logger.Info("perf sample",
		"size", res.Size,
		"value", res.Value,
		"gen_time_1", res.GenTime1,
		"gen_time_2", res.GenTime2,
		"zip_time", res.ZipTime,
		"reduce_time", res.ReduceTime,
	)
}

// WriteCSV writes a header row followed by one row per result. Durations are
// in milliseconds.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)

	header := []string{"size", "value", "gen_time_1", "gen_time_2", "zip_time", "reduce_time"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("perf: write csv header: %w", err)
	}

	for _, res := range results {
		row := []string{
			strconv.Itoa(res.Size),
			strconv.FormatFloat(res.Value, 'g', -1, 64),
			millis(res.GenTime1),
			millis(res.GenTime2),
			millis(res.ZipTime),
			millis(res.ReduceTime),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("perf: write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("perf: flush csv: %w", err)
	}
	return nil
}

func millis(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Nanoseconds())*1e-6, 'g', -1, 64)
}
