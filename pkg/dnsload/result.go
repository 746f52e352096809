package dnsload

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Counters represents various counters of benchmark results.
type Counters struct {
	Total   int64
	Success int64
	Failure int64
}

// Result is the outcome of a single DNS query, a query either received
// some reply within the receive timeout or it did not, there is no finer
// classification of failures.
type Result struct {
	Success  bool
	Duration time.Duration
	Start    time.Time
}

// Datapoint one datapoint of benchmark (single successful DNS request).
type Datapoint struct {
	Duration time.Duration
	Start    time.Time
}

// ErrorDatapoint one datapoint of failed request of benchmark.
type ErrorDatapoint struct {
	Start time.Time
}

// ResultStats is a representation of the results collected during a benchmark run.
type ResultStats struct {
	Hist     *hdrhistogram.Histogram
	Timings  []Datapoint
	Errors   []ErrorDatapoint
	Counters *Counters
}

func newResultStats(b *Benchmark) *ResultStats {
	return &ResultStats{
		Hist:     hdrhistogram.New(b.HistMin.Nanoseconds(), b.HistMax.Nanoseconds(), b.HistPre),
		Counters: &Counters{},
	}
}

// record folds a single result into the collected stats. Only successful
// queries contribute to the latency measurements.
func (rs *ResultStats) record(res Result) {
	rs.Counters.Total++

	if !res.Success {
		rs.Counters.Failure++
		rs.Errors = append(rs.Errors, ErrorDatapoint{Start: res.Start})
		return
	}

	rs.Counters.Success++
	rs.Hist.RecordValue(res.Duration.Nanoseconds())
	rs.Timings = append(rs.Timings, Datapoint{Duration: res.Duration, Start: res.Start})
}
