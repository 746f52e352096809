package reporter

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/dnstools/dnsblast/pkg/dnsload"
)

// Summary is an aggregated view of a whole benchmark run.
type Summary struct {
	TotalRequests    int64
	Success          int64
	Failed           int64
	Duration         time.Duration
	QueriesPerSecond float64
	AvgLatency       time.Duration
}

// Summarize aggregates collected benchmark results into a Summary.
// The aggregation does not depend on the order in which the results
// were collected.
func Summarize(rs *dnsload.ResultStats, duration time.Duration) Summary {
	summary := Summary{
		TotalRequests: rs.Counters.Total,
		Success:       rs.Counters.Success,
		Failed:        rs.Counters.Failure,
		Duration:      duration,
	}

	if summary.TotalRequests > 0 && duration > 0 {
		summary.QueriesPerSecond = float64(summary.TotalRequests) / duration.Seconds()
	}

	if summary.Success > 0 {
		timings := make([]float64, 0, len(rs.Timings))
		for _, t := range rs.Timings {
			timings = append(timings, float64(t.Duration.Nanoseconds()))
		}
		if mean, err := stats.Mean(timings); err == nil {
			summary.AvgLatency = time.Duration(mean)
		}
	}

	return summary
}
