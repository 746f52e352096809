package dnsload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Now()

func TestResultStats_record(t *testing.T) {
	tests := []struct {
		name         string
		results      []Result
		wantCounters Counters
		wantTimings  []Datapoint
		wantErrors   []ErrorDatapoint
	}{
		{
			name:         "record success",
			results:      []Result{{Success: true, Duration: time.Millisecond, Start: now}},
			wantCounters: Counters{Total: 1, Success: 1},
			wantTimings:  []Datapoint{{Duration: time.Millisecond, Start: now}},
		},
		{
			name:         "record failure",
			results:      []Result{{Success: false, Start: now}},
			wantCounters: Counters{Total: 1, Failure: 1},
			wantErrors:   []ErrorDatapoint{{Start: now}},
		},
		{
			name: "record mixed",
			results: []Result{
				{Success: true, Duration: 2 * time.Millisecond, Start: now},
				{Success: false, Start: now},
				{Success: true, Duration: 4 * time.Millisecond, Start: now},
			},
			wantCounters: Counters{Total: 3, Success: 2, Failure: 1},
			wantTimings: []Datapoint{
				{Duration: 2 * time.Millisecond, Start: now},
				{Duration: 4 * time.Millisecond, Start: now},
			},
			wantErrors: []ErrorDatapoint{{Start: now}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Benchmark{}
			require.NoError(t, b.init())
			rs := newResultStats(&b)

			for _, res := range tt.results {
				rs.record(res)
			}

			assert.Equal(t, tt.wantCounters, *rs.Counters)
			assert.Equal(t, tt.wantTimings, rs.Timings)
			assert.Equal(t, tt.wantErrors, rs.Errors)
			assert.EqualValues(t, tt.wantCounters.Success, rs.Hist.TotalCount(), "only successful queries are recorded in the histogram")
		})
	}
}
