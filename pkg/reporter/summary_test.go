package reporter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dnstools/dnsblast/pkg/dnsload"
	"github.com/dnstools/dnsblast/pkg/reporter"
)

func Test_Summarize(t *testing.T) {
	rs := dnsload.ResultStats{
		Timings: []dnsload.Datapoint{
			{Duration: 2 * time.Millisecond},
			{Duration: 4 * time.Millisecond},
			{Duration: 6 * time.Millisecond},
			{Duration: 8 * time.Millisecond},
		},
		Counters: &dnsload.Counters{Total: 5, Success: 4, Failure: 1},
	}

	summary := reporter.Summarize(&rs, 2*time.Second)

	assert.EqualValues(t, 5, summary.TotalRequests)
	assert.EqualValues(t, 4, summary.Success)
	assert.EqualValues(t, 1, summary.Failed)
	assert.Equal(t, 2*time.Second, summary.Duration)
	assert.InDelta(t, 2.5, summary.QueriesPerSecond, 0.0001)
	assert.Equal(t, 5*time.Millisecond, summary.AvgLatency)
}

func Test_Summarize_orderIndependent(t *testing.T) {
	timings := []dnsload.Datapoint{
		{Duration: 2 * time.Millisecond},
		{Duration: 4 * time.Millisecond},
		{Duration: 6 * time.Millisecond},
	}
	reversed := []dnsload.Datapoint{timings[2], timings[1], timings[0]}

	first := dnsload.ResultStats{
		Timings:  timings,
		Counters: &dnsload.Counters{Total: 3, Success: 3},
	}
	second := dnsload.ResultStats{
		Timings:  reversed,
		Counters: &dnsload.Counters{Total: 3, Success: 3},
	}

	assert.Equal(t,
		reporter.Summarize(&first, time.Second),
		reporter.Summarize(&second, time.Second),
	)
}

func Test_Summarize_noSuccesses(t *testing.T) {
	rs := dnsload.ResultStats{
		Counters: &dnsload.Counters{Total: 3, Failure: 3},
	}

	summary := reporter.Summarize(&rs, time.Second)

	assert.EqualValues(t, 3, summary.TotalRequests)
	assert.Zero(t, summary.Success)
	assert.EqualValues(t, 3, summary.Failed)
	assert.InDelta(t, 3.0, summary.QueriesPerSecond, 0.0001)
	assert.Zero(t, summary.AvgLatency, "no successes means no average latency")
}

func Test_Summarize_noRequests(t *testing.T) {
	rs := dnsload.ResultStats{
		Counters: &dnsload.Counters{},
	}

	summary := reporter.Summarize(&rs, time.Second)

	assert.Zero(t, summary.TotalRequests)
	assert.Zero(t, summary.QueriesPerSecond)
	assert.Zero(t, summary.AvgLatency)
}

func Test_Summarize_zeroDuration(t *testing.T) {
	rs := dnsload.ResultStats{
		Timings:  []dnsload.Datapoint{{Duration: time.Millisecond}},
		Counters: &dnsload.Counters{Total: 1, Success: 1},
	}

	summary := reporter.Summarize(&rs, 0)

	assert.Zero(t, summary.QueriesPerSecond)
	assert.Equal(t, time.Millisecond, summary.AvgLatency)
}
