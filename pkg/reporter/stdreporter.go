package reporter

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/olekukonko/tablewriter"

	"github.com/dnstools/dnsblast/pkg/printutils"
)

type standardReporter struct{}

func (s *standardReporter) print(params reportParameters) error {
	printSummary(params.outputWriter, params.summary)

	min := time.Duration(params.hist.Min())
	mean := time.Duration(params.hist.Mean())
	sd := time.Duration(params.hist.StdDev())
	max := time.Duration(params.hist.Max())
	p99 := time.Duration(params.hist.ValueAtQuantile(99))
	p95 := time.Duration(params.hist.ValueAtQuantile(95))
	p90 := time.Duration(params.hist.ValueAtQuantile(90))
	p75 := time.Duration(params.hist.ValueAtQuantile(75))
	p50 := time.Duration(params.hist.ValueAtQuantile(50))

	if tc := params.hist.TotalCount(); tc > 0 {
		printutils.NeutralFprintf(params.outputWriter, "\nDNS timings, %s datapoints\n", printutils.HighlightSprint(tc))
		printutils.NeutralFprintf(params.outputWriter, "\t min:\t\t%s\n", printutils.HighlightSprint(roundDuration(min)))
		printutils.NeutralFprintf(params.outputWriter, "\t mean:\t\t%s\n", printutils.HighlightSprint(roundDuration(mean)))
		printutils.NeutralFprintf(params.outputWriter, "\t [+/-sd]:\t%s\n", printutils.HighlightSprint(roundDuration(sd)))
		printutils.NeutralFprintf(params.outputWriter, "\t max:\t\t%s\n", printutils.HighlightSprint(roundDuration(max)))
		printutils.NeutralFprintf(params.outputWriter, "\t p99:\t\t%s\n", printutils.HighlightSprint(roundDuration(p99)))
		printutils.NeutralFprintf(params.outputWriter, "\t p95:\t\t%s\n", printutils.HighlightSprint(roundDuration(p95)))
		printutils.NeutralFprintf(params.outputWriter, "\t p90:\t\t%s\n", printutils.HighlightSprint(roundDuration(p90)))
		printutils.NeutralFprintf(params.outputWriter, "\t p75:\t\t%s\n", printutils.HighlightSprint(roundDuration(p75)))
		printutils.NeutralFprintf(params.outputWriter, "\t p50:\t\t%s\n", printutils.HighlightSprint(roundDuration(p50)))

		dist := params.hist.Distribution()
		if params.benchmark.HistDisplay && tc > 1 {
			printutils.NeutralFprintf(params.outputWriter, "\nDNS distribution, %s datapoints\n", printutils.HighlightSprint(tc))
			printBars(params.outputWriter, dist)
		}
	}

	return nil
}

func printSummary(w io.Writer, s Summary) {
	printutils.NeutralFprintf(w, "\nTotal requests:\t\t%s\n", printutils.HighlightSprint(s.TotalRequests))

	successPrint := printutils.SuccessFprintf
	if s.Success == 0 {
		successPrint = printutils.NeutralFprintf
	}
	successPrint(w, "Received replies:\t%d\n", s.Success)

	failedPrint := printutils.NeutralFprintf
	if s.Failed > 0 {
		failedPrint = printutils.ErrFprintf
	}
	failedPrint(w, "Failed:\t\t\t%d\n", s.Failed)

	printutils.NeutralFprintf(w, "\nTime taken for tests:\t%s\n", printutils.HighlightSprint(roundDuration(s.Duration)))
	printutils.NeutralFprintf(w, "Queries per second:\t%s\n", printutils.HighlightSprintf("%0.1f", s.QueriesPerSecond))
	printutils.NeutralFprintf(w, "Average latency:\t%s\n", printutils.HighlightSprint(roundDuration(s.AvgLatency)))
}

func printBars(w io.Writer, bars []hdrhistogram.Bar) {
	counts := make([]int64, 0, len(bars))
	lines := make([][]string, 0, len(bars))
	added := false
	var max int64

	for _, b := range bars {
		if b.Count == 0 && !added {
			// trim the start
			continue
		}
		if b.Count > max {
			max = b.Count
		}

		added = true

		line := make([]string, 3)
		lines = append(lines, line)
		counts = append(counts, b.Count)

		line[0] = roundDuration(time.Duration(b.To/2 + b.From/2)).String()
		line[2] = strconv.FormatInt(b.Count, 10)
	}

	for i, l := range lines {
		l[1] = makeBar(counts[i], max)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Latency", "", "Count"})
	table.SetBorder(false)
	table.AppendBulk(lines)
	table.Render()
}

func makeBar(c int64, max int64) string {
	if c == 0 {
		return ""
	}
	t := int((43 * float64(c) / float64(max)) + 0.5)
	return strings.Repeat(printutils.HighlightSprint("▄"), t)
}
