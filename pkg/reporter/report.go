package reporter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/dnstools/dnsblast/pkg/dnsload"
)

type reportParameters struct {
	benchmark    *dnsload.Benchmark
	outputWriter io.Writer
	hist         *hdrhistogram.Histogram
	summary      Summary
}

type reportPrinter interface {
	print(params reportParameters) error
}

// PrintReport prints formatted benchmark result to stdout, exports graphs and
// generates CSV output if configured. If there is a fatal error while printing
// report, an error is returned.
func PrintReport(b *dnsload.Benchmark, stats *dnsload.ResultStats, benchStart time.Time, benchDuration time.Duration) error {
	summary := Summarize(stats, benchDuration)

	if len(b.PlotDir) != 0 {
		if err := directoryExists(b.PlotDir); err != nil {
			return fmt.Errorf("unable to plot results: %w", err)
		}

		now := time.Now().Format(time.RFC3339)
		dir := fmt.Sprintf("%s/graphs-%s", b.PlotDir, now)
		if err := os.Mkdir(dir, os.ModePerm); err != nil {
			return fmt.Errorf("unable to plot results: %w", err)
		}
		plotHistogramLatency(fileName(b, dir, "latency-histogram"), stats.Timings)
		plotBoxPlotLatency(fileName(b, dir, "latency-boxplot"), b.Server, stats.Timings)
		plotLineThroughput(fileName(b, dir, "throughput-lineplot"), benchStart, stats.Timings)
		plotLineLatencies(fileName(b, dir, "latency-lineplot"), benchStart, stats.Timings)
		plotErrorRate(fileName(b, dir, "errorrate-lineplot"), benchStart, stats.Errors)
	}

	var csv *os.File
	if b.Csv != "" {
		f, err := os.Create(b.Csv)
		if err != nil {
			return fmt.Errorf("failed to create file for CSV export due to '%v'", err)
		}

		csv = f
	}

	defer func() {
		if csv != nil {
			csv.Close()
		}
	}()

	if csv != nil {
		writeBars(csv, stats.Hist.Distribution())
	}

	if b.Silent {
		return nil
	}

	w := b.Writer
	if w == nil {
		w = os.Stdout
	}
	params := reportParameters{
		benchmark:    b,
		outputWriter: w,
		hist:         stats.Hist,
		summary:      summary,
	}
	return printer(b).print(params)
}

func directoryExists(plotDir string) error {
	stat, err := os.Stat(plotDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("'%s' path does not point to an existing directory", plotDir)
		}
		return err
	} else if !stat.IsDir() {
		return fmt.Errorf("'%s' is not a path to a directory", plotDir)
	}
	return nil
}

func printer(b *dnsload.Benchmark) reportPrinter {
	switch {
	case b.JSON:
		return &jsonReporter{}
	default:
		return &standardReporter{}
	}
}

func fileName(b *dnsload.Benchmark, dir, name string) string {
	return dir + "/" + name + "." + b.PlotFormat
}

func writeBars(f *os.File, bars []hdrhistogram.Bar) {
	f.WriteString("From (ns), To (ns), Count\n")

	for _, b := range bars {
		f.WriteString(b.String())
	}
}
