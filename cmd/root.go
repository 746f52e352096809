package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/dnstools/dnsblast/internal/sysutil"
	"github.com/dnstools/dnsblast/pkg/dnsload"
	"github.com/dnstools/dnsblast/pkg/printutils"
	"github.com/dnstools/dnsblast/pkg/reporter"
)

// Version is set during release of project during build process.
var Version = "development"

var (
	pApp = kingpin.New("dnsblast", "A UDP DNS load generator and latency benchmark.")

	benchmark dnsload.Benchmark
)

func init() {
	pApp.Flag("count", "Total number of queries to send.").
		Short('n').Default("5000").Int64Var(&benchmark.Count)

	pApp.Flag("threads", "Number of concurrent benchmark workers, each query occupies one worker and one UDP socket for its whole duration.").
		Short('c').Default("50").Uint32Var(&benchmark.Concurrency)

	pApp.Flag("server", "DNS server IP or hostname to test.").
		Short('s').Default(dnsload.DefaultServer).StringVar(&benchmark.Server)

	pApp.Flag("port", "UDP port of the tested DNS server.").
		Short('p').Default("53").IntVar(&benchmark.Port)

	pApp.Flag("timeout", "Receive timeout of a single query, a query without any reply within this window counts as failed.").
		Default(dnsload.DefaultReadTimeout.String()).DurationVar(&benchmark.ReadTimeout)

	pApp.Flag("rate-limit", "Apply a global queries / second rate limit.").
		Short('l').Default("0").IntVar(&benchmark.Rate)

	pApp.Flag("min", "Minimum value for timing histogram.").
		Default(dnsload.DefaultHistMin.String()).DurationVar(&benchmark.HistMin)

	pApp.Flag("max", "Maximum value for timing histogram.").DurationVar(&benchmark.HistMax)

	pApp.Flag("precision", "Significant figure for histogram precision.").
		Default("1").PlaceHolder("[1-5]").IntVar(&benchmark.HistPre)

	pApp.Flag("distribution", "Display distribution histogram of timings to stdout. Enabled by default.").
		Default("true").BoolVar(&benchmark.HistDisplay)

	pApp.Flag("csv", "Export distribution to CSV.").
		Default("").PlaceHolder("/path/to/file.csv").StringVar(&benchmark.Csv)

	pApp.Flag("json", "Report benchmark results as JSON.").BoolVar(&benchmark.JSON)

	pApp.Flag("silent", "Disable stdout.").Default("false").BoolVar(&benchmark.Silent)

	pApp.Flag("color", "ANSI Color output. Enabled by default.").
		Default("true").BoolVar(&benchmark.Color)

	pApp.Flag("plot", "Plot benchmark results and export them to the directory.").
		Default("").PlaceHolder("/path/to/folder").StringVar(&benchmark.PlotDir)

	pApp.Flag("plotf", "Format of graphs. Supported formats: svg, png and pdf.").
		Default(dnsload.DefaultPlotFormat).EnumVar(&benchmark.PlotFormat, "svg", "png", "pdf")

	pApp.Flag("progressbar", "Show a progress bar instead of the periodic progress lines.").
		Default("false").BoolVar(&benchmark.ProgressBar)

	pApp.Flag("log-requests", "Log all sent DNS requests to a file.").
		Default("false").BoolVar(&benchmark.RequestLogEnabled)

	pApp.Flag("log-requests-path", "Path to the file where the requests are logged.").
		Default(dnsload.DefaultRequestLogPath).StringVar(&benchmark.RequestLogPath)
}

// Execute starts main logic of command.
func Execute() {
	pApp.Version(Version)
	kingpin.MustParse(pApp.Parse(os.Args[1:]))

	// each in-flight query holds an open UDP socket
	if nofile, err := sysutil.RlimitNoFile(); err == nil && uint64(benchmark.Concurrency) >= nofile {
		printutils.ErrFprintf(os.Stderr, "Number of threads (%d) is at or above the open file limit (%d), "+
			"the benchmark may run out of UDP sockets.\n", benchmark.Concurrency, nofile)
	}

	sigsInt := make(chan os.Signal, 8)
	signal.Notify(sigsInt, syscall.SIGINT)

	defer close(sigsInt)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		_, ok := <-sigsInt
		if !ok {
			// standard exit based on channel close
			return
		}
		fmt.Fprintf(os.Stderr, "\nCancelling benchmark ^C, again to terminate now.\n")
		cancel()
		<-sigsInt
		os.Exit(1)
	}()

	start := time.Now()
	stats, err := benchmark.Run(ctx)
	end := time.Now()

	if err != nil {
		printutils.ErrFprintf(os.Stderr, "There was an error while starting benchmark: %s\n", err.Error())
		return
	}

	if err := reporter.PrintReport(&benchmark, stats, start, end.Sub(start)); err != nil {
		printutils.ErrFprintf(os.Stderr, "There was an error while printing report: %s\n", err.Error())
	}
}
