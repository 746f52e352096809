package dnsload

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/ratelimit"

	"github.com/dnstools/dnsblast/pkg/printutils"
)

// progressInterval is how many completed results are between two progress lines.
const progressInterval = 1000

// Benchmark is representation of benchmark scenario.
type Benchmark struct {
	Server      string
	Port        int
	Count       int64
	Concurrency uint32

	Rate        int
	ReadTimeout time.Duration

	HistDisplay bool
	HistMin     time.Duration
	HistMax     time.Duration
	HistPre     int

	Csv  string
	JSON bool

	Silent bool
	Color  bool

	PlotDir    string
	PlotFormat string

	ProgressBar bool

	RequestLogEnabled bool
	RequestLogPath    string

	// Writer used for printing benchmark progress and results, default is os.Stdout.
	Writer io.Writer

	// internal variable so we do not have to join the address with each request.
	addr string

	requestLogger *log.Logger
}

func (b *Benchmark) init() error {
	if b.Writer == nil {
		b.Writer = os.Stdout
	}

	if b.Count < 0 {
		return errors.New("--count must not be negative")
	}

	if len(b.Server) == 0 {
		b.Server = DefaultServer
	}
	if b.Port == 0 {
		b.Port = DefaultPort
	}
	b.addr = net.JoinHostPort(b.Server, strconv.Itoa(b.Port))

	if b.Concurrency == 0 {
		b.Concurrency = 1
	}
	if b.ReadTimeout == 0 {
		b.ReadTimeout = DefaultReadTimeout
	}

	if b.HistMin == 0 {
		b.HistMin = DefaultHistMin
	}
	if b.HistMax == 0 {
		b.HistMax = b.ReadTimeout
	}
	if b.HistPre == 0 {
		b.HistPre = DefaultHistPrecision
	}

	if b.RequestLogPath == "" {
		b.RequestLogPath = DefaultRequestLogPath
	}
	return nil
}

// Run executes the benchmark and returns the collected results. The run ends
// when all generated queries have a result or when the passed context is
// canceled, whatever comes first.
func (b *Benchmark) Run(ctx context.Context) (*ResultStats, error) {
	if err := b.init(); err != nil {
		return nil, err
	}

	color.NoColor = !b.Color

	var requestLogFile *os.File
	if b.RequestLogEnabled {
		file, err := os.OpenFile(b.RequestLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open file for request logging: %w", err)
		}
		requestLogFile = file
		b.requestLogger = log.New(file, "", log.LstdFlags)
	}
	defer func() {
		if requestLogFile != nil {
			requestLogFile.Close()
		}
	}()

	// nolint:gosec
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	domains := make([]string, b.Count)
	for i := range domains {
		domains[i] = RandomDomain(rnd)
	}

	if !b.Silent && !b.JSON {
		fmt.Fprintf(b.Writer, "Benchmarking %s via udp with %s requests and %s concurrent workers\n",
			printutils.HighlightSprint(b.addr), printutils.HighlightSprint(b.Count), printutils.HighlightSprint(b.Concurrency))
	}

	var limit ratelimit.Limiter
	if b.Rate > 0 {
		limit = ratelimit.New(b.Rate)
	}

	jobs := make(chan string)
	results := make(chan Result, b.Concurrency)

	var wg sync.WaitGroup
	for w := uint32(0); w < b.Concurrency; w++ {
		wg.Add(1)
		go func(workerID uint32) {
			defer wg.Done()
			b.worker(workerID, limit, jobs, results)
		}(w)
	}

	go func() {
		defer close(jobs)
		for _, domain := range domains {
			select {
			case jobs <- domain:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var bar *progressbar.ProgressBar
	if b.ProgressBar && !b.Silent && !b.JSON {
		bar = progressbar.NewOptions64(b.Count,
			progressbar.OptionSetDescription("Benchmarking"),
			progressbar.OptionSetWriter(b.Writer),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	// results are collected here only, in completion order, so the stats are
	// never touched by more than one goroutine
	stats := newResultStats(b)
	var completed int64
	for res := range results {
		switch {
		case bar != nil:
			bar.Add(1)
		case !b.Silent && !b.JSON && completed > 0 && completed%progressInterval == 0:
			fmt.Fprintf(b.Writer, "Processed %d requests...\n", completed)
		}
		stats.record(res)
		completed++
	}
	if bar != nil {
		bar.Finish()
	}

	return stats, nil
}

// worker processes queries to completion one at a time, a failed query is
// terminal for that single query instance and is never retried.
func (b *Benchmark) worker(workerID uint32, limit ratelimit.Limiter, jobs <-chan string, results chan<- Result) {
	// create a new lock free rand source for this goroutine
	// nolint:gosec
	rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))

	for domain := range jobs {
		if limit != nil {
			limit.Take()
		}

		packet := BuildQuery(rnd, domain)
		res, err := b.exchange(packet)

		if err != nil {
			errorsTotalMetrics.WithLabelValues().Inc()
		} else {
			dnsRequestsDurationMetrics.WithLabelValues("A").Observe(res.Duration.Seconds())
			dnsResponseTotalMetrics.WithLabelValues("A").Inc()
		}

		if b.requestLogger != nil {
			logRequest(b.requestLogger, workerID, binary.BigEndian.Uint16(packet), domain, err, res.Duration)
		}

		results <- res
	}
}
