package dnsload

import (
	"time"
)

const (
	// DefaultCount is a default number of queries to send.
	DefaultCount = 5000

	// DefaultConcurrency is a default number of benchmark workers.
	DefaultConcurrency = 50

	// DefaultServer is a default DNS server to benchmark.
	DefaultServer = "127.0.0.1"

	// DefaultPort is a default UDP port of the benchmarked DNS server.
	DefaultPort = 53

	// DefaultReadTimeout is a default receive timeout of a single query.
	DefaultReadTimeout = 2 * time.Second

	// DefaultRequestLogPath is a default path to the file, where the requests will be logged.
	DefaultRequestLogPath = "requests.log"

	// DefaultPlotFormat is a default format for plots.
	DefaultPlotFormat = "svg"

	// DefaultHistMin is a default minimum value for the timing histogram.
	DefaultHistMin = 400 * time.Microsecond

	// DefaultHistPrecision is a default precision for histogram.
	DefaultHistPrecision = 1

	// MaxReplySize is the size of the receive buffer of a single query, replies
	// larger than this are truncated by the kernel and still counted as a reply.
	MaxReplySize = 512
)
