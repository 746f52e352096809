package dnsload

import (
	"net"
	"time"
)

// exchange sends a single wire-format query packet to the benchmarked server
// over a fresh UDP socket and waits for any datagram in reply. The reply is not
// parsed, receiving anything within the deadline counts as success. The
// returned error is nil exactly when Result.Success is true; failed exchanges
// carry a zero duration.
func (b *Benchmark) exchange(packet []byte) (Result, error) {
	start := time.Now()

	conn, err := net.Dial("udp4", b.addr)
	if err != nil {
		return Result{Start: start}, err
	}
	defer conn.Close()

	start = time.Now()
	conn.SetDeadline(start.Add(b.ReadTimeout))

	if _, err := conn.Write(packet); err != nil {
		return Result{Start: start}, err
	}

	reply := make([]byte, MaxReplySize)
	if _, err := conn.Read(reply); err != nil {
		return Result{Start: start}, err
	}

	return Result{Success: true, Duration: time.Since(start), Start: start}, nil
}
