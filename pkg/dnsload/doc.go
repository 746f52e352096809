/*
Package dnsload contains functionality for generating synthetic DNS load over UDP
and measuring server performance. The load is described by the Benchmark struct,
which is set up as desired and then executed using Benchmark.Run. Each execution
of Benchmark.Run returns a single ResultStats holding the counters and latency
measurements collected while the benchmark was running.
*/
package dnsload
