// Package perf measures the latency of the core collection operations over a
// range of sizes and writes the results as CSV.
//
// For each requested size the harness times the generation of two random
// collections, their element-wise multiplication (zip), and the sum of the
// product (reduce). One CSV row is appended per size after a header row,
// with all durations reported in milliseconds.
package perf
