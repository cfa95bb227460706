package service

import (
	"sync/atomic"
	"time"
)

// Metrics tracks ask-pipeline counters for the process lifetime.
type Metrics struct {
	askCalls          int64
	greetingHits      int64
	noResultHits      int64
	completionCalls   int64
	completionErrors  int64
	completionLatency int64 // total latency in nanoseconds
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		askCalls:          atomic.LoadInt64(&globalMetrics.askCalls),
		greetingHits:      atomic.LoadInt64(&globalMetrics.greetingHits),
		noResultHits:      atomic.LoadInt64(&globalMetrics.noResultHits),
		completionCalls:   atomic.LoadInt64(&globalMetrics.completionCalls),
		completionErrors:  atomic.LoadInt64(&globalMetrics.completionErrors),
		completionLatency: atomic.LoadInt64(&globalMetrics.completionLatency),
	}
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.askCalls, 0)
	atomic.StoreInt64(&globalMetrics.greetingHits, 0)
	atomic.StoreInt64(&globalMetrics.noResultHits, 0)
	atomic.StoreInt64(&globalMetrics.completionCalls, 0)
	atomic.StoreInt64(&globalMetrics.completionErrors, 0)
	atomic.StoreInt64(&globalMetrics.completionLatency, 0)
}

func recordAsk() {
	atomic.AddInt64(&globalMetrics.askCalls, 1)
}

func recordGreeting() {
	atomic.AddInt64(&globalMetrics.greetingHits, 1)
}

func recordNoResults() {
	atomic.AddInt64(&globalMetrics.noResultHits, 1)
}

func recordCompletion(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.completionCalls, 1)
	atomic.AddInt64(&globalMetrics.completionLatency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.completionErrors, 1)
	}
}

// CompletionCalls reports how many completion requests were made.
func (m Metrics) CompletionCalls() int64 { return m.completionCalls }

// CompletionErrorRate returns the completion error rate as a percentage
func (m Metrics) CompletionErrorRate() float64 {
	if m.completionCalls == 0 {
		return 0
	}
	return float64(m.completionErrors) / float64(m.completionCalls) * 100
}

// AverageCompletionLatency returns the average latency in milliseconds
func (m Metrics) AverageCompletionLatency() float64 {
	if m.completionCalls == 0 {
		return 0
	}
	avgNs := float64(m.completionLatency) / float64(m.completionCalls)
	return avgNs / 1e6
}
