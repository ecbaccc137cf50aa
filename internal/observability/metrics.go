package observability

import (
	"strconv"
	"sync"
	"time"
)

type endpointStats struct {
	count         int64
	totalDuration time.Duration
}

// Metrics keeps lightweight per-endpoint counters in process memory.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]*endpointStats
	errors   map[string]int64
}

// NewMetrics returns an empty metrics registry.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]*endpointStats),
		errors:   make(map[string]int64),
	}
}

// RecordRequest counts a completed request and accumulates its latency.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	stats, ok := m.requests[key]
	if !ok {
		stats = &endpointStats{}
		m.requests[key] = stats
	}
	stats.count++
	stats.totalDuration += duration
}

// RecordError counts a request that ended in an application error.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[path+"|"+method+"|"+code]++
}
