// Package metrics provides structures and functions for collecting and managing server health and validation metrics.
// file: internal/metrics/validation_metrics.go.
package metrics

import (
	"runtime"
	"sync"
	"time"
)

// ValidationMetrics holds counters about the server's health and the
// validation work it has performed.
type ValidationMetrics struct {
	// Server uptime and basic info.
	StartTime     time.Time     `json:"startTime"`
	Uptime        time.Duration `json:"uptime"`
	GoVersion     string        `json:"goVersion"`
	NumGoroutines int           `json:"numGoroutines"`

	// Memory stats.
	MemoryAllocated   uint64 `json:"memoryAllocated"`   // Currently allocated memory in bytes.
	MemorySystemTotal uint64 `json:"memorySystemTotal"` // Total memory obtained from system.
	MemoryGCCount     uint32 `json:"memoryGCCount"`     // Number of completed GC cycles.

	// Validation stats.
	NamesChecked  int `json:"namesChecked"`
	NamesAccepted int `json:"namesAccepted"`
	NamesRejected int `json:"namesRejected"`

	// Request stats.
	TotalRequests  int `json:"totalRequests"`
	FailedRequests int `json:"failedRequests"`
}

// Collector gathers validation metrics behind a mutex.
type Collector struct {
	mu      sync.Mutex
	metrics ValidationMetrics
}

// NewCollector creates a collector with the start time set to now.
func NewCollector() *Collector {
	return &Collector{
		metrics: ValidationMetrics{
			StartTime: time.Now(),
			GoVersion: runtime.Version(),
		},
	}
}

// RecordValidation records the outcome of one name validation.
func (c *Collector) RecordValidation(valid bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.metrics.NamesChecked++
	if valid {
		c.metrics.NamesAccepted++
	} else {
		c.metrics.NamesRejected++
	}
}

// RecordRequest records one API request and whether it failed before
// reaching the validator.
func (c *Collector) RecordRequest(failed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.metrics.TotalRequests++
	if failed {
		c.metrics.FailedRequests++
	}
}

// Snapshot returns a copy of the current metrics with the uptime and
// runtime fields refreshed.
func (c *Collector) Snapshot() ValidationMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	snapshot := c.metrics
	snapshot.Uptime = time.Since(c.metrics.StartTime)
	snapshot.NumGoroutines = runtime.NumGoroutine()
	snapshot.MemoryAllocated = memStats.Alloc
	snapshot.MemorySystemTotal = memStats.Sys
	snapshot.MemoryGCCount = memStats.NumGC

	return snapshot
}
