// Package metrics provides in-memory runtime statistics for the command
// pipeline: per-operation timings plus counters for which cascade tier
// answered and which actions ran.
package metrics

import (
	"math"
	"sync"
	"time"
)

// Operation names for the collector.
const (
	OpCorpusIndex = "corpus_index"
	OpVectorMatch = "vector_match"
	OpLLMClassify = "llm_classify"
	OpLLMExtract  = "llm_extract"
	OpExecute     = "action_execute"
)

// OperationMetrics holds aggregated timings for a single operation type.
type OperationMetrics struct {
	Count     int64
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// OperationSnapshot provides computed stats from raw metrics.
type OperationSnapshot struct {
	Count       int64   `json:"count"`
	TotalTimeMs int64   `json:"total_time_ms"`
	AvgTimeMs   float64 `json:"avg_time_ms"`
	MinTimeMs   int64   `json:"min_time_ms"`
	MaxTimeMs   int64   `json:"max_time_ms"`
}

// Snapshot is the full pipeline statistics at a point in time.
type Snapshot struct {
	UptimeSeconds float64                      `json:"uptime_seconds"`
	Operations    map[string]OperationSnapshot `json:"operations,omitempty"`
	Methods       map[string]int64             `json:"methods,omitempty"`
	Actions       map[string]int64             `json:"actions,omitempty"`
}

// Collector aggregates in-memory runtime statistics.
// All methods are safe for concurrent use.
type Collector struct {
	mu        sync.RWMutex
	startTime time.Time
	ops       map[string]*OperationMetrics
	methods   map[string]int64
	actions   map[string]int64
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		ops:       make(map[string]*OperationMetrics),
		methods:   make(map[string]int64),
		actions:   make(map[string]int64),
	}
}

// RecordTiming records timing for an operation.
func (c *Collector) RecordTiming(op string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.ops[op]
	if !ok {
		m = &OperationMetrics{MinTime: time.Duration(math.MaxInt64)}
		c.ops[op] = m
	}
	m.Count++
	m.TotalTime += duration
	if duration < m.MinTime {
		m.MinTime = duration
	}
	if duration > m.MaxTime {
		m.MaxTime = duration
	}
}

// RecordMethod counts which cascade tier produced a classification.
func (c *Collector) RecordMethod(method string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.methods[method]++
}

// RecordAction counts an executed action outcome.
func (c *Collector) RecordAction(action string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.actions[action]++
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		UptimeSeconds: time.Since(c.startTime).Seconds(),
		Operations:    make(map[string]OperationSnapshot, len(c.ops)),
		Methods:       make(map[string]int64, len(c.methods)),
		Actions:       make(map[string]int64, len(c.actions)),
	}
	for op, m := range c.ops {
		if m.Count == 0 {
			continue
		}
		snap.Operations[op] = OperationSnapshot{
			Count:       m.Count,
			TotalTimeMs: m.TotalTime.Milliseconds(),
			AvgTimeMs:   float64(m.TotalTime.Milliseconds()) / float64(m.Count),
			MinTimeMs:   m.MinTime.Milliseconds(),
			MaxTimeMs:   m.MaxTime.Milliseconds(),
		}
	}
	for method, n := range c.methods {
		snap.Methods[method] = n
	}
	for action, n := range c.actions {
		snap.Actions[action] = n
	}
	return snap
}
