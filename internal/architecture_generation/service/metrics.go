package service

import (
	"sync/atomic"
	"time"
)

// Metrics tracks composer and renderer activity
type Metrics struct {
	Submissions  int64 `json:"submissions"`
	Documents    int64 `json:"documents"`
	Diagrams     int64 `json:"diagrams"`
	Renders      int64 `json:"renders"`
	RenderErrors int64 `json:"render_errors"`
	// RenderLatency is the total render time in nanoseconds
	RenderLatency int64 `json:"render_latency_ns"`
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		Submissions:   atomic.LoadInt64(&globalMetrics.Submissions),
		Documents:     atomic.LoadInt64(&globalMetrics.Documents),
		Diagrams:      atomic.LoadInt64(&globalMetrics.Diagrams),
		Renders:       atomic.LoadInt64(&globalMetrics.Renders),
		RenderErrors:  atomic.LoadInt64(&globalMetrics.RenderErrors),
		RenderLatency: atomic.LoadInt64(&globalMetrics.RenderLatency),
	}
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.Submissions, 0)
	atomic.StoreInt64(&globalMetrics.Documents, 0)
	atomic.StoreInt64(&globalMetrics.Diagrams, 0)
	atomic.StoreInt64(&globalMetrics.Renders, 0)
	atomic.StoreInt64(&globalMetrics.RenderErrors, 0)
	atomic.StoreInt64(&globalMetrics.RenderLatency, 0)
}

func recordSubmission() { atomic.AddInt64(&globalMetrics.Submissions, 1) }
func recordDocument()   { atomic.AddInt64(&globalMetrics.Documents, 1) }
func recordDiagram()    { atomic.AddInt64(&globalMetrics.Diagrams, 1) }

func recordRender(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.Renders, 1)
	atomic.AddInt64(&globalMetrics.RenderLatency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.RenderErrors, 1)
	}
}

// AverageRenderLatency returns the average render latency in milliseconds
func (m Metrics) AverageRenderLatency() float64 {
	if m.Renders == 0 {
		return 0
	}
	return float64(m.RenderLatency) / float64(m.Renders) / 1e6
}

// RenderErrorRate returns the error rate as a percentage
func (m Metrics) RenderErrorRate() float64 {
	if m.Renders == 0 {
		return 0
	}
	return float64(m.RenderErrors) / float64(m.Renders) * 100
}
