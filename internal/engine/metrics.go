package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	LLMCalls       atomic.Int64
	LLMErrors      atomic.Int64
	Uploads        atomic.Int64
	UploadErrors   atomic.Int64
	ResumesParsed  atomic.Int64
	JobComparisons atomic.Int64
}

// IncrUploads increments the resume upload counter.
func IncrUploads() { metrics.Uploads.Add(1) }

// IncrUploadErrors increments the failed upload counter.
func IncrUploadErrors() { metrics.UploadErrors.Add(1) }

// IncrResumesParsed increments the successful analysis counter.
func IncrResumesParsed() { metrics.ResumesParsed.Add(1) }

// IncrJobComparisons increments the resume-to-job comparison counter.
func IncrJobComparisons() { metrics.JobComparisons.Add(1) }

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"llm_calls":       metrics.LLMCalls.Load(),
		"llm_errors":      metrics.LLMErrors.Load(),
		"uploads":         metrics.Uploads.Load(),
		"upload_errors":   metrics.UploadErrors.Load(),
		"resumes_parsed":  metrics.ResumesParsed.Load(),
		"job_comparisons": metrics.JobComparisons.Load(),
		"cache_hits":      hits,
		"cache_misses":    misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"llm_calls", "llm_errors",
		"uploads", "upload_errors",
		"resumes_parsed", "job_comparisons",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
