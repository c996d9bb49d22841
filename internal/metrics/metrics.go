package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	retries         int
	lastCallLatency time.Duration
}

type renderStats struct {
	ticks   int
	skipped int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// the render loop. It fronts optional OTel instruments so the process runs
// the same with telemetry disabled.
type Recorder struct {
	mu          sync.Mutex
	providers   map[string]*providerStats
	screens     map[string]*renderStats
	transitions int
	segments    map[string]int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		screens:   make(map[string]*renderStats),
		segments:  make(map[string]int),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for an upstream call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProviderLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRetry tracks one backoff retry of a named operation.
func (r *Recorder) RecordRetry(operation string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureProviderLocked(operation).retries++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRetry(operation)
	}
}

// RecordRenderTick tracks one pass of the render loop for the given screen.
// A non-nil err marks the tick as skipped (frame retained).
func (r *Recorder) RecordRenderTick(screen string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats, ok := r.screens[screen]
	if !ok {
		stats = &renderStats{}
		r.screens[screen] = stats
	}
	stats.ticks++
	if err != nil {
		stats.skipped++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRenderTick(screen, duration, err)
	}
}

// RecordScreenTransition tracks a change of the active screen.
func (r *Recorder) RecordScreenTransition(from, to string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.transitions++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordScreenTransition(from, to)
	}
}

// RecordSegment tracks a completed off-season rotation segment.
func (r *Recorder) RecordSegment(segment string, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.segments[segment]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordSegment(segment, duration)
	}
}

// RecordHTTPRequest tracks basic status-server metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.providerSnapshot(provider).calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.providerSnapshot(provider).errors
}

// Retries returns the retry count recorded for an operation.
func (r *Recorder) Retries(operation string) int {
	return r.providerSnapshot(operation).retries
}

// RenderTicks returns total and skipped ticks for a screen.
func (r *Recorder) RenderTicks(screen string) (ticks, skipped int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.screens[screen]; ok {
		return stats.ticks, stats.skipped
	}
	return 0, 0
}

// ScreenTransitions returns the total number of screen changes.
func (r *Recorder) ScreenTransitions() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transitions
}

// SegmentCycles returns how often the named rotation segment completed.
func (r *Recorder) SegmentCycles(segment string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.segments[segment]
}

func (r *Recorder) ensureProviderLocked(provider string) *providerStats {
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	return stats
}

func (r *Recorder) providerSnapshot(provider string) providerStats {
	if r == nil {
		return providerStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.providers[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
