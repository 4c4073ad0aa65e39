package clean

import "golang.org/x/time/rate"

// ProgressEvent reports progress during a cleaning run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Status    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting cleaning progress.
type ProgressFunc func(event ProgressEvent)

// Throttle wraps fn so that completed events are forwarded at most
// eventsPerSecond times per second. Started, failed, and finished events
// always pass through, so failures and the final state are never dropped.
// Used for line-oriented output where one line per file would flood logs.
func Throttle(fn ProgressFunc, eventsPerSecond float64) ProgressFunc {
	if fn == nil {
		return nil
	}
	limiter := rate.NewLimiter(rate.Limit(eventsPerSecond), 1)
	return func(event ProgressEvent) {
		if event.Type == ProgressCompleted && !limiter.Allow() {
			return
		}
		fn(event)
	}
}
