// Package metrics records payment-method operation counts and latencies.
package metrics

import "time"

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

type Recorder interface {
	// IncCounter counts an event. labels carries "method" and "outcome".
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// Outcome maps an operation error to its label value.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
