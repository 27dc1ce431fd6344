// Package delivery provides a simulated delivery date estimator.
//
// The estimate is a fixed-offset computation, not a real courier lookup: the
// check waits out a configurable latency that models the network round trip
// and then returns the current date plus four calendar days.
package delivery

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// MinPincodeLen is the minimum pincode length that enables a delivery check.
// This mirrors the storefront's button guard; it is a narrow business rule,
// not a general pincode validation.
const MinPincodeLen = 3

// estimateOffsetDays is how far in the future the simulated estimate lands.
const estimateOffsetDays = 4

// ErrPincodeTooShort is returned when a check is issued for a pincode below
// the enabling threshold.
var ErrPincodeTooShort = errors.New("pincode too short")

// Estimate is the result of a delivery check.
type Estimate struct {
	Pincode string
	Date    time.Time
}

// DisplayDate formats the estimated date for display: weekday, month, day.
func (e Estimate) DisplayDate() string {
	return e.Date.Format("Monday, Jan 2")
}

// Estimator simulates courier lookups. Every check is tagged with a
// monotonically increasing sequence number so callers can discard results
// that were superseded by a newer check: an earlier in-flight result must
// never overwrite a later one.
type Estimator struct {
	latency time.Duration
	nowFunc func() time.Time // For testing
	seq     atomic.Uint64
}

// New creates an estimator with the given simulated latency.
func New(latency time.Duration) *Estimator {
	return &Estimator{
		latency: latency,
		nowFunc: time.Now,
	}
}

// Begin issues a new check sequence number, superseding all earlier checks.
func (e *Estimator) Begin() uint64 {
	return e.seq.Add(1)
}

// IsLatest reports whether seq still identifies the most recent check.
func (e *Estimator) IsLatest(seq uint64) bool {
	return e.seq.Load() == seq
}

// Check waits out the simulated latency and returns the estimate for the
// pincode. Cancelling the context aborts the wait.
func (e *Estimator) Check(ctx context.Context, pincode string) (Estimate, error) {
	if len(pincode) < MinPincodeLen {
		return Estimate{}, ErrPincodeTooShort
	}

	timer := time.NewTimer(e.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Estimate{}, ctx.Err()
	case <-timer.C:
	}

	return Estimate{
		Pincode: pincode,
		Date:    e.nowFunc().AddDate(0, 0, estimateOffsetDays),
	}, nil
}
