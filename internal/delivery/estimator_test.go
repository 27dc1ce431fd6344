package delivery

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCheckReturnsDateFourDaysOut(t *testing.T) {
	e := New(time.Millisecond)

	// Mock time
	now := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.Local)
	e.nowFunc = func() time.Time { return now }

	est, err := e.Check(context.Background(), "110042")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	want := time.Date(2024, time.March, 8, 12, 0, 0, 0, time.Local)
	if !est.Date.Equal(want) {
		t.Errorf("expected estimate date %v, got %v", want, est.Date)
	}
	if est.Pincode != "110042" {
		t.Errorf("expected pincode 110042, got %s", est.Pincode)
	}
	if est.DisplayDate() != "Friday, Mar 8" {
		t.Errorf("expected display date 'Friday, Mar 8', got '%s'", est.DisplayDate())
	}
}

func TestCheckRejectsShortPincode(t *testing.T) {
	e := New(time.Millisecond)

	_, err := e.Check(context.Background(), "12")
	if !errors.Is(err, ErrPincodeTooShort) {
		t.Errorf("expected ErrPincodeTooShort, got %v", err)
	}

	// Three characters is the enabling threshold.
	if _, err := e.Check(context.Background(), "123"); err != nil {
		t.Errorf("expected 3-character pincode to be accepted, got %v", err)
	}
}

func TestCheckHonorsContextCancellation(t *testing.T) {
	e := New(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go cancel()

	_, err := e.Check(ctx, "110042")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSequenceNumbersSupersede(t *testing.T) {
	e := New(time.Millisecond)

	first := e.Begin()
	second := e.Begin()

	if e.IsLatest(first) {
		t.Error("expected first check to be superseded")
	}
	if !e.IsLatest(second) {
		t.Error("expected second check to be the latest")
	}
	if second <= first {
		t.Error("expected sequence numbers to increase")
	}
}

func TestLastWriteWinsRegardlessOfCompletionOrder(t *testing.T) {
	e := New(time.Millisecond)

	// Two checks in flight; the first resolves after the second. Only the
	// second may be applied.
	firstSeq := e.Begin()
	secondSeq := e.Begin()

	type result struct {
		seq uint64
		est Estimate
	}
	results := make(chan result, 2)

	go func() {
		est, err := e.Check(context.Background(), "200002")
		if err != nil {
			t.Errorf("second check failed: %v", err)
		}
		results <- result{seq: secondSeq, est: est}
	}()
	go func() {
		// Resolves later even though issued first.
		time.Sleep(20 * time.Millisecond)
		est, err := e.Check(context.Background(), "100001")
		if err != nil {
			t.Errorf("first check failed: %v", err)
		}
		results <- result{seq: firstSeq, est: est}
	}()

	var applied *Estimate
	for i := 0; i < 2; i++ {
		r := <-results
		if e.IsLatest(r.seq) {
			est := r.est
			applied = &est
		}
	}

	if applied == nil {
		t.Fatal("expected the latest check to be applied")
	}
	if applied.Pincode != "200002" {
		t.Errorf("expected final estimate for pincode 200002, got %s", applied.Pincode)
	}
}
