// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestBatch_Run_ReportsOutcomeByPosition(t *testing.T) {
	errBoom := errors.New("boom")

	tasks := []Task{
		func(context.Context) error { return nil },
		func(context.Context) error { return errBoom },
		func(context.Context) error { return nil },
	}

	errs := NewBatch(0).Run(context.Background(), tasks)

	if len(errs) != 3 {
		t.Fatalf("expected 3 results, got %d", len(errs))
	}
	if errs[0] != nil || errs[2] != nil {
		t.Errorf("expected tasks 0 and 2 to succeed, got %v and %v", errs[0], errs[2])
	}
	if !errors.Is(errs[1], errBoom) {
		t.Errorf("expected task 1 to fail with errBoom, got %v", errs[1])
	}
}

func TestBatch_Run_FailureDoesNotCancelSiblings(t *testing.T) {
	var finished atomic.Int32

	tasks := []Task{
		func(context.Context) error { return errors.New("fast failure") },
		func(ctx context.Context) error {
			time.Sleep(20 * time.Millisecond)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			finished.Add(1)
			return nil
		},
	}

	errs := NewBatch(0).Run(context.Background(), tasks)

	if errs[1] != nil {
		t.Fatalf("slow task must not be cancelled, got %v", errs[1])
	}
	if finished.Load() != 1 {
		t.Fatalf("slow task did not finish")
	}
}

func TestBatch_Run_WaitsForAll(t *testing.T) {
	var mu sync.Mutex
	done := map[int]bool{}

	tasks := make([]Task, 5)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			time.Sleep(time.Duration(5-i) * time.Millisecond)
			mu.Lock()
			done[i] = true
			mu.Unlock()
			return nil
		}
	}

	NewBatch(0).Run(context.Background(), tasks)

	if len(done) != 5 {
		t.Fatalf("expected all 5 tasks done before Run returned, got %d", len(done))
	}
}

func TestBatch_Run_RespectsLimit(t *testing.T) {
	var running, peak atomic.Int32

	tasks := make([]Task, 6)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return nil
		}
	}

	NewBatch(2).Run(context.Background(), tasks)

	if peak.Load() > 2 {
		t.Fatalf("expected at most 2 concurrent tasks, got %d", peak.Load())
	}
}

func TestBatch_Run_RecoversPanics(t *testing.T) {
	errs := NewBatch(0).Run(context.Background(), []Task{
		func(context.Context) error { panic("kaboom") },
	})

	if errs[0] == nil {
		t.Fatalf("expected panic to be reported as error")
	}
}

func TestBatch_Run_Empty(t *testing.T) {
	errs := NewBatch(0).Run(context.Background(), nil)
	if len(errs) != 0 {
		t.Fatalf("expected no results, got %d", len(errs))
	}
}
