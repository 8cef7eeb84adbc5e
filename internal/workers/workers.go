package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Batch is a [Runner] backed by an errgroup. A failing task never cancels
// its siblings.
type Batch struct {
	limit int
}

// NewBatch returns a Batch running at most limit tasks at once.
// A limit <= 0 starts every task immediately.
func NewBatch(limit int) *Batch {
	return &Batch{limit: limit}
}

// Run starts every task and waits for all of them. The i-th element of the
// result is the error returned by tasks[i]; a panicking task is reported as
// an error.
func (b *Batch) Run(ctx context.Context, tasks []Task) []error {
	errs := make([]error, len(tasks))

	var g errgroup.Group
	if b.limit > 0 {
		g.SetLimit(b.limit)
	}

	for i, task := range tasks {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("task %d panicked: %v", i, r)
				}
			}()
			errs[i] = task(ctx)
			return nil
		})
	}

	_ = g.Wait()
	return errs
}
