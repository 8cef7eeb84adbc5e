// Package workers runs batches of independent tasks concurrently.
//
// A batch is all-or-nothing with respect to waiting: Run returns only after
// every task has finished, and reports each task's outcome at the task's
// position, so callers can reconcile results by index.
package workers

import "context"

// Task is a single unit of work in a batch.
type Task func(ctx context.Context) error

// Runner executes a batch of tasks.
//
// Example:
//
//	errs := runner.Run(ctx, []workers.Task{upload(0), upload(1)})
//	for i, err := range errs {
//	    // err is the outcome of task i
//	}
type Runner interface {
	Run(ctx context.Context, tasks []Task) []error
}
