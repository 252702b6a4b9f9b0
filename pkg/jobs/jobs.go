// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Job dispatches tasks of type T for parallel processing and synchronous response
type Job[T any] struct {
	// MaxWorkers is the maximum number of workers processing a batch of tasks in parallel
	MaxWorkers int
	// MinWorkers is the minimum number of workers processing a batch of tasks in parallel
	MinWorkers int
	// Worker for processing tasks
	Worker Worker[T]
	// FailFast controls the behavior of this Job upon errors. If set to true, it will quit
	// further processing upon the first error that occurs. For fault tolerant applications
	// use false.
	FailFast bool
}

// WorkerError wraps an underlying error and adds an optional code
// to enrich the context of the error, e.g. with an exit code
type WorkerError struct {
	error
	code int
}

// NewWorkerError creates worker errors
func NewWorkerError(err error, code int) *WorkerError {
	return &WorkerError{
		err,
		code,
	}
}

// Code returns the code of the error
func (we WorkerError) Code() int {
	return we.code
}

// Unwrap returns the underlying error
func (we WorkerError) Unwrap() error {
	return we.error
}

// Is implements the contract for errors.Is (https://golang.org/pkg/errors/#Is)
func (we WorkerError) Is(target error) bool {
	_target, ok := target.(WorkerError)
	if !ok {
		return false
	}
	if we.code != _target.code {
		return false
	}
	return errors.Is(we.error, _target.error)
}

// Worker declares workers functional interface
type Worker[T any] interface {
	// Work processes the task within the given context.
	Work(ctx context.Context, task T) *WorkerError
}

// The WorkerFunc type is an adapter to allow the use of
// ordinary functions as Workers.
type WorkerFunc[T any] func(ctx context.Context, task T) *WorkerError

// Work calls f(ctx, task).
func (f WorkerFunc[T]) Work(ctx context.Context, task T) *WorkerError {
	return f(ctx, task)
}

// Allocates the tasks channel and asynchronously feeds tasks to it, staying sensitive
// to termination signals from the provided context. Context terminal signals are
// registered as errors to the error channel.
func (j *Job[T]) allocate(ctx context.Context, tasks []T) (<-chan T, <-chan *WorkerError) {
	taskCh := make(chan T)
	errCh := make(chan *WorkerError, 1)
	go func() {
		defer close(taskCh)
		defer close(errCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				errCh <- NewWorkerError(ctx.Err(), 0)
				return
			}
		}
	}()
	return taskCh, errCh
}

// Processes tasks from the tasks channel until the channel is closed or the context
// signals termination. Errors are sent to the returned channel. A worker stops on its
// first error only when the job fails fast.
func (j *Job[T]) process(ctx context.Context, taskCh <-chan T) <-chan *WorkerError {
	errCh := make(chan *WorkerError)
	go func() {
		defer close(errCh)
		for {
			select {
			case task, ok := <-taskCh:
				if !ok {
					return
				}
				if err := j.Worker.Work(ctx, task); err != nil {
					select {
					case errCh <- err:
					case <-ctx.Done():
						return
					}
					if j.FailFast {
						return
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return errCh
}

// Dispatch spawns a set of workers processing in parallel the supplied tasks.
// If the context is cancelled or has timed out, or if the job fails fast and
// any error occurs during processing of tasks, a WorkerError is returned as
// soon as possible, processing halts and workers are disposed. Otherwise all
// tasks are processed and their errors are returned aggregated.
func (j *Job[T]) Dispatch(ctx context.Context, tasks []T) *WorkerError {
	if j.MaxWorkers < j.MinWorkers {
		panic(fmt.Sprintf("Job maxWorkers < minWorkers: %d < %d", j.MaxWorkers, j.MinWorkers))
	}
	if len(tasks) == 0 {
		return nil
	}
	workersCount := len(tasks)
	if workersCount > j.MaxWorkers {
		workersCount = j.MaxWorkers
	}
	if workersCount < j.MinWorkers {
		workersCount = j.MinWorkers
	}
	if workersCount < 1 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	taskCh, errc := j.allocate(ctx, tasks)
	errcList := []<-chan *WorkerError{errc}
	for i := 0; i < workersCount; i++ {
		errcList = append(errcList, j.process(ctx, taskCh))
	}
	return waitForPipeline(j.FailFast, cancel, errcList...)
}

// merges asynchronously produced errors from multiple error channels into a single channel
func mergeErrors(channels ...<-chan *WorkerError) <-chan *WorkerError {
	var wg sync.WaitGroup
	errCh := make(chan *WorkerError, len(channels))

	output := func(ch <-chan *WorkerError) {
		defer wg.Done()
		for err := range ch {
			errCh <- err
		}
	}
	wg.Add(len(channels))
	for _, ch := range channels {
		go output(ch)
	}

	// close errCh once all the output goroutines are done. This must
	// start after the wg.Add call.
	go func() {
		wg.Wait()
		close(errCh)
	}()
	return errCh
}

// waitForPipeline waits for results from all error channels.
// It cancels the pipeline and returns on the first error if failFast
// is true, or collects errors and returns an aggregated error at the end.
func waitForPipeline(failFast bool, cancel context.CancelFunc, errChs ...<-chan *WorkerError) *WorkerError {
	var errs *multierror.Error
	errCh := mergeErrors(errChs...)
	for err := range errCh {
		if err == nil {
			continue
		}
		if failFast {
			cancel()
			// drain so that no sender stays blocked
			go func() {
				for range errCh {
				}
			}()
			return err
		}
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return &WorkerError{error: err}
	}
	return nil
}
