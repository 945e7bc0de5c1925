// SPDX-FileCopyrightText: 2026 The lldlink authors
//
// SPDX-License-Identifier: MIT

package lld

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Job is a single link request for [LinkAll].
type Job struct {
	Flavor Flavor
	Args   []string
}

// LinkAll runs all jobs, at most limit at a time, or all at once if
// limit is not positive. Jobs with the same flavor still serialize on
// the flavor's driver lock, jobs with different flavors run in
// parallel.
//
// Cancelling ctx keeps jobs that have not started yet from running.
// A job that already entered its driver runs to completion in any
// case. The returned error joins one error per failed or skipped job.
func LinkAll(ctx context.Context, jobs []Job, limit int) error {
	group := errgroup.Group{}
	if limit > 0 {
		group.SetLimit(limit)
	}

	errs := make([]error, len(jobs))

	for idx, job := range jobs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[idx] = fmt.Errorf("job %d skipped: %w", idx, err)
				return nil
			}

			err := Link(job.Flavor, job.Args)
			if err != nil {
				errs[idx] = fmt.Errorf("job %d: %w", idx, err)
			}

			return nil
		})
	}

	_ = group.Wait()

	return errors.Join(errs...)
}
