package primesieve

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	sieveerrors "github.com/tamirms/primesieve/errors"
)

// Job describes one sieve run in a batch.
type Job struct {
	Max    int
	Filter Filter
}

// Result holds the outcome of one Job.
type Result struct {
	Job
	Primes      *PrimeSet
	Emitted     []int
	Fingerprint Fingerprint
	Elapsed     time.Duration
}

// RunBatch runs every job as an independent sieve and returns results in job
// order. At most WithWorkers(n) runs execute at once; each owns its own
// PrimeSet and Recorder, so no state is shared between runs.
//
// A single run cannot be interrupted. Context cancellation stops jobs that
// have not started yet and makes RunBatch return the context error.
func RunBatch(ctx context.Context, jobs []Job, opts ...BatchOption) ([]Result, error) {
	cfg := defaultBatchConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if len(jobs) == 0 {
		return nil, sieveerrors.ErrNoJobs
	}
	if cfg.workers <= 0 {
		return nil, fmt.Errorf("%w: %d", sieveerrors.ErrInvalidWorkers, cfg.workers)
	}
	if _, err := newHash(cfg.hash); err != nil {
		return nil, err
	}

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for i, job := range jobs {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			// Re-check once scheduled: SetLimit may have held this job back.
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			fp, primes, rec, err := fingerprintRun(job.Max, job.Filter, cfg.hash, WithLogger(cfg.logger))
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = Result{
				Job:         job,
				Primes:      primes,
				Emitted:     rec.values,
				Fingerprint: fp,
				Elapsed:     time.Since(start),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Jobs skipped before dispatch leave no error in the group.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg.logger.Debug("batch complete",
		zap.Int("jobs", len(jobs)),
		zap.Int("workers", cfg.workers),
		zap.Stringer("hash", cfg.hash))
	return results, nil
}
