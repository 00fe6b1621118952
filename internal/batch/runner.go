package batch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/rhinozelfant/internal/imaging"
)

// Result is the outcome of one Job.
type Result struct {
	Job      Job
	Width    int
	Height   int
	Matched  int
	Duration time.Duration
	Err      error
}

// Summary collects the results of a Run in sequence order.
type Summary struct {
	Results []Result
}

// Succeeded returns the number of jobs that completed without error.
func (s *Summary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of jobs that ended with an error.
func (s *Summary) Failed() int {
	return len(s.Results) - s.Succeeded()
}

// Runner processes the jobs of a Config: load, scan, save.
type Runner struct {
	cfg Config
	log *log.Logger
}

// NewRunner returns a Runner that reports progress to logger. A nil logger
// uses the standard logger.
func NewRunner(cfg Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{cfg: cfg, log: logger}
}

// Run processes every job, at most cfg.Workers at a time.
//
// A failing job does not stop the others. The returned error joins all job
// failures and is nil when every job succeeded. Jobs that have not started
// when ctx is cancelled are skipped with ctx's error.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	jobs := r.cfg.Jobs()
	results := make([]Result, len(jobs))

	var g errgroup.Group
	g.SetLimit(r.cfg.Workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Job: job, Err: err}
				return nil
			}
			results[i] = r.process(job)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Job.Name, res.Err))
		}
	}

	return &Summary{Results: results}, errors.Join(errs...)
}

func (r *Runner) process(job Job) Result {
	res := Result{Job: job}
	start := time.Now()

	r.log.Printf("Current image: %s", job.Name)

	grid, err := imaging.LoadGrid(job.InputPath)
	if err != nil {
		r.log.Printf("%s: read failed: %v", job.Name, err)
		res.Err = err
		return res
	}
	res.Width, res.Height = grid.Width(), grid.Height()
	r.log.Printf("%s: file successfully read (%dx%d)", job.Name, res.Width, res.Height)
	r.debugf("%s: read took %s", job.Name, time.Since(start))

	scanStart := time.Now()
	var out *imaging.Grid
	if r.cfg.Parallel {
		out = grid.ScanForMatchesParallel()
	} else {
		out = grid.ScanForMatches()
	}
	res.Matched = grid.MatchCount()
	r.log.Printf("%s: checked for matches, %d of %d pixels marked", job.Name, res.Matched, grid.Len())
	r.debugf("%s: scan took %s", job.Name, time.Since(scanStart))

	if err := imaging.SaveGrid(out, job.OutputPath); err != nil {
		r.log.Printf("%s: save failed: %v", job.Name, err)
		res.Err = err
		return res
	}
	r.log.Printf("%s: saved to %s", job.Name, job.OutputPath)

	res.Duration = time.Since(start)
	return res
}

func (r *Runner) debugf(format string, args ...interface{}) {
	if r.cfg.Debug {
		r.log.Printf("[debug] "+format, args...)
	}
}
