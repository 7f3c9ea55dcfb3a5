package nest

import (
	"sync"

	"github.com/arl/nest/geom"
	"github.com/arl/nest/nesterr"
	"github.com/arl/nest/nfp"
)

// nfpJob is one unit of dispatchable work: compute the NFP for key against
// the resolved polygon pair.
type nfpJob struct {
	key nfp.Key
	a   *geom.Polygon
	b   *geom.Polygon
}

type nfpJobResult struct {
	key   nfp.Key
	value nfp.Value
	err   error
}

// nfpOptions carries the per-run settings computeOne needs beyond the job
// itself.
type nfpOptions struct {
	useHoles       bool
	exploreConcave bool
	scale          float64
}

// runNfpPool computes every job in jobs using a fixed-size goroutine pool
// fed by a job channel and drained through a WaitGroup-guarded result
// channel (SPEC_FULL.md §5), honoring the per-pool cancellation check at
// dispatch. poolSize <= 0 falls back to 1.
func runNfpPool(set *geom.Set, jobs []nfpJob, poolSize int, opts nfpOptions, cancelled func() bool) []nfpJobResult {
	if poolSize <= 0 {
		poolSize = 1
	}

	jobCh := make(chan nfpJob)
	resultCh := make(chan nfpJobResult, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				resultCh <- computeOne(set, job, opts)
			}
		}()
	}

	go func() {
		defer close(jobCh)
		for _, j := range jobs {
			if cancelled() {
				return
			}
			jobCh <- j
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]nfpJobResult, 0, len(jobs))
	for r := range resultCh {
		results = append(results, r)
	}
	return results
}

// computeOne resolves one NFP: the rectangle fast path for inner NFPs
// against a rectangular A, the Minkowski-difference fast path for outer
// NFPs when exploreConcave is off, and the orbiting NFP otherwise
// (spec.md §4.3).
func computeOne(set *geom.Set, job nfpJob, opts nfpOptions) nfpJobResult {
	if job.key.Inside && geom.IsRectangle(job.a, geom.Tolerance) {
		if v, ok := nfp.Rectangle(job.a, job.b); ok {
			return nfpJobResult{key: job.key, value: v}
		}
	}

	if !job.key.Inside && !opts.exploreConcave {
		v, err := nfp.MinkowskiDifference(job.a, job.b, opts.scale)
		if err == nil {
			return nfpJobResult{key: job.key, value: v}
		}
		// Fall through to the orbiting NFP if the fast path failed.
	}

	v, err := nfp.NoFitPolygon(set, job.a, job.b, job.key.Inside, opts.exploreConcave || job.key.Inside, opts.useHoles)
	if err != nil {
		return nfpJobResult{key: job.key, err: nesterr.Wrap(nesterr.NfpSanity, "nfp %+v: %v", job.key, err)}
	}
	return nfpJobResult{key: job.key, value: v}
}
