package blend

import "golang.org/x/sync/errgroup"

// RunParallel is Run with the blocks split across up to workers goroutines.
// The result is bit-identical to Run. workers <= 1, or a pose too small to
// split, falls back to Run. Unlike Run it allocates per call.
func (j *Job) RunParallel(workers int) bool {
	if workers <= 1 || len(j.RestPose) <= chunkBlocks {
		return j.Run()
	}
	if !j.Validate() {
		return false
	}

	p := newPlan(j, selectedKernel())
	n := len(j.RestPose)

	// Ranges start on chunk boundaries.
	chunks := (n + chunkBlocks - 1) / chunkBlocks
	per := (chunks + workers - 1) / workers * chunkBlocks

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += per {
		hi := min(lo+per, n)
		g.Go(func() error {
			p.run(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
	return true
}
