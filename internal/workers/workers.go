package workers

import "golang.org/x/sync/errgroup"

// Workers is a batch of workers run together.
type Workers struct {
	limit   int
	workers []Worker
}

// New returns a group running at most limit workers at a time. A limit of
// zero or less means no limit.
func New(limit int, workers ...Worker) *Workers {
	return &Workers{limit: limit, workers: workers}
}

// Add appends workers to the batch. It must not be called during Run.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Len returns the number of workers in the batch.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them, even after one fails.
// It returns the first error reported.
func (w *Workers) Run() error {
	var g errgroup.Group
	if w.limit > 0 {
		g.SetLimit(w.limit)
	}

	for _, worker := range w.workers {
		g.Go(worker.Run)
	}
	return g.Wait()
}
