// Package workers provides abstractions for running groups of workers
// concurrently and waiting for all of them.
// It defines the Worker interface and a Workers aggregate that runs a batch
// of workers with an optional concurrency limit.
package workers

// Worker is the interface that must be implemented by any unit of work run
// through a Workers group.
//
// Run blocks for the duration of the work and reports its outcome.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run() error {
//	    // do the work
//	    return nil
//	}
type Worker interface {
	Run() error
}

// WorkerFunc adapts an ordinary function to the Worker interface.
type WorkerFunc func() error

// Run calls f.
func (f WorkerFunc) Run() error {
	return f()
}
