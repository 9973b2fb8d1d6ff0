// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and must not block: long-running work is expected
// to happen in goroutines the worker owns. Stop releases them and waits
// until they have finished.
type Worker interface {
	Run()
	Stop()
}
