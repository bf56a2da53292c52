// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations start their own goroutines or
// schedulers and return. Stop halts them and waits for in-flight work.
type Worker interface {
	Run()
	Stop()
}

// Sweeper is the part of the garbage collector a scheduled job drives.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}
