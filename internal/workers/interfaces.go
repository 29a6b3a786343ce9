// Package workers runs the client's background jobs: the idle auto-lock
// sweep and the PRF salt cache pruner. The Workers aggregate starts and
// stops them as a group.
package workers

// Worker is a background job that can be started. Run must not block the
// caller: implementations either finish quickly or spawn their own
// goroutine. Workers that hold resources additionally expose a Stop method,
// which the aggregate discovers by type assertion.
type Worker interface {
	Run()
}
