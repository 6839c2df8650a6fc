// Package affinity pins the calling goroutine's OS thread to a specific CPU
// core. It is best-effort: a failure to pin is returned to the caller as an
// error, never fatal, since the pipeline still functions (just without the
// latency benefit) on an unpinned core.
package affinity

import "runtime"

// Pin locks the calling goroutine to its current OS thread and requests that
// thread run only on coreID. coreID < 0 means "no pinning requested"; Pin
// still locks the OS thread (callers that care about affinity generally
// also care about not migrating between threads) but skips the syscall.
// Callers must run Pin from the goroutine they want pinned and keep running
// on it for the lifetime of the pin; unlocking is the caller's
// responsibility via runtime.UnlockOSThread.
func Pin(coreID int) error {
	runtime.LockOSThread()
	if coreID < 0 {
		return nil
	}
	return setAffinity(coreID)
}
