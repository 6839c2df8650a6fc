//go:build !linux

package affinity

// setAffinity is a no-op outside Linux; sched_setaffinity has no portable
// equivalent, and pinning is a latency optimization, not a correctness
// requirement.
func setAffinity(coreID int) error {
	return nil
}
