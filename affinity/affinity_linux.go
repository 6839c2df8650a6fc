//go:build linux

package affinity

import "golang.org/x/sys/unix"

func setAffinity(coreID int) error {
	var mask unix.CPUSet
	mask.Set(coreID)
	return unix.SchedSetaffinity(0, &mask)
}
