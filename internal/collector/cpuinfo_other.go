//go:build !linux

package collector

import "errors"

var errNoProcCPUInfo = errors.New("/proc/cpuinfo is only read on Linux")

func readCPUInfo(string) (cpuSummary, error) {
	return cpuSummary{}, errNoProcCPUInfo
}
