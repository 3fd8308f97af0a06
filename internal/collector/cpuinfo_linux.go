//go:build linux

package collector

import (
	"errors"

	"github.com/prometheus/procfs"

	"github.com/monify-labs/sysinfo/internal/parse"
)

var errNoCPUs = errors.New("no processors listed in cpuinfo")

// readCPUInfo summarizes <procRoot>/cpuinfo
func readCPUInfo(procRoot string) (cpuSummary, error) {
	fs, err := procfs.NewFS(procRoot)
	if err != nil {
		return cpuSummary{}, err
	}
	cpus, err := fs.CPUInfo()
	if err != nil {
		return cpuSummary{}, err
	}
	if len(cpus) == 0 {
		return cpuSummary{}, errNoCPUs
	}
	return summarizeCPUs(cpus), nil
}

// summarizeCPUs counts sockets as distinct physical ids (1 when none are
// listed) and cores as distinct (physical id, core id) pairs
func summarizeCPUs(cpus []procfs.CPUInfo) cpuSummary {
	s := cpuSummary{Logical: len(cpus)}

	sockets := make(map[string]struct{})
	cores := make(map[[2]string]struct{})
	for _, cpu := range cpus {
		if s.ModelName == "" {
			s.ModelName = cpu.ModelName
		}
		if s.CacheSize == "" {
			s.CacheSize = cpu.CacheSize
		}
		if cpu.PhysicalID != "" {
			sockets[cpu.PhysicalID] = struct{}{}
			if cpu.CoreID != "" {
				cores[[2]string{cpu.PhysicalID, cpu.CoreID}] = struct{}{}
			}
		}
		if parse.HasVirtFlag(cpu.Flags) {
			s.Virtualization = true
		}
	}

	s.Sockets = len(sockets)
	if s.Sockets == 0 {
		s.Sockets = 1
	}
	if len(cores) > 0 {
		s.Cores = len(cores)
		s.HasCores = true
	}
	return s
}
