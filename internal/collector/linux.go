package collector

import (
	"context"
	"errors"
	"strconv"

	"github.com/prometheus/procfs"

	"github.com/monify-labs/sysinfo/internal/parse"
	"github.com/monify-labs/sysinfo/internal/report"
	"github.com/monify-labs/sysinfo/internal/runner"
)

// collectLinux reads CPU facts from lscpu, falling back to /proc/cpuinfo,
// and total memory from free or /proc/meminfo
func collectLinux(ctx context.Context, env *Env, r *report.Report) {
	out, err := env.output(ctx, "lscpu")
	switch {
	case errors.Is(err, runner.ErrNotFound):
		r.Line("lscpu not found; falling back to minimal /proc/cpuinfo parsing.")
		writeCPUInfoFallback(env, r)
	case err != nil:
		r.Line("lscpu failed; falling back to minimal /proc/cpuinfo parsing.")
		writeCPUInfoFallback(env, r)
	default:
		writeLscpu(r, parse.Colon(out))
	}

	r.Heading("=== Memory Information (Linux) ===")
	if total, ok := linuxMemoryBytes(ctx, env); ok {
		r.Linef("Total System RAM: %d bytes", total)
	} else {
		r.Line("Total System RAM: Unknown (could not retrieve)")
	}
}

func writeLscpu(r *report.Report, info parse.Fields) {
	r.Heading("=== CPU Information (Linux) ===")
	r.Linef("CPU Name: %s", info.Get("Model name", Unknown))

	hasSockets := info.Has("Socket(s)")
	if hasSockets {
		r.Linef("Sockets: %s", info["Socket(s)"])
	}
	if hasSockets && info.Has("Core(s) per socket") {
		perSocket := info["Core(s) per socket"]
		s, errS := strconv.Atoi(info["Socket(s)"])
		c, errC := strconv.Atoi(perSocket)
		if errS == nil && errC == nil {
			r.Linef("Cores: %d", s*c)
		} else {
			r.Linef("Cores (per socket): %s", perSocket)
		}
	}

	if info.Has("CPU(s)") {
		r.Linef("Logical processors: %s", info["CPU(s)"])
	}
	if v, ok := info["CPU MHz"]; ok {
		r.Linef("Reported Speed: %s MHz", v)
	} else if v, ok := info["CPU max MHz"]; ok {
		// util-linux 2.38+ dropped the current frequency line
		r.Linef("Max Speed: %s MHz", v)
	}

	virt := Unknown
	if v, ok := info["Virtualization"]; ok {
		virt = "Supported: " + v
	}
	if flags := info["Flags"]; flags != "" {
		if parse.VirtFlag.MatchString(flags) {
			virt = "Enabled (VMX/SVM flag present)"
		} else {
			virt = "Not found in CPU flags"
		}
	}
	r.Linef("Virtualization: %s", virt)

	// Older lscpu prints "L1d cache", newer ones group "L1d" under "Caches"
	l1d, hasL1d := info.First("L1d cache", "L1d")
	l1i, hasL1i := info.First("L1i cache", "L1i")
	switch {
	case hasL1d && hasL1i:
		r.Linef("L1 cache: %s (data), %s (instruction)", l1d, l1i)
	case hasL1d:
		r.Linef("L1 data cache: %s", l1d)
	case hasL1i:
		r.Linef("L1 instruction cache: %s", l1i)
	}
	if v, ok := info.First("L2 cache", "L2"); ok {
		r.Linef("L2 cache: %s", v)
	}
	if v, ok := info.First("L3 cache", "L3"); ok {
		r.Linef("L3 cache: %s", v)
	}
}

// cpuSummary is what the fallback reports from /proc/cpuinfo
type cpuSummary struct {
	ModelName      string
	Sockets        int
	Cores          int
	HasCores       bool // false when no physical/core id pairs are listed
	Logical        int
	Virtualization bool
	CacheSize      string
}

func writeCPUInfoFallback(env *Env, r *report.Report) {
	info, err := readCPUInfo(env.ProcRoot)
	if err != nil {
		env.Log.WithError(err).WithField("proc_root", env.ProcRoot).Debug("Failed to read cpuinfo")
		r.Line("Could not parse /proc/cpuinfo properly.")
		return
	}

	r.Heading("=== CPU Information (Linux - fallback) ===")
	if info.ModelName != "" {
		r.Linef("CPU Name: %s", info.ModelName)
	}
	r.Linef("Sockets: %d", info.Sockets)
	if info.HasCores {
		r.Linef("Cores: %d", info.Cores)
	}
	r.Linef("Logical processors: %d", info.Logical)
	if info.Virtualization {
		r.Line("Virtualization: Enabled (vmx/svm flag present)")
	} else {
		r.Line("Virtualization: Not detected in flags")
	}
	if info.CacheSize != "" {
		r.Linef("Cache (likely L2 or L3): %s", info.CacheSize)
	}
}

// linuxMemoryBytes tries `free -b` first, then MemTotal from /proc/meminfo
func linuxMemoryBytes(ctx context.Context, env *Env) (uint64, bool) {
	if out, err := env.output(ctx, "free", "-b"); err == nil {
		if total, ok := parse.FreeTotal(out); ok && total > 0 {
			return total, true
		}
	}

	fs, err := procfs.NewFS(env.ProcRoot)
	if err != nil {
		env.Log.WithError(err).Debug("Failed to open procfs")
		return 0, false
	}
	meminfo, err := fs.Meminfo()
	if err != nil {
		env.Log.WithError(err).Debug("Failed to read meminfo")
		return 0, false
	}
	if meminfo.MemTotal == nil || *meminfo.MemTotal == 0 {
		return 0, false
	}
	return *meminfo.MemTotal * 1024, true
}
