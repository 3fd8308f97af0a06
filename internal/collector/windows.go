package collector

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/monify-labs/sysinfo/internal/parse"
	"github.com/monify-labs/sysinfo/internal/report"
	"github.com/monify-labs/sysinfo/internal/runner"
)

const wmicCPUFields = "Name,NumberOfCores,NumberOfLogicalProcessors,MaxClockSpeed,L2CacheSize,L3CacheSize,VirtualizationFirmwareEnabled"

// collectWindows reads CPU and memory facts through WMIC
func collectWindows(ctx context.Context, env *Env, r *report.Report) {
	out, err := env.output(ctx, "wmic", "cpu", "get", wmicCPUFields, "/format:list")
	switch {
	case errors.Is(err, runner.ErrNotFound):
		r.Line("wmic command not found on this system.")
	case err != nil:
		r.Line("Failed to retrieve CPU info via wmic.")
	default:
		writeWMICCPU(r, parse.KeyValue(out))
	}

	r.Heading("=== Memory Information (Windows) ===")
	if mb, ok := windowsMemoryMB(ctx, env); ok {
		r.Linef("Total System RAM: %.1f MB", mb)
	} else {
		r.Line("Total System RAM: Unknown (wmic OS call failed)")
	}
}

func writeWMICCPU(r *report.Report, info parse.Fields) {
	r.Heading("=== CPU Information (Windows) ===")
	r.Linef("CPU Name: %s", info.Get("Name", Unknown))

	if v := info["MaxClockSpeed"]; parse.IsDigits(v) {
		r.Linef("Base Speed: %s MHz", v)
	}
	if v, ok := info["NumberOfCores"]; ok {
		r.Linef("Cores: %s", v)
	}
	if v, ok := info["NumberOfLogicalProcessors"]; ok {
		r.Linef("Logical processors: %s", v)
	}
	if kb, ok := digitsKB(info["L2CacheSize"]); ok {
		r.Linef("L2 cache: %.1f MB", kb/1024)
	}
	if kb, ok := digitsKB(info["L3CacheSize"]); ok {
		r.Linef("L3 cache: %.1f MB", kb/1024)
	}

	if strings.EqualFold(info["VirtualizationFirmwareEnabled"], "true") {
		r.Line("Virtualization: Enabled (BIOS/firmware)")
	} else {
		r.Line("Virtualization: Not reported as enabled")
	}
}

// windowsMemoryMB returns TotalVisibleMemorySize converted from KB to MB
func windowsMemoryMB(ctx context.Context, env *Env) (float64, bool) {
	out, err := env.output(ctx, "wmic", "OS", "get", "TotalVisibleMemorySize", "/format:list")
	if err != nil {
		return 0, false
	}
	kb, ok := digitsKB(parse.KeyValue(out)["TotalVisibleMemorySize"])
	if !ok || kb == 0 {
		return 0, false
	}
	return kb / 1024, true
}

func digitsKB(v string) (float64, bool) {
	if !parse.IsDigits(v) {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}
