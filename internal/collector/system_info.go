package collector

import (
	"context"
	"fmt"
	"runtime"

	"github.com/monify-labs/sysinfo/internal/report"
)

// CollectExtended appends the sections beyond CPU and memory: OS details,
// networking, installed toolchains, and locale
func CollectExtended(ctx context.Context, osID string, env *Env, r *report.Report) {
	writeSystemInfo(ctx, env, r)
	writeNetworkInfo(ctx, env, r)
	writeLanguages(ctx, env, r)
	writeLocale(ctx, Normalize(osID), env, r)
}

// writeSystemInfo gathers OS, kernel, and uptime information. Each lookup
// fails on its own.
func writeSystemInfo(ctx context.Context, env *Env, r *report.Report) {
	r.Heading("=== Additional System Information ===")

	arch, err := env.KernelArch()
	if err != nil || arch == "" {
		arch = runtime.GOARCH
	}
	r.Linef("Processor Architecture: %s", arch)

	platform, _, version, err := env.Platform(ctx)
	if err != nil {
		env.Log.WithError(err).Debug("Failed to read platform information")
		platform, version = "", ""
	}
	r.Linef("OS Platform: %s", valueOr(platform, Unknown))
	r.Linef("OS Version: %s", valueOr(version, Unknown))

	kernel, err := env.KernelVersion(ctx)
	if err != nil {
		env.Log.WithError(err).Debug("Failed to read kernel version")
		kernel = ""
	}
	r.Linef("Kernel Version: %s", valueOr(kernel, Unknown))

	r.Linef("CPU Vendor: %s", valueOr(env.CPUVendor(), Unknown))

	if uptime, err := env.Uptime(ctx); err == nil {
		r.Linef("System Uptime: %s", formatUptime(uptime))
	} else {
		env.Log.WithError(err).Debug("Failed to read uptime")
		r.Line("System Uptime: Unknown")
	}
}

// formatUptime renders seconds as "D days, H hours, M minutes"
func formatUptime(secs uint64) string {
	days := secs / 86400
	hours := (secs % 86400) / 3600
	minutes := (secs % 3600) / 60
	return fmt.Sprintf("%d days, %d hours, %d minutes", days, hours, minutes)
}
