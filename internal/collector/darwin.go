package collector

import (
	"context"
	"strings"

	"github.com/monify-labs/sysinfo/internal/parse"
	"github.com/monify-labs/sysinfo/internal/report"
)

// collectDarwin reads CPU and memory facts from sysctl
func collectDarwin(ctx context.Context, env *Env, r *report.Report) {
	r.Heading("=== CPU Information (macOS) ===")

	if brand, err := env.sysctl(ctx, "machdep.cpu.brand_string"); err == nil {
		r.Linef("CPU Name: %s", brand)
	} else {
		r.Line("CPU Name: Unknown (sysctl machdep.cpu.brand_string failed)")
	}

	if ncpu, err := env.sysctl(ctx, "hw.ncpu"); err == nil {
		r.Linef("Logical processors: %s", ncpu)
	} else {
		r.Line("Logical processors: Unknown")
	}

	if physical, err := env.sysctl(ctx, "hw.physicalcpu"); err == nil {
		r.Linef("Physical cores: %s", physical)
	} else {
		r.Line("Physical cores: Unknown")
	}

	// Apple silicon has no machdep.cpu.features
	virt := Unknown
	if features, err := env.sysctl(ctx, "machdep.cpu.features"); err == nil {
		if strings.Contains(features, "VMX") {
			virt = "Enabled (VMX flag present)"
		} else {
			virt = "Not found in CPU features"
		}
	}
	r.Linef("Virtualization: %s", virt)

	r.Heading("=== Memory Information (macOS) ===")
	memsize, err := env.sysctl(ctx, "hw.memsize")
	switch {
	case err != nil:
		r.Line("Total System RAM: Unknown (sysctl hw.memsize failed)")
	case parse.IsDigits(memsize):
		r.Linef("Total System RAM: %s bytes", memsize)
	default:
		r.Line("Total System RAM: Unknown (hw.memsize not valid)")
	}
}
