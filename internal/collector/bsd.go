package collector

import (
	"context"
	"strconv"
	"strings"

	"github.com/monify-labs/sysinfo/internal/report"
)

// bsdProfile names the sysctl keys one BSD flavour exposes
type bsdProfile struct {
	name        string
	modelKey    string
	featuresKey string
	vendorKey   string // when set, the vendor must match the feature flag
	memKey      string
}

var (
	freeBSD = bsdProfile{
		name:        "FreeBSD",
		modelKey:    "hw.model",
		featuresKey: "machdep.cpu_features",
		memKey:      "hw.physmem",
	}
	openBSD = bsdProfile{
		name:        "OpenBSD",
		modelKey:    "hw.model",
		featuresKey: "machdep.cpu.features",
		vendorKey:   "hw.vendor",
		memKey:      "hw.physmem",
	}
	netBSD = bsdProfile{
		name:        "NetBSD",
		modelKey:    "machdep.cpu_brand",
		featuresKey: "machdep.cpu_features",
		memKey:      "hw.physmem64",
	}
	dragonFly = bsdProfile{
		name:        "DragonFly BSD",
		modelKey:    "hw.model",
		featuresKey: "machdep.cpu_features",
		memKey:      "hw.physmem",
	}
)

const bytesPerGB = 1 << 30

func bsdCollector(p bsdProfile) Func {
	return func(ctx context.Context, env *Env, r *report.Report) {
		collectBSD(ctx, env, r, p)
	}
}

func collectBSD(ctx context.Context, env *Env, r *report.Report, p bsdProfile) {
	r.Heading("=== CPU Information (" + p.name + ") ===")

	if model, err := env.sysctl(ctx, p.modelKey); err == nil {
		r.Linef("CPU Name: %s", model)
	} else {
		r.Line("CPU Name: Unknown")
	}

	if ncpu, err := env.sysctl(ctx, "hw.ncpu"); err == nil {
		r.Linef("Logical processors: %s", ncpu)
	} else {
		r.Line("Logical processors: Unknown")
	}

	r.Linef("Virtualization: %s", bsdVirtualization(ctx, env, p))

	r.Heading("=== Memory Information (" + p.name + ") ===")
	physmem, err := env.sysctl(ctx, p.memKey)
	if err == nil {
		if n, perr := strconv.ParseInt(physmem, 10, 64); perr == nil {
			r.Linef("Total System RAM: %.1f GB", float64(n)/bytesPerGB)
			return
		}
	}
	r.Line("Total System RAM: Unknown")
}

func bsdVirtualization(ctx context.Context, env *Env, p bsdProfile) string {
	if p.vendorKey != "" {
		vendor, err := env.sysctl(ctx, p.vendorKey)
		if err != nil {
			return Unknown
		}
		features, err := env.sysctl(ctx, p.featuresKey)
		if err != nil {
			return Unknown
		}
		vendor = strings.ToLower(vendor)
		features = strings.ToLower(features)
		switch {
		case strings.Contains(features, "vmx") && strings.Contains(vendor, "intel"):
			return "VMX (Intel VT-x) present"
		case strings.Contains(features, "svm") && strings.Contains(vendor, "amd"):
			return "SVM (AMD-V) present"
		}
		return Unknown
	}

	features, err := env.sysctl(ctx, p.featuresKey)
	if err != nil {
		return Unknown
	}
	switch {
	case strings.Contains(features, "VMX"):
		return "VMX (Intel VT-x) present"
	case strings.Contains(features, "SVM"):
		return "SVM (AMD-V) present"
	}
	return Unknown
}
