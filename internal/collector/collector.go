// Package collector gathers CPU and memory facts by invoking each operating
// system's own diagnostic tools and writes them into a report.
//
// Every collector is best effort: a missing or failing command produces an
// "Unknown" placeholder or a short failure line, never an error.
package collector

import (
	"context"
	"os"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/host"
	gopsutilNet "github.com/shirou/gopsutil/v4/net"
	"github.com/sirupsen/logrus"

	"github.com/monify-labs/sysinfo/internal/report"
	"github.com/monify-labs/sysinfo/internal/runner"
)

// Unknown is printed in place of a fact that could not be retrieved
const Unknown = "Unknown"

// Env carries what collectors need to inspect the host
type Env struct {
	Runner   runner.Runner
	ProcRoot string
	Log      logrus.FieldLogger

	// Host lookups used by the extended sections
	Platform      func(ctx context.Context) (platform, family, version string, err error)
	KernelVersion func(ctx context.Context) (string, error)
	KernelArch    func() (string, error)
	Uptime        func(ctx context.Context) (uint64, error)
	Interfaces    func(ctx context.Context) (gopsutilNet.InterfaceStatList, error)
	Hostname      func() (string, error)
	Getenv        func(key string) string
	CPUVendor     func() string
}

// NewEnv creates an environment backed by the real host
func NewEnv(r runner.Runner, procRoot string, log logrus.FieldLogger) *Env {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Env{
		Runner:        r,
		ProcRoot:      procRoot,
		Log:           log,
		Platform:      host.PlatformInformationWithContext,
		KernelVersion: host.KernelVersionWithContext,
		KernelArch:    host.KernelArch,
		Uptime:        host.UptimeWithContext,
		Interfaces:    gopsutilNet.InterfacesWithContext,
		Hostname:      os.Hostname,
		Getenv:        os.Getenv,
		CPUVendor:     func() string { return cpuid.CPU.VendorString },
	}
}

// Func writes the facts for one platform into the report
type Func func(ctx context.Context, env *Env, r *report.Report)

// output runs a command and returns its raw stdout, logging failures
func (e *Env) output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := e.Runner.Output(ctx, name, args...)
	if err != nil {
		e.Log.WithFields(logrus.Fields{
			"command": name,
			"args":    strings.Join(args, " "),
		}).WithError(err).Debug("Command failed")
		return "", err
	}
	return out, nil
}

// trimmed runs a command and returns its stdout without surrounding whitespace
func (e *Env) trimmed(ctx context.Context, name string, args ...string) (string, error) {
	out, err := e.output(ctx, name, args...)
	return strings.TrimSpace(out), err
}

// sysctl reads a single value with `sysctl -n key`
func (e *Env) sysctl(ctx context.Context, key string) (string, error) {
	return e.trimmed(ctx, "sysctl", "-n", key)
}

func valueOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
