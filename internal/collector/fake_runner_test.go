package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gopsutilNet "github.com/shirou/gopsutil/v4/net"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/monify-labs/sysinfo/internal/report"
	"github.com/monify-labs/sysinfo/internal/runner"
)

var errExit = errors.New("exit status 1")

type fakeResult struct {
	out string
	err error
}

// fakeRunner answers commands from a table keyed by the full command line.
// Unknown commands behave like missing binaries.
type fakeRunner struct {
	results map[string]fakeResult
	paths   map[string]string
	calls   []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		results: make(map[string]fakeResult),
		paths:   make(map[string]string),
	}
}

func (f *fakeRunner) on(cmdline, out string) *fakeRunner {
	f.results[cmdline] = fakeResult{out: out}
	return f
}

func (f *fakeRunner) fail(cmdline string) *fakeRunner {
	f.results[cmdline] = fakeResult{err: errExit}
	return f
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, cmdline)
	res, ok := f.results[cmdline]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, runner.ErrNotFound)
	}
	return res.out, res.err
}

func (f *fakeRunner) CombinedOutput(ctx context.Context, name string, args ...string) (string, error) {
	return f.Output(ctx, name, args...)
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if p, ok := f.paths[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%s: %w", name, runner.ErrNotFound)
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// testEnv builds an Env over the fake runner with deterministic host lookups
func testEnv(r *fakeRunner, procRoot string) *Env {
	return &Env{
		Runner:   r,
		ProcRoot: procRoot,
		Log:      testLogger(),
		Platform: func(context.Context) (string, string, string, error) {
			return "ubuntu", "debian", "22.04", nil
		},
		KernelVersion: func(context.Context) (string, error) { return "5.15.0-91-generic", nil },
		KernelArch:    func() (string, error) { return "x86_64", nil },
		Uptime: func(context.Context) (uint64, error) {
			return 2*86400 + 3*3600 + 4*60 + 5, nil
		},
		Interfaces: func(context.Context) (gopsutilNet.InterfaceStatList, error) {
			return gopsutilNet.InterfaceStatList{
				{Name: "lo", Addrs: gopsutilNet.InterfaceAddrList{{Addr: "127.0.0.1/8"}, {Addr: "::1/128"}}},
				{Name: "eth0", Addrs: gopsutilNet.InterfaceAddrList{{Addr: "203.0.113.7/24"}, {Addr: "fe80::1/64"}}},
				{Name: "eth1", Addrs: gopsutilNet.InterfaceAddrList{{Addr: "10.0.0.5/16"}}},
			}, nil
		},
		Hostname:  func() (string, error) { return "build-01", nil },
		Getenv:    func(key string) string { return map[string]string{"LANG": "en_US.UTF-8"}[key] },
		CPUVendor: func() string { return "GenuineIntel" },
	}
}

func fixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func collect(fn Func, env *Env) []string {
	r := report.New()
	fn(context.Background(), env, r)
	return r.Lines()
}
