package collector

import (
	"context"
	"errors"
	"runtime"
	"testing"

	gopsutilNet "github.com/shirou/gopsutil/v4/net"
	"github.com/stretchr/testify/assert"

	"github.com/monify-labs/sysinfo/internal/report"
)

func TestCollectExtended(t *testing.T) {
	r := newFakeRunner().
		on("go version", "go version go1.22.1 linux/amd64\n").
		on("java -version", "openjdk version \"17.0.9\" 2023-10-17\nOpenJDK Runtime Environment (build 17.0.9+9)\n").
		on("locale charmap", "UTF-8\n")
	r.paths["go"] = "/usr/local/go/bin/go"
	r.paths["java"] = "/usr/bin/java"

	rep := report.New()
	CollectExtended(context.Background(), "linux", testEnv(r, ""), rep)

	assert.Equal(t, []string{
		"=== Additional System Information ===",
		"Processor Architecture: x86_64",
		"OS Platform: ubuntu",
		"OS Version: 22.04",
		"Kernel Version: 5.15.0-91-generic",
		"CPU Vendor: GenuineIntel",
		"System Uptime: 2 days, 3 hours, 4 minutes",
		"",
		"=== Networking Information ===",
		"Hostname: build-01",
		"Local IP Address: 10.0.0.5, 203.0.113.7",
		"",
		"=== Programming Languages Environment ===",
		"",
		"Go:",
		"  Version: go version go1.22.1 linux/amd64",
		"  Path: /usr/local/go/bin/go",
		"",
		"Java:",
		"  Version: openjdk version \"17.0.9\" 2023-10-17",
		"  Path: /usr/bin/java",
		"",
		"=== Locale and Encoding Information ===",
		"Default Locale: en_US.UTF-8",
		"Preferred Encoding: UTF-8",
	}, rep.Lines())
}

func TestWriteSystemInfoPartialFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(env *Env)
		want  []string
	}{
		{
			name: "platform fails",
			setup: func(env *Env) {
				env.Platform = func(context.Context) (string, string, string, error) {
					return "", "", "", errors.New("no os-release")
				}
			},
			want: []string{
				"=== Additional System Information ===",
				"Processor Architecture: x86_64",
				"OS Platform: Unknown",
				"OS Version: Unknown",
				"Kernel Version: 5.15.0-91-generic",
				"CPU Vendor: GenuineIntel",
				"System Uptime: 2 days, 3 hours, 4 minutes",
			},
		},
		{
			name: "kernel and uptime fail",
			setup: func(env *Env) {
				env.KernelVersion = func(context.Context) (string, error) { return "", errors.New("no uname") }
				env.Uptime = func(context.Context) (uint64, error) { return 0, errors.New("no boot time") }
			},
			want: []string{
				"=== Additional System Information ===",
				"Processor Architecture: x86_64",
				"OS Platform: ubuntu",
				"OS Version: 22.04",
				"Kernel Version: Unknown",
				"CPU Vendor: GenuineIntel",
				"System Uptime: Unknown",
			},
		},
		{
			name: "arch and vendor missing",
			setup: func(env *Env) {
				env.KernelArch = func() (string, error) { return "", errors.New("no arch") }
				env.CPUVendor = func() string { return "" }
			},
			want: []string{
				"=== Additional System Information ===",
				"Processor Architecture: " + runtime.GOARCH,
				"OS Platform: ubuntu",
				"OS Version: 22.04",
				"Kernel Version: 5.15.0-91-generic",
				"CPU Vendor: Unknown",
				"System Uptime: 2 days, 3 hours, 4 minutes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testEnv(newFakeRunner(), "")
			tt.setup(env)

			rep := report.New()
			writeSystemInfo(context.Background(), env, rep)
			assert.Equal(t, tt.want, rep.Lines())
		})
	}
}

func TestWriteNetworkInfoFailures(t *testing.T) {
	env := testEnv(newFakeRunner(), "")
	env.Hostname = func() (string, error) { return "", errors.New("no hostname") }
	env.Interfaces = func(context.Context) (gopsutilNet.InterfaceStatList, error) {
		return nil, errors.New("no interfaces")
	}

	rep := report.New()
	writeNetworkInfo(context.Background(), env, rep)

	assert.Equal(t, []string{
		"=== Networking Information ===",
		"Hostname: Unknown",
		"Local IP Address: Not available",
	}, rep.Lines())
}

func TestLocalIPs(t *testing.T) {
	env := testEnv(newFakeRunner(), "")
	env.Interfaces = func(context.Context) (gopsutilNet.InterfaceStatList, error) {
		return gopsutilNet.InterfaceStatList{
			{Name: "eth0", Addrs: gopsutilNet.InterfaceAddrList{
				{Addr: "198.51.100.20/24"},
				{Addr: "0.0.0.0"},
				{Addr: "169.254.3.4/16"},
				{Addr: "2001:db8::1/64"},
				{Addr: "garbage"},
			}},
			{Name: "wlan0", Addrs: gopsutilNet.InterfaceAddrList{{Addr: "192.168.1.23"}}},
		}, nil
	}

	assert.Equal(t, []string{"192.168.1.23", "198.51.100.20", "2001:db8::1"}, localIPs(context.Background(), env))
}

func TestWriteLanguagesNoneFound(t *testing.T) {
	rep := report.New()
	writeLanguages(context.Background(), testEnv(newFakeRunner(), ""), rep)

	assert.Equal(t, []string{
		"=== Programming Languages Environment ===",
		"No known toolchains found on PATH.",
	}, rep.Lines())
}

func TestToolchainVersionSilent(t *testing.T) {
	r := newFakeRunner().on("perl -e print $^V", "\n\n")
	r.paths["perl"] = "/usr/bin/perl"

	rep := report.New()
	writeLanguages(context.Background(), testEnv(r, ""), rep)

	assert.Equal(t, []string{
		"=== Programming Languages Environment ===",
		"",
		"Perl:",
		"  Version: Not available",
		"  Path: /usr/bin/perl",
	}, rep.Lines())
}

func TestWriteLocale(t *testing.T) {
	t.Run("windows", func(t *testing.T) {
		r := newFakeRunner().
			on("powershell -Command (Get-UICulture).Name", "en-US\r\n").
			on("chcp", "Active code page: 65001\r\n")

		rep := report.New()
		writeLocale(context.Background(), "windows", testEnv(r, ""), rep)

		assert.Equal(t, []string{
			"=== Locale and Encoding Information ===",
			"Default Locale: en-US",
			"Preferred Encoding: Active code page: 65001",
		}, rep.Lines())
	})

	t.Run("LC_ALL wins", func(t *testing.T) {
		env := testEnv(newFakeRunner(), "")
		env.Getenv = func(key string) string {
			return map[string]string{"LC_ALL": "de_DE.UTF-8", "LANG": "C"}[key]
		}

		rep := report.New()
		writeLocale(context.Background(), "darwin", env, rep)

		assert.Equal(t, []string{
			"=== Locale and Encoding Information ===",
			"Default Locale: de_DE.UTF-8",
			"Preferred Encoding: Not available",
		}, rep.Lines())
	})

	t.Run("nothing set", func(t *testing.T) {
		env := testEnv(newFakeRunner(), "")
		env.Getenv = func(string) string { return "" }

		rep := report.New()
		writeLocale(context.Background(), "linux", env, rep)

		assert.Equal(t, []string{
			"=== Locale and Encoding Information ===",
			"Default Locale: Not available",
			"Preferred Encoding: Not available",
		}, rep.Lines())
	})
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0 days, 0 hours, 0 minutes", formatUptime(59))
	assert.Equal(t, "1 days, 1 hours, 1 minutes", formatUptime(86400+3600+60))
	assert.Equal(t, "10 days, 23 hours, 59 minutes", formatUptime(10*86400+23*3600+59*60+59))
}
