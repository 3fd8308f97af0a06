package collector

import (
	"context"
	"sort"
	"strings"

	"github.com/monify-labs/sysinfo/internal/parse"
	"github.com/monify-labs/sysinfo/internal/report"
)

type toolchain struct {
	label string
	cmd   string
	args  []string
}

var toolchains = []toolchain{
	{"C (GCC)", "gcc", []string{"--version"}},
	{"C++ (G++)", "g++", []string{"--version"}},
	{"D (DMD)", "dmd", []string{"--version"}},
	{"Go", "go", []string{"version"}},
	{"Java", "java", []string{"-version"}},
	{"Node.js", "node", []string{"--version"}},
	{"PHP", "php", []string{"-v"}},
	{"Perl", "perl", []string{"-e", "print $^V"}},
	{"Python", "python", []string{"--version"}},
	{"R", "R", []string{"--version"}},
	{"Ruby", "ruby", []string{"--version"}},
	{"Rust", "rustc", []string{"--version"}},
}

// writeLanguages lists the toolchains found on PATH with their versions
func writeLanguages(ctx context.Context, env *Env, r *report.Report) {
	r.Heading("=== Programming Languages Environment ===")

	sorted := make([]toolchain, len(toolchains))
	copy(sorted, toolchains)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].label < sorted[j].label })

	found := 0
	for _, tc := range sorted {
		path, err := env.Runner.LookPath(tc.cmd)
		if err != nil || strings.TrimSpace(path) == "" {
			continue
		}
		found++

		r.Line("")
		r.Linef("%s:", tc.label)
		r.Linef("  Version: %s", toolchainVersion(ctx, env, tc))
		r.Linef("  Path: %s", path)
	}

	if found == 0 {
		r.Line("No known toolchains found on PATH.")
	}
}

// toolchainVersion returns the first non-empty line the tool prints.
// java and older python report on stderr.
func toolchainVersion(ctx context.Context, env *Env, tc toolchain) string {
	out, err := env.Runner.CombinedOutput(ctx, tc.cmd, tc.args...)
	if err != nil {
		env.Log.WithField("command", tc.cmd).WithError(err).Debug("Version check failed")
	}
	for _, line := range parse.Lines(out) {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return notAvailable
}
