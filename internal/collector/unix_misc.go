package collector

import (
	"context"
	"strings"

	"github.com/monify-labs/sysinfo/internal/parse"
	"github.com/monify-labs/sysinfo/internal/report"
)

// collectSolaris prints psrinfo verbatim and the prtconf memory size
func collectSolaris(ctx context.Context, env *Env, r *report.Report) {
	r.Heading("=== CPU Information (Solaris) ===")
	if out, err := env.output(ctx, "psrinfo", "-pv"); err == nil {
		for _, line := range parse.Lines(out) {
			r.Line(strings.TrimSpace(line))
		}
	} else {
		r.Line("psrinfo command failed or not found.")
	}

	r.Heading("=== Memory Information (Solaris) ===")
	out, err := env.output(ctx, "prtconf")
	if err != nil {
		r.Line("prtconf command failed or not found.")
		return
	}
	if mb, ok := parse.PrtconfMemoryMB(out); ok {
		r.Linef("Total System RAM: %s MB", mb)
	} else {
		r.Line("Total System RAM: Unknown (not found in prtconf)")
	}
}

// collectAIX prints lsconf and the sys0 attributes verbatim
func collectAIX(ctx context.Context, env *Env, r *report.Report) {
	r.Heading("=== CPU Information (AIX) ===")
	verbatim(ctx, env, r, "Failed to retrieve CPU info on AIX.", "lsconf")

	r.Heading("=== Memory Information (AIX) ===")
	verbatim(ctx, env, r, "Failed to retrieve memory info on AIX.", "lsattr", "-El", "sys0")
}

// collectHaiku prints the sysinfo CPU and memory pages verbatim
func collectHaiku(ctx context.Context, env *Env, r *report.Report) {
	r.Heading("=== CPU Information (Haiku) ===")
	verbatim(ctx, env, r, "Failed to retrieve CPU info on Haiku.", "sysinfo", "--cpu")

	r.Heading("=== Memory Information (Haiku) ===")
	verbatim(ctx, env, r, "Failed to retrieve memory info on Haiku.", "sysinfo", "--mem")
}

func collectPlan9(ctx context.Context, env *Env, r *report.Report) {
	r.Heading("=== CPU and Memory Information (Plan 9) ===")
	verbatim(ctx, env, r, "Plan 9 system info retrieval not implemented.", "plumber", "ls")
}

func collectMinix(ctx context.Context, env *Env, r *report.Report) {
	r.Heading("=== CPU and Memory Information (Minix) ===")
	verbatim(ctx, env, r, "Minix system info retrieval not implemented.", "uname", "-a")
}

// collectAndroid reuses the Linux tools, which most Android shells ship
func collectAndroid(ctx context.Context, env *Env, r *report.Report) {
	r.Heading("=== CPU and Memory Information (Android) ===")
	r.Line("Android detected. Using Linux system info retrieval:")
	collectLinux(ctx, env, r)
}

// verbatim copies a command's trimmed output into the report, or the
// failure line when the command is missing or fails
func verbatim(ctx context.Context, env *Env, r *report.Report, failure, name string, args ...string) {
	out, err := env.trimmed(ctx, name, args...)
	if err != nil {
		r.Line(failure)
		return
	}
	for _, line := range parse.Lines(out) {
		r.Line(line)
	}
}
