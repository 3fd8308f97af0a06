package collector

import (
	"context"

	"github.com/monify-labs/sysinfo/internal/report"
)

const notAvailable = "Not available"

// writeLocale reports the UI locale and the console encoding
func writeLocale(ctx context.Context, osID string, env *Env, r *report.Report) {
	r.Heading("=== Locale and Encoding Information ===")

	var locale, encoding string
	if osID == "windows" {
		locale, _ = env.trimmed(ctx, "powershell", "-Command", "(Get-UICulture).Name")
		encoding, _ = env.trimmed(ctx, "chcp")
	} else {
		for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
			if v := env.Getenv(key); v != "" {
				locale = v
				break
			}
		}
		encoding, _ = env.trimmed(ctx, "locale", "charmap")
	}

	r.Linef("Default Locale: %s", valueOr(locale, notAvailable))
	r.Linef("Preferred Encoding: %s", valueOr(encoding, notAvailable))
}
