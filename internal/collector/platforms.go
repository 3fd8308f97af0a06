package collector

import (
	"sort"
	"strings"
)

// UnsupportedMessage is the whole report for an OS without a collector
const UnsupportedMessage = "Unsupported platform. Contributions welcome!"

// Platform binds an OS identifier to its collector
type Platform struct {
	ID      string
	Name    string
	Collect Func
}

var platforms = map[string]Platform{
	"windows":   {ID: "windows", Name: "Windows", Collect: collectWindows},
	"linux":     {ID: "linux", Name: "Linux", Collect: collectLinux},
	"darwin":    {ID: "darwin", Name: "macOS", Collect: collectDarwin},
	"freebsd":   {ID: "freebsd", Name: "FreeBSD", Collect: bsdCollector(freeBSD)},
	"openbsd":   {ID: "openbsd", Name: "OpenBSD", Collect: bsdCollector(openBSD)},
	"netbsd":    {ID: "netbsd", Name: "NetBSD", Collect: bsdCollector(netBSD)},
	"dragonfly": {ID: "dragonfly", Name: "DragonFly BSD", Collect: bsdCollector(dragonFly)},
	"solaris":   {ID: "solaris", Name: "Solaris", Collect: collectSolaris},
	"aix":       {ID: "aix", Name: "AIX", Collect: collectAIX},
	"haiku":     {ID: "haiku", Name: "Haiku", Collect: collectHaiku},
	"plan9":     {ID: "plan9", Name: "Plan 9", Collect: collectPlan9},
	"minix":     {ID: "minix", Name: "Minix", Collect: collectMinix},
	"android":   {ID: "android", Name: "Android", Collect: collectAndroid},
}

// Normalize maps a platform name to the identifier used by the dispatch table
func Normalize(osID string) string {
	id := strings.ToLower(strings.TrimSpace(osID))
	switch {
	case strings.HasPrefix(id, "win"):
		return "windows"
	case strings.HasPrefix(id, "plan9"):
		return "plan9"
	case id == "sunos" || id == "illumos":
		return "solaris"
	}
	return id
}

// Lookup returns the collector for an OS identifier
func Lookup(osID string) (Platform, bool) {
	p, ok := platforms[Normalize(osID)]
	return p, ok
}

// Supported lists the identifiers that have a collector
func Supported() []string {
	ids := make([]string, 0, len(platforms))
	for id := range platforms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
