package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var prtconfMemory = regexp.MustCompile(`(?i)Memory size:\s+(\d+)\s+Megabytes`)

// FreeTotal extracts the total memory in bytes from `free -b` output
func FreeTotal(text string) (uint64, bool) {
	for _, line := range Lines(text) {
		if !strings.HasPrefix(strings.ToLower(line), "mem:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		total, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return 0, false
		}
		return total, true
	}
	return 0, false
}

// PrtconfMemoryMB extracts the "Memory size: N Megabytes" figure from
// Solaris prtconf output
func PrtconfMemoryMB(text string) (string, bool) {
	m := prtconfMemory.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
