package parse

import "regexp"

// VirtFlag matches the Intel VT-x or AMD-V cpu flag in a flag list
var VirtFlag = regexp.MustCompile(`\b(vmx|svm)\b`)

// HasVirtFlag reports whether vmx or svm is among the cpu flags
func HasVirtFlag(flags []string) bool {
	for _, f := range flags {
		if f == "vmx" || f == "svm" {
			return true
		}
	}
	return false
}
