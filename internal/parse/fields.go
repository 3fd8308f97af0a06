// Package parse turns the text printed by platform diagnostic tools into
// simple field maps and summaries.
package parse

import "strings"

// Fields maps a field name to its value as printed by a diagnostic tool
type Fields map[string]string

// KeyValue parses "Key=Value" lines, the shape of WMIC /format:list output.
// Lines without '=' are ignored; a repeated key keeps its last value.
func KeyValue(text string) Fields {
	return split(text, "=")
}

// Colon parses "Key: Value" lines, the shape of lscpu output.
// Indentation used by newer lscpu releases is discarded.
func Colon(text string) Fields {
	return split(text, ":")
}

func split(text, sep string) Fields {
	fields := make(Fields)
	for _, line := range Lines(text) {
		key, val, ok := strings.Cut(strings.TrimSpace(line), sep)
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return fields
}

// Get returns the value for key, or def when the key is absent
func (f Fields) Get(key, def string) string {
	if v, ok := f[key]; ok {
		return v
	}
	return def
}

// Has reports whether key was present
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// First returns the first non-empty value among keys
func (f Fields) First(keys ...string) (string, bool) {
	for _, k := range keys {
		if v := f[k]; v != "" {
			return v, true
		}
	}
	return "", false
}

// IsDigits reports whether s is a non-empty run of ASCII digits
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Lines splits command output into lines, accepting LF, CRLF and the
// CR CR LF endings wmic produces. A trailing newline does not yield an
// empty last line.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
