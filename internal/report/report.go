package report

import (
	"fmt"
	"strings"
)

// Report accumulates the labeled lines of a system information report
type Report struct {
	lines []string
}

// New creates an empty report
func New() *Report {
	return &Report{}
}

// Line appends a single line
func (r *Report) Line(text string) {
	r.lines = append(r.lines, text)
}

// Linef appends a formatted line
func (r *Report) Linef(format string, args ...any) {
	r.Line(fmt.Sprintf(format, args...))
}

// Heading appends a section heading, separated from earlier output by a blank line
func (r *Report) Heading(text string) {
	if len(r.lines) > 0 {
		r.Line("")
	}
	r.Line(text)
}

// Lines returns a copy of the report lines
func (r *Report) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Len returns the number of lines
func (r *Report) Len() int {
	return len(r.lines)
}

// String renders the report, one newline-terminated line each
func (r *Report) String() string {
	var b strings.Builder
	for _, line := range r.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
