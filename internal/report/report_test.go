package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	r := New()
	assert.Equal(t, "", r.String())

	r.Heading("=== CPU Information (Linux) ===")
	r.Linef("Cores: %d", 8)
	r.Heading("=== Memory Information (Linux) ===")
	r.Line("Total System RAM: 1024 bytes")

	assert.Equal(t, 5, r.Len())
	assert.Equal(t, "=== CPU Information (Linux) ===\n"+
		"Cores: 8\n"+
		"\n"+
		"=== Memory Information (Linux) ===\n"+
		"Total System RAM: 1024 bytes\n", r.String())
}

func TestLinesIsCopy(t *testing.T) {
	r := New()
	r.Line("a")

	lines := r.Lines()
	lines[0] = "changed"
	assert.Equal(t, []string{"a"}, r.Lines())
}
