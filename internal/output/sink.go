package output

import (
	"context"

	"github.com/monify-labs/sysinfo/internal/report"
)

// Sink is the interface for delivering a finished report
type Sink interface {
	// Write delivers the report
	Write(ctx context.Context, r *report.Report) error

	// Close releases resources held by the sink
	Close() error
}
