package checker

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/monify-labs/sysinfo/internal/collector"
	"github.com/monify-labs/sysinfo/internal/config"
	"github.com/monify-labs/sysinfo/internal/output"
	"github.com/monify-labs/sysinfo/internal/report"
)

// Checker collects the report for one host and hands it to the sinks
type Checker struct {
	cfg   *config.Config
	env   *collector.Env
	sinks []output.Sink
	log   logrus.FieldLogger
}

// New creates a checker. A nil logger falls back to the standard logger.
func New(cfg *config.Config, env *collector.Env, log logrus.FieldLogger, sinks ...output.Sink) *Checker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Checker{
		cfg:   cfg,
		env:   env,
		sinks: sinks,
		log:   log,
	}
}

// OSID returns the identifier used to pick a collector
func (c *Checker) OSID() string {
	if c.cfg.OS != "" {
		return collector.Normalize(c.cfg.OS)
	}
	return collector.Normalize(runtime.GOOS)
}

// OSName returns the display name of the detected OS, or its raw
// identifier when no collector exists for it
func (c *Checker) OSName() string {
	id := c.OSID()
	if p, ok := collector.Lookup(id); ok {
		return p.Name
	}
	return id
}

// Collect builds the report for the detected OS
func (c *Checker) Collect(ctx context.Context) *report.Report {
	r := report.New()
	id := c.OSID()

	p, ok := collector.Lookup(id)
	if !ok {
		c.log.WithField("os", id).Warn("No collector for this platform")
		r.Line(collector.UnsupportedMessage)
		return r
	}

	c.log.WithField("os", p.ID).Debug("Collecting system information")
	p.Collect(ctx, c.env, r)

	if c.cfg.Extended {
		collector.CollectExtended(ctx, p.ID, c.env, r)
	}

	c.log.WithField("lines", r.Len()).Debug("Collection finished")
	return r
}

// Run collects the report and writes it to every sink. Every sink is tried
// even when an earlier one fails.
func (c *Checker) Run(ctx context.Context) (*report.Report, error) {
	r := c.Collect(ctx)

	var errs []error
	for i, sink := range c.sinks {
		if err := sink.Write(ctx, r); err != nil {
			c.log.WithField("sink", i).WithError(err).Error("Failed to write report")
			errs = append(errs, fmt.Errorf("sink %d: %w", i, err))
		}
	}

	return r, errors.Join(errs...)
}

// Close closes every sink
func (c *Checker) Close() error {
	var errs []error
	for _, sink := range c.sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
