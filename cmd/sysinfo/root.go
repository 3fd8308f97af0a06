package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/monify-labs/sysinfo/internal/checker"
	"github.com/monify-labs/sysinfo/internal/collector"
	"github.com/monify-labs/sysinfo/internal/config"
	"github.com/monify-labs/sysinfo/internal/output"
	"github.com/monify-labs/sysinfo/internal/runner"
)

type options struct {
	configPath string
	output     string
	osID       string
	timeout    time.Duration
	extended   bool
	stdout     bool
	debug      bool
	wait       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sysinfo [flags]",
		Short: "Collect CPU and memory facts about this machine",
		Long: `sysinfo detects the operating system, runs its diagnostic tools
(lscpu, sysctl, wmic, ...) and writes the CPU and memory facts
they report to a text file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ./"+config.DefaultConfigFile+" when present)")
	flags.StringVarP(&opts.output, "output", "o", config.OutputPath, "report file")
	flags.StringVar(&opts.osID, "os", "", "collect as this OS instead of the detected one ("+strings.Join(collector.Supported(), ", ")+")")
	flags.DurationVar(&opts.timeout, "timeout", config.CommandTimeout, "timeout for each diagnostic command")
	flags.BoolVar(&opts.extended, "extended", false, "add OS, network, toolchain and locale sections")
	flags.BoolVar(&opts.stdout, "stdout", false, "also print the report to stdout")
	flags.BoolVar(&opts.debug, "debug", false, "log failing commands to stderr")
	flags.BoolVar(&opts.wait, "wait", false, "wait for Enter before exiting")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.Debug)

	env := collector.NewEnv(runner.NewExecRunner(cfg.CommandTimeout), cfg.ProcRoot, log)

	file := output.NewFileSink(cfg.OutputPath)
	sinks := []output.Sink{file}
	if cfg.Stdout {
		sinks = append(sinks, output.NewWriterSink(cmd.OutOrStdout()))
	}

	c := checker.New(cfg, env, log, sinks...)
	defer func() {
		if err := c.Close(); err != nil {
			log.WithError(err).Warn("Failed to close output")
		}
	}()

	if _, err := c.Run(cmd.Context()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Detected operating system: %s\n", c.OSName())
	fmt.Fprintf(out, "System information written to %s\n", file.Path())

	if opts.wait {
		fmt.Fprint(out, "Press Enter to exit...")
		// EOF counts as Enter
		_, _ = bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	}

	return nil
}

// apply overrides the loaded config with the flags given on the command line
func (o *options) apply(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("output") {
		cfg.OutputPath = o.output
	}
	if flags.Changed("os") {
		cfg.OS = o.osID
	}
	if flags.Changed("timeout") {
		cfg.CommandTimeout = o.timeout
	}
	if flags.Changed("extended") {
		cfg.Extended = o.extended
	}
	if flags.Changed("stdout") {
		cfg.Stdout = o.stdout
	}
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}
}

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
