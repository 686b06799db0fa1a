package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shaelmaar/paramlog"
	"github.com/shaelmaar/paramlog/logger"
)

// levelValue is a pflag.Value accepting any registered level name.
type levelValue struct {
	level logger.Level
	set   bool
}

var _ pflag.Value = (*levelValue)(nil)

func (v *levelValue) String() string {
	if !v.set {
		return ""
	}
	return v.level.String()
}

func (v *levelValue) Set(s string) error {
	l, err := logger.ParseLevel(s)
	if err != nil {
		return err
	}
	v.level = l
	v.set = true
	return nil
}

func (v *levelValue) Type() string {
	return "level"
}

// cliOwner names the object a message is emitted for.
type cliOwner string

func (o cliOwner) LogName() string { return string(o) }

type emitOptions struct {
	configPath           string
	level                levelValue
	scope                levelValue
	owner                string
	prefix               string
	warningsAsExceptions bool
	count                bool
}

func newEmitCmd() *cobra.Command {
	opts := &emitOptions{}

	cmd := &cobra.Command{
		Use:   "emit SEVERITY FORMAT [ARGS...]",
		Short: "Emit one message through the facade",
		Long: `Emits FORMAT, rendered with ARGS, at SEVERITY on behalf of --owner.

Messages go to stderr. With --warnings-as-exceptions a WARNING makes the
command fail after the message is written.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	flags.VarP(&opts.level, "level", "l", "backend threshold, overrides the configuration")
	flags.Var(&opts.scope, "scope", "emit inside a scoped threshold override")
	flags.StringVarP(&opts.owner, "owner", "o", "", "name of the emitting object")
	flags.StringVar(&opts.prefix, "prefix", "", "prefix template, e.g. '{{time}} '")
	flags.BoolVarP(&opts.warningsAsExceptions, "warnings-as-exceptions", "W", false, "fail on warnings")
	flags.BoolVar(&opts.count, "count", false, "print the warning count to stdout")
	return cmd
}

func runEmit(cmd *cobra.Command, opts *emitOptions, args []string) error {
	severity, err := logger.ParseLevel(args[0])
	if err != nil {
		return err
	}

	cfg := paramlog.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := paramlog.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if opts.level.set {
		cfg.Level = opts.level.String()
	}
	if cmd.Flags().Changed("prefix") {
		cfg.Prefix = opts.prefix
	}
	if cmd.Flags().Changed("warnings-as-exceptions") {
		cfg.WarningsAsExceptions = opts.warningsAsExceptions
	}

	f, err := cfg.Build(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var owner any
	if opts.owner != "" {
		owner = cliOwner(opts.owner)
	}
	fmtArgs := make([]any, 0, len(args)-2)
	for _, a := range args[2:] {
		fmtArgs = append(fmtArgs, a)
	}

	emit := func(ctx context.Context) error {
		return f.Log(ctx, severity, owner, args[1], fmtArgs...)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.scope.set {
		err = paramlog.LoggingLevel(ctx, opts.scope.level, emit)
	} else {
		err = emit(ctx)
	}

	if opts.count {
		fmt.Fprintln(cmd.OutOrStdout(), f.WarningCount())
	}
	return err
}
