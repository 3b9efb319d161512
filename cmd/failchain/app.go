package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/xgx-io/failchain"
	"github.com/xgx-io/failchain/report"
)

// app carries what the subcommands share: configuration and the failure
// reporter built from it.
type app struct {
	v        *viper.Viper
	stderr   io.Writer
	logger   *slog.Logger
	reporter *report.Reporter
}

// run executes the CLI and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{v: viper.New(), stderr: stderr}
	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if a.reporter == nil {
		// Failed before PersistentPreRunE, typically on flag parsing.
		fmt.Fprintln(stderr, failchain.Render(err, 0, failchain.DefaultIndent))
		return 1
	}
	fmt.Fprintln(stderr, a.reporter.Render(err))
	a.reporter.Report(ctx, err)
	return 1
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "failchain",
		Short:         "failchain exercises failure chains over files, INI configuration and teardown sequences",
		SilenceErrors: true,
		SilenceUsage:  true,
		Example: `
  # Read a file; a failure prints with its errno
  failchain cat /etc/hostname

  # Look up a key in an INI file
  failchain ini app.ini server port

  # Run the [teardown] group of app.ini; failed steps print as history
  FAILCHAIN_INDENT="  " failchain teardown app.ini
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("indent", failchain.DefaultIndent, "per-level indent of rendered failures")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	if err := bindFlags(a.v, flags, "indent", "log-level"); err != nil {
		panic(err)
	}

	a.v.SetEnvPrefix("FAILCHAIN")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd.AddCommand(newCatCommand(), newIniCommand(), newTeardownCommand(a))
	return cmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		flag := flags.Lookup(name)
		if flag == nil {
			return failchain.Logic(fmt.Sprintf("flag %q not found", name), nil)
		}
		if err := v.BindPFlag(name, flag); err != nil {
			return failchain.Logic(fmt.Sprintf("cannot bind flag %q", name), err)
		}
	}
	return nil
}

// configure builds the logger and reporter from flags and environment.
func (a *app) configure() error {
	var level slog.Level
	raw := strings.TrimSpace(a.v.GetString("log-level"))
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return failchain.InvalidArgument(fmt.Sprintf("invalid log level %q", raw), err)
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	// The rendered text is always printed; the structured record is for
	// debug runs.
	a.reporter = report.New(
		report.WithLogger(a.logger),
		report.WithLevel(slog.LevelDebug),
		report.WithIndent(a.v.GetString("indent")),
	)
	return nil
}
