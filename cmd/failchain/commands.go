package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xgx-io/failchain/fileio"
	"github.com/xgx-io/failchain/iniconf"
	"github.com/xgx-io/failchain/shutdown"
)

// teardownGroup names the INI group whose entries become teardown steps.
const teardownGroup = "teardown"

func newCatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file>",
		Short: "Print a regular file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := fileio.ReadText(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
}

func newIniCommand() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "ini <file> <group> <key>",
		Short: "Print one value of an INI file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := iniconf.Load(args[0])
			if err != nil {
				return err
			}
			if list {
				values, err := cfg.Strings(args[1], args[2])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(values, "\n"))
				return err
			}
			value, err := cfg.String(args[1], args[2])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print a ';'-separated value one element per line")
	return cmd
}

func newTeardownCommand(a *app) *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "teardown <file>",
		Short: "Run the [teardown] group of an INI file as a shutdown sequence",
		Long: `Each key of the [teardown] group is a step; its value is a path that
must be readable. Every step runs; failed steps are reported together.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := iniconf.Load(args[0])
			if err != nil {
				return err
			}
			keys, err := cfg.Keys(teardownGroup)
			if err != nil {
				return err
			}

			opts := []shutdown.Option{shutdown.WithLogger(a.logger)}
			if reverse {
				opts = append(opts, shutdown.Reverse())
			}
			seq := shutdown.New(teardownGroup, opts...)
			for _, key := range keys {
				path, err := cfg.String(teardownGroup, key)
				if err != nil {
					return err
				}
				if err := seq.Add(key, readableStep(path)); err != nil {
					return err
				}
			}

			if err := seq.Run(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "teardown complete: %d step(s)\n", seq.Len())
			return err
		},
	}
	cmd.Flags().BoolVar(&reverse, "reverse", false, "run steps in reverse order")
	return cmd
}

// readableStep checks that path is a readable regular file.
func readableStep(path string) func(context.Context) error {
	return func(context.Context) error {
		_, err := fileio.ReadBinary(path)
		return err
	}
}
