// Package cmd implements the coerce CLI: a teaching REPL, one-shot
// evaluation and the YAML conformance runner.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// Execute runs the coerce CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "coerce",
		Usage:                  "Executable model of the ECMAScript type-coercion operations",
		Version:                version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logrus.SetLevel(logrus.InfoLevel)
			if cmd.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return ctx, nil
		},
		// Bare `coerce` drops into the REPL.
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 {
				return cli.DefaultShowRootCommandHelp(cmd)
			}
			return runREPL()
		},
		Commands: []*cli.Command{
			{
				Name:   "repl",
				Usage:  "Interactive coercion REPL",
				Action: replAction,
			},
			{
				Name:      "eval",
				Usage:     "Evaluate a single invocation, e.g. 'ToNumber(\" 8.0 \")'",
				ArgsUsage: "<invocation>",
				Action:    evalAction,
			},
			{
				Name:      "conform",
				Usage:     "Run YAML conformance suites",
				ArgsUsage: "<file.yaml | directory>...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "no-color",
						Aliases: []string{"C"},
						Usage:   "Disable ANSI color output",
					},
				},
				Action: conformAction,
			},
			{
				Name:   "ops",
				Usage:  "List the registered abstract operations",
				Action: opsAction,
			},
			{
				Name:      "doc",
				Usage:     "Show documentation for an operation",
				ArgsUsage: "[operation]",
				Action:    docAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func replAction(ctx context.Context, cmd *cli.Command) error {
	return runREPL()
}

func evalAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: coerce eval <invocation>")
	}
	out, err := evalInvocation(cmd.Args().First())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
