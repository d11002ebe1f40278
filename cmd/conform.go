package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/rubiojr/coerce/conformance"
	"github.com/rubiojr/coerce/doc"
	"github.com/rubiojr/coerce/ops"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

func conformAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: coerce conform <file.yaml | directory>...")
	}

	color := !cmd.Bool("no-color") && os.Getenv("NO_COLOR") == "" &&
		term.IsTerminal(int(os.Stdout.Fd()))
	paint := func(code, s string) string {
		if !color {
			return s
		}
		return code + s + ansiReset
	}

	suites, err := conformance.Load(cmd.Args().Slice()...)
	if err != nil {
		return err
	}

	runner := conformance.NewRunner(logrus.StandardLogger())
	results := runner.RunAll(suites)

	suite := ""
	for _, r := range results {
		if r.Suite != suite {
			suite = r.Suite
			fmt.Printf("=== %s ===\n", suite)
		}
		if r.Passed {
			fmt.Printf("  %s %s\n", paint(ansiGreen, "ok"), r.Case.Name)
		} else {
			fmt.Printf("  %s %s: %s\n", paint(ansiRed, "FAIL"), r.Case.Name, r.Detail)
		}
	}

	stats := conformance.ComputeStats(results)
	fmt.Printf("\n%d tests, %d passed, %d failed\n", stats.Total, stats.Passed, stats.Failed)
	if stats.Failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func opsAction(ctx context.Context, cmd *cli.Command) error {
	for _, name := range ops.Names() {
		op, _ := ops.Get(name)
		fmt.Println(doc.Signature(op))
	}
	return nil
}

func docAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		fmt.Print(doc.FormatAll())
		return nil
	}

	name := cmd.Args().First()
	op, ok := doc.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown operation %q — coerce ops lists operations", name)
	}
	fmt.Print(doc.FormatOp(op, docWidth()))
	return nil
}

// docWidth returns the wrap width for doc output: the terminal width
// when stdout is a terminal, 80 otherwise.
func docWidth() int {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
			return w
		}
	}
	return 80
}
