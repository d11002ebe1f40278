package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/rubiojr/coerce/doc"
	"github.com/rubiojr/coerce/ops"
)

const replHelp = `Invoke an abstract operation on a literal:

  ToNumber(" 8.0 ")
  ToString(-0)
  ToPrimitive({valueOf: 42, toString: "str"}, string)
  ToBoolean([])

Literals: undefined null true false NaN Infinity numbers 12n "strings"
Symbol("d") [arrays] {objects, valueOf: lit, toString: lit}

Commands: :ops  :doc <op>  :help  :quit`

// runREPL reads invocations line by line. The prompt only appears on a
// terminal, so piped input produces clean output.
func runREPL() error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	in := bufio.NewScanner(os.Stdin)

	if interactive {
		fmt.Println("coerce — ECMAScript coercion playground (:help for help)")
	}
	for {
		if interactive {
			fmt.Print("coerce> ")
		}
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "":
			continue
		case ":quit", ":q", ":exit":
			return nil
		case ":help", ":h":
			fmt.Println(replHelp)
			continue
		case ":ops":
			for _, name := range ops.Names() {
				fmt.Println(name)
			}
			continue
		}
		if name, ok := strings.CutPrefix(line, ":doc "); ok {
			op, found := doc.Lookup(strings.TrimSpace(name))
			if !found {
				fmt.Fprintf(os.Stderr, "error: unknown operation %q\n", strings.TrimSpace(name))
				continue
			}
			fmt.Print(doc.FormatOp(op, 80))
			continue
		}

		out, err := evalInvocation(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(out)
	}
	return in.Err()
}
