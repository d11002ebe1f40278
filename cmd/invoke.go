package cmd

import (
	"fmt"
	"strings"

	"github.com/rubiojr/coerce/host"
	"github.com/rubiojr/coerce/litparse"
	"github.com/rubiojr/coerce/ops"
	"github.com/rubiojr/coerce/scanner"
)

// evalInvocation parses and runs Op(literal) or ToPrimitive(literal, hint)
// against a fresh host-wired engine, returning the rendered result.
func evalInvocation(src string) (string, error) {
	src = strings.TrimSpace(src)
	open := strings.IndexByte(src, '(')
	if open < 0 || !strings.HasSuffix(src, ")") {
		return "", fmt.Errorf("expected Op(literal), e.g. ToNumber(\"8\") — :ops lists operations")
	}
	name := strings.TrimSpace(src[:open])
	op, ok := ops.Get(name)
	if !ok {
		return "", fmt.Errorf("unknown operation %q — :ops lists operations", name)
	}

	inner := src[open+1 : len(src)-1]
	args := splitArgs(inner)

	hint := ""
	switch {
	case len(args) == 1:
	case len(args) == 2 && op.TakesHint:
		hint = strings.Trim(strings.TrimSpace(args[1]), `"'`)
	case len(args) == 2:
		return "", fmt.Errorf("%s takes a single argument", name)
	default:
		return "", fmt.Errorf("expected %s(literal%s)", name, hintUsage(op))
	}

	h, err := ops.ParseHint(hint)
	if err != nil {
		return "", err
	}

	eng := host.NewEngine()
	v, err := litparse.Parse(strings.TrimSpace(args[0]), eng)
	if err != nil {
		return "", err
	}
	out, err := op.Run(eng, v, h)
	if err != nil {
		return "", err
	}
	return out.Format(), nil
}

func hintUsage(op *ops.Op) string {
	if op.TakesHint {
		return ", hint"
	}
	return ""
}

// splitArgs splits src on top-level commas, respecting string literals
// and bracket nesting.
func splitArgs(src string) []string {
	var parts []string
	start := 0
	sc := scanner.New(src)
	for {
		ch, ok := sc.Next()
		if !ok {
			break
		}
		if ch == ',' && !sc.InString() && sc.Depth() == 0 {
			parts = append(parts, src[start:sc.Pos()])
			start = sc.Pos() + 1
		}
	}
	parts = append(parts, src[start:])
	return parts
}
