// Package doc renders terminal documentation for the registered
// abstract operations. The doc command and the REPL both go through
// Lookup, so a name resolves the same way everywhere.
package doc

import (
	"strings"

	"github.com/rubiojr/coerce/ops"
)

// Lookup finds an operation by name. Names are matched exactly first,
// then case-insensitively, so "tonumber" resolves to ToNumber.
func Lookup(name string) (*ops.Op, bool) {
	if op, ok := ops.Get(name); ok {
		return op, true
	}
	for _, n := range ops.Names() {
		if strings.EqualFold(n, name) {
			op, _ := ops.Get(n)
			return op, true
		}
	}
	return nil, false
}

// Signature returns the call form of an operation, e.g.
// "ToPrimitive(value, hint)".
func Signature(op *ops.Op) string {
	if op.TakesHint {
		return op.Name + "(value, hint)"
	}
	return op.Name + "(value)"
}

// Summary returns the first sentence of an operation's doc text.
func Summary(op *ops.Op) string {
	doc := op.Doc
	if idx := strings.Index(doc, ". "); idx >= 0 {
		return doc[:idx+1]
	}
	return doc
}
