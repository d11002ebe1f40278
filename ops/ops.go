// Package ops names the engine's abstract operations and dispatches
// invocations to them. The REPL and the conformance runner both resolve
// operation names through this registry, so the two surfaces can never
// disagree about what "ToInt32" means.
package ops

import (
	"fmt"
	"sort"

	"github.com/rubiojr/coerce/coerce"
	"github.com/rubiojr/coerce/value"
)

// Op is a registered abstract operation. Operations that return Go
// scalars (the fixed-width reductions) are wrapped to return Number
// values so every operation renders uniformly.
type Op struct {
	// Name is the canonical operation name (e.g. "ToNumber").
	Name string
	// TakesHint is true only for ToPrimitive.
	TakesHint bool
	// Doc is a one-line description shown by the doc command.
	Doc string
	// Run invokes the operation. hint is ignored unless TakesHint.
	Run func(eng *coerce.Engine, v value.Value, hint coerce.Hint) (value.Value, error)
}

var registry = make(map[string]*Op)

// Register adds an operation to the registry.
func Register(op *Op) {
	registry[op.Name] = op
}

// Get returns a registered operation by name.
func Get(name string) (*Op, bool) {
	op, ok := registry[name]
	return op, ok
}

// Names returns the sorted names of all registered operations.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseHint maps the conformance/REPL hint spellings to coerce.Hint.
func ParseHint(s string) (coerce.Hint, error) {
	switch s {
	case "", "default":
		return coerce.HintDefault, nil
	case "number":
		return coerce.HintNumber, nil
	case "string":
		return coerce.HintString, nil
	default:
		return coerce.HintDefault, fmt.Errorf("unknown hint %q (want default, number or string)", s)
	}
}

func init() {
	Register(&Op{
		Name: "ToBoolean",
		Doc:  "Converts any value to a boolean. Only undefined, null, false, NaN, 0, -0, 0n and the empty string are falsy.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			return eng.ToBoolean(v), nil
		},
	})
	Register(&Op{
		Name:      "ToPrimitive",
		TakesHint: true,
		Doc:       "Converts an object to a primitive by calling its valueOf and toString conversions. The hint picks the order: string tries toString first, number and default try valueOf first.",
		Run:       func(eng *coerce.Engine, v value.Value, hint coerce.Hint) (value.Value, error) {
			return eng.ToPrimitive(v, hint)
		},
	})
	Register(&Op{
		Name: "ToString",
		Doc:  "Converts a value to a string. Numbers use the shortest round-trippable decimal form; symbols refuse the conversion.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			return eng.ToString(v)
		},
	})
	Register(&Op{
		Name: "ToNumber",
		Doc:  "Converts a value to a float64 number. Strings follow the numeric literal grammar, including 0x, 0o and 0b prefixes; BigInt and symbol values refuse the conversion.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			return eng.ToNumber(v)
		},
	})
	Register(&Op{
		Name: "ToNumeric",
		Doc:  "Converts a value to either a number or a BigInt, preserving BigInt operands instead of forcing them through ToNumber.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			return eng.ToNumeric(v)
		},
	})
	Register(&Op{
		Name: "ToIntegerOrInfinity",
		Doc:  "Converts to a number and truncates toward zero. NaN becomes 0; infinities survive.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			f, err := eng.ToIntegerOrInfinity(v)
			if err != nil {
				return value.Value{}, err
			}
			return value.Number(f), nil
		},
	})
	Register(&Op{
		Name: "ToInt32",
		Doc:  "Converts to a number and reduces it modulo 2^32 into the signed 32-bit range.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			n, err := eng.ToInt32(v)
			if err != nil {
				return value.Value{}, err
			}
			return value.Number(float64(n)), nil
		},
	})
	Register(&Op{
		Name: "ToUint32",
		Doc:  "Converts to a number and reduces it modulo 2^32 into the unsigned 32-bit range.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			n, err := eng.ToUint32(v)
			if err != nil {
				return value.Value{}, err
			}
			return value.Number(float64(n)), nil
		},
	})
	Register(&Op{
		Name: "ToInt16",
		Doc:  "Converts to a number and reduces it modulo 2^16 into the signed 16-bit range.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			n, err := eng.ToInt16(v)
			if err != nil {
				return value.Value{}, err
			}
			return value.Number(float64(n)), nil
		},
	})
	Register(&Op{
		Name: "ToUint16",
		Doc:  "Converts to a number and reduces it modulo 2^16 into the unsigned 16-bit range.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			n, err := eng.ToUint16(v)
			if err != nil {
				return value.Value{}, err
			}
			return value.Number(float64(n)), nil
		},
	})
	Register(&Op{
		Name: "ToInt8",
		Doc:  "Converts to a number and reduces it modulo 2^8 into the signed 8-bit range.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			n, err := eng.ToInt8(v)
			if err != nil {
				return value.Value{}, err
			}
			return value.Number(float64(n)), nil
		},
	})
	Register(&Op{
		Name: "ToUint8",
		Doc:  "Converts to a number and reduces it modulo 2^8 into the unsigned 8-bit range.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			n, err := eng.ToUint8(v)
			if err != nil {
				return value.Value{}, err
			}
			return value.Number(float64(n)), nil
		},
	})
	Register(&Op{
		Name: "ToUint8Clamp",
		Doc:  "Converts to a number and clamps it into 0..255, rounding halfway cases to the nearest even integer.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			n, err := eng.ToUint8Clamp(v)
			if err != nil {
				return value.Value{}, err
			}
			return value.Number(float64(n)), nil
		},
	})
	Register(&Op{
		Name: "ToBigInt",
		Doc:  "Converts a value to a BigInt. Numbers refuse the conversion; strings must spell an exact integer.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			return eng.ToBigInt(v)
		},
	})
	Register(&Op{
		Name: "ToBigInt64",
		Doc:  "Converts to a BigInt and reduces it modulo 2^64 into the signed 64-bit range.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			return eng.ToBigInt64(v)
		},
	})
	Register(&Op{
		Name: "ToBigUint64",
		Doc:  "Converts to a BigInt and reduces it modulo 2^64 into the unsigned 64-bit range.",
		Run:  func(eng *coerce.Engine, v value.Value, _ coerce.Hint) (value.Value, error) {
			return eng.ToBigUint64(v)
		},
	})
}
