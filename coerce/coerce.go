// Package coerce implements the ECMAScript type-coercion abstract
// operations (ToBoolean, ToPrimitive, ToString, ToNumber, ToNumeric, the
// fixed-width integer reductions and the BigInt conversions) over the
// value package's tagged values.
//
// All operations are pure. The single exception is ToPrimitive, which may
// invoke conversion methods obtained from the caller-supplied
// MethodResolver; any side effects of those methods belong to the caller.
// An Engine holds no state beyond its resolver and is safe for concurrent
// use.
package coerce

import (
	"fmt"

	"github.com/rubiojr/coerce/value"
)

// MethodResolver is the host-supplied collaborator that answers method
// lookups on objects. Given an object and a method name ("toString" or
// "valueOf"), it returns the callable to invoke, or false if the host
// resolves no such method. It stands in for whatever property or
// prototype-chain model the embedding host has; the engine assumes
// nothing about it.
type MethodResolver interface {
	Resolve(o *value.Obj, name string) (value.Callable, bool)
}

// ResolverFunc adapts a function to the MethodResolver interface.
type ResolverFunc func(o *value.Obj, name string) (value.Callable, bool)

func (f ResolverFunc) Resolve(o *value.Obj, name string) (value.Callable, bool) {
	return f(o, name)
}

// Hint steers ToPrimitive toward a preferred result kind.
type Hint uint8

const (
	HintDefault Hint = iota
	HintNumber
	HintString
)

func (h Hint) String() string {
	switch h {
	case HintNumber:
		return "number"
	case HintString:
		return "string"
	default:
		return "default"
	}
}

// TypeCoercionError reports that a value's kind is categorically
// disallowed for the requested conversion, or that ToPrimitive exhausted
// both candidate methods without obtaining a primitive.
type TypeCoercionError struct {
	Op   string     // the abstract operation that refused
	Kind value.Kind // kind of the offending value
	Msg  string
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func coercionErr(op string, kind value.Kind, format string, args ...any) error {
	return &TypeCoercionError{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Engine exposes the abstract operations. The zero Engine works but can
// never convert objects to primitives; use New to attach a resolver.
type Engine struct {
	resolver MethodResolver
}

// New creates an Engine using r for object method lookup. r may be nil,
// in which case every object lookup resolves to absent.
func New(r MethodResolver) *Engine {
	return &Engine{resolver: r}
}

// must unwraps a typed accessor after the kind has already been checked.
// A failure here is a bug in the engine, not a caller error.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
