// Package conformance runs YAML-described coercion test suites against
// the engine. A suite names an abstract operation per case, an input
// literal, and either an expected result literal or an expected failure
// class; suites bundled under testdata/ cover the engine's documented
// behavior and double as executable documentation.
package conformance

// Suite is a complete YAML test file.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Tests       []Case `yaml:"tests"`
}

// Case is a single conversion check.
type Case struct {
	Name  string `yaml:"name"`
	Op    string `yaml:"op"`
	Input string `yaml:"input"`
	// Hint applies to ToPrimitive only: default, number or string.
	Hint   string `yaml:"hint,omitempty"`
	Expect Expect `yaml:"expect"`
}

// Expect describes the expected outcome. Exactly one field is set.
type Expect struct {
	// Value is a literal compared against the result with SameValue
	// semantics, so NaN matches NaN and -0 does not match 0.
	Value string `yaml:"value,omitempty"`
	// Error names an expected failure class: TypeCoercionError.
	Error string `yaml:"error,omitempty"`
}
