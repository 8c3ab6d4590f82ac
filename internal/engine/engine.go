package engine

import (
	"fmt"
	"strings"
)

// Field keys of a Record, matching the JSON body of the validation endpoint.
const (
	FieldAcquirer    = "adquirente"
	FieldLogicNumber = "logico"
	FieldCode        = "codigo"
)

// Record is the raw key-value input submitted for validation.
type Record map[string]string

// Engine validates Records against an immutable Policy. It is pure: no I/O,
// no shared mutable state, and safe for concurrent calls without coordination.
type Engine struct {
	policy *Policy
}

// New returns an Engine for the given policy, defaulting to Canonical.
func New(policy *Policy) *Engine {
	if policy == nil {
		policy = Canonical()
	}
	return &Engine{policy: policy}
}

// Supported reports whether the acquirer resolves to a rule in the policy.
// Resolution is case-insensitive.
func (e *Engine) Supported(acquirer string) bool {
	_, ok := e.policy.rule(strings.ToLower(acquirer))
	return ok
}

// Validate runs the full pipeline over a record: field presence checks,
// acquirer resolution, logic-number normalization, then the acquirer's
// pattern rule. Every failure mode is returned as an Outcome; Validate
// never panics on string input.
func (e *Engine) Validate(rec Record) Outcome {
	if rec == nil {
		return Error("invalid parameter: a key-value record is required")
	}

	acquirer, logicNumber, code, missing := extract(rec)
	if missing != "" {
		return Error(missing)
	}

	// The lowercased name is the dispatch key from here on; the original
	// casing is never used again.
	key := strings.ToLower(acquirer)
	rule, ok := e.policy.rule(key)
	if !ok {
		return Error("unsupported adquirence type")
	}

	logicNumber = e.policy.normalize(key, logicNumber)

	return apply(key, rule, logicNumber, code)
}

// extract pulls the three fields out of the record. Presence checks
// short-circuit in fixed order, so the first missing field names the error.
func extract(rec Record) (acquirer, logicNumber, code, missing string) {
	acquirer = rec[FieldAcquirer]
	logicNumber = rec[FieldLogicNumber]
	code = rec[FieldCode]

	switch {
	case acquirer == "":
		missing = "Authorizer not provided."
	case logicNumber == "":
		missing = "Logical number not provided."
	case code == "":
		missing = "Code not provided"
	}
	return acquirer, logicNumber, code, missing
}

func apply(acquirer string, rule Rule, logicNumber, code string) Outcome {
	if rule.NotSupported {
		return Info(fmt.Sprintf("%s is not yet supported", acquirer))
	}
	if !rule.LogicNumber.MatchString(logicNumber) {
		return mismatch(acquirer)
	}
	if rule.Code == nil {
		return Success(fmt.Sprintf("%s processed with logic number %s", acquirer, logicNumber))
	}
	if !rule.Code.MatchString(code) {
		return mismatch(acquirer)
	}
	return Success(fmt.Sprintf("%s processed with logic number %s and code %s", acquirer, logicNumber, code))
}

func mismatch(acquirer string) Outcome {
	return Failure(fmt.Sprintf("%s does not match with the pattern", strings.ToUpper(acquirer)))
}
