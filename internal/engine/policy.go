// Package engine validates and normalizes TEF acquirer identification data:
// a logic number and a code checked against per-acquirer shape rules.
package engine

import (
	"regexp"
	"strings"
)

// Rule describes the shape checks for one acquirer. LogicNumber is required
// unless NotSupported is set; Code is nil when the code field is ignored.
// All patterns are anchored full-string ASCII matches.
type Rule struct {
	LogicNumber  *regexp.Regexp
	Code         *regexp.Regexp
	NotSupported bool
}

// Policy maps acquirer names to their rules and zero-pad widths. Membership
// in the policy is what makes an acquirer supported. A Policy is immutable
// after construction and safe for any number of concurrent readers.
type Policy struct {
	name     string
	rules    map[string]Rule
	padWidth map[string]int
}

const logicNumberWidth = 15

var (
	fifteenDigits = regexp.MustCompile(`^\d{15}$`)
	tfCode        = regexp.MustCompile(`^TF[a-zA-Z0-9]{8}$`)
	cieloShort    = regexp.MustCompile(`^4\d{7}$`)
	cieloLong     = regexp.MustCompile(`^4\d{8}$`)
	stoneLogic    = regexp.MustCompile(`^[a-zA-Z0-9]{32}$`)
	stoneCode     = regexp.MustCompile(`^\d{9}$`)
	veroLogic     = regexp.MustCompile(`^04\d{13}$`)
	veroCode      = regexp.MustCompile(`^\d{11}$`)
)

// fifteenDigitAcquirers only check the logic number; the code is ignored.
var fifteenDigitAcquirers = []string{
	"adiq", "bigcard", "biz", "brasil card", "cabal", "cardse", "carto",
	"comprocard", "convcard", "credishop", "ctf frota", "fitcard",
	"globalpayments", "marketpay", "mettacard", "orgcard", "portalcard",
	"rede", "resomaq", "softnex", "telenet", "valecard", "valeshop",
}

// tfCodeAcquirers check the logic number and a TF-prefixed code.
var tfCodeAcquirers = []string{"bin", "getnetlac", "safra", "sipag"}

// paddedAcquirers have their logic number left-zero-padded before matching.
// policard and siscred carry no rule in either preset; the entries are kept
// because the upstream normalization table lists them.
var paddedAcquirers = []string{
	"bin", "fitcard", "getnetlac", "policard", "safra", "sipag", "siscred",
	"softnex", "valeshop",
}

// Canonical is the default rule table: cielo accepts "4" plus 7 digits and
// vero is fully validated ("04" plus 13 digits with an 11-digit code).
func Canonical() *Policy {
	p := newPolicy("canonical")
	p.rules["cielo"] = Rule{LogicNumber: cieloShort}
	p.rules["vero"] = Rule{LogicNumber: veroLogic, Code: veroCode}
	return p
}

// Legacy preserves the older deployment flavor: cielo accepts "4" plus 8
// digits, and vero and josias are recognized but answered with a
// not-yet-supported notice instead of being validated.
func Legacy() *Policy {
	p := newPolicy("legacy")
	p.rules["cielo"] = Rule{LogicNumber: cieloLong}
	p.rules["vero"] = Rule{NotSupported: true}
	p.rules["josias"] = Rule{NotSupported: true}
	return p
}

// PolicyByName resolves a preset by its configuration name.
func PolicyByName(name string) (*Policy, bool) {
	switch strings.ToLower(name) {
	case "canonical":
		return Canonical(), true
	case "legacy":
		return Legacy(), true
	default:
		return nil, false
	}
}

func newPolicy(name string) *Policy {
	p := &Policy{
		name:     name,
		rules:    make(map[string]Rule),
		padWidth: make(map[string]int),
	}
	for _, acquirer := range fifteenDigitAcquirers {
		p.rules[acquirer] = Rule{LogicNumber: fifteenDigits}
	}
	for _, acquirer := range tfCodeAcquirers {
		p.rules[acquirer] = Rule{LogicNumber: fifteenDigits, Code: tfCode}
	}
	p.rules["stone"] = Rule{LogicNumber: stoneLogic, Code: stoneCode}
	for _, acquirer := range paddedAcquirers {
		p.padWidth[acquirer] = logicNumberWidth
	}
	return p
}

// Name returns the preset name the policy was built from.
func (p *Policy) Name() string {
	return p.name
}

func (p *Policy) rule(acquirer string) (Rule, bool) {
	r, ok := p.rules[acquirer]
	return r, ok
}

// normalize left-pads the logic number with zeros up to the acquirer's
// configured width. It never truncates and is a no-op at or beyond the width.
func (p *Policy) normalize(acquirer, logicNumber string) string {
	width, ok := p.padWidth[acquirer]
	if !ok || len(logicNumber) >= width {
		return logicNumber
	}
	return strings.Repeat("0", width-len(logicNumber)) + logicNumber
}
