package component

import (
	"regexp"
	"strings"
)

// ── NamePattern ──────────────────────────────────────────────────────────────

// Rule maps a simple-name suffix to the classification it confers.
type Rule struct {
	Suffix string
	Tag    Classification
}

// NamePattern is the active naming rule set: an ordered list of suffix
// rules deciding which components participate in discovery and what
// category they fall into. Exactly one pattern is active per process,
// fixed at composition time.
type NamePattern struct {
	rules []Rule
}

// NewPattern builds a pattern from one or more rules. A pattern with zero
// rules, an empty suffix, or an unclassified tag is a configuration error.
func NewPattern(rules ...Rule) (*NamePattern, error) {
	if len(rules) == 0 {
		return nil, &ConfigError{Reason: "name pattern requires at least one rule"}
	}
	for _, r := range rules {
		if r.Suffix == "" {
			return nil, &ConfigError{Reason: "name pattern rule has an empty suffix"}
		}
		if r.Tag == Unclassified {
			return nil, &ConfigError{Reason: "name pattern rule for suffix " + r.Suffix + " has no classification"}
		}
	}
	return &NamePattern{rules: append([]Rule(nil), rules...)}, nil
}

// DefaultPattern returns the archetype's standard rule set: names ending in
// "Case" are use cases, names ending in "Service" are application services.
func DefaultPattern() *NamePattern {
	p, _ := NewPattern(
		Rule{Suffix: "Case", Tag: UseCase},
		Rule{Suffix: "Service", Tag: Service},
	)
	return p
}

// Classify tests a simple name against the rule set. The first matching
// rule wins; a name matching no rule is Unclassified and excluded from
// discovery. A bare suffix ("Case" alone) does not match: the rule is
// "ends in", not "equals".
func (p *NamePattern) Classify(name string) (Classification, bool) {
	for _, r := range p.rules {
		if len(name) > len(r.Suffix) && strings.HasSuffix(name, r.Suffix) {
			return r.Tag, true
		}
	}
	return Unclassified, false
}

// Rules returns a copy of the rule set.
func (p *NamePattern) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}

// String renders the pattern as the equivalent anchored regular expression,
// one alternative per rule, for startup diagnostics:
//
//	component.DefaultPattern().String()  // "^.+Case$|^.+Service$"
func (p *NamePattern) String() string {
	alts := make([]string, len(p.rules))
	for i, r := range p.rules {
		alts[i] = "^.+" + regexp.QuoteMeta(r.Suffix) + "$"
	}
	return strings.Join(alts, "|")
}
