package component

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ── ConfigError ──────────────────────────────────────────────────────────────

// ConfigError reports a scan configuration defect: an empty namespace set,
// a malformed pattern, a duplicate component name, or a component that does
// not implement a capability it declared. Fatal: the process must not start.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "component: scan configuration: " + e.Reason
}

// ── AmbiguousCapabilityError ─────────────────────────────────────────────────

// AmbiguousCapabilityError reports two or more descriptors claiming the
// same capability type. Raised at scan time, before any resolution is
// attempted. Fatal: a wiring-correctness problem, not a runtime condition.
type AmbiguousCapabilityError struct {
	Capability reflect.Type
	Claimants  []string // fully-qualified component names
}

func (e *AmbiguousCapabilityError) Error() string {
	return fmt.Sprintf("component: capability %s claimed by multiple components: %s",
		e.Capability, strings.Join(e.Claimants, ", "))
}

// ── UnresolvedCapabilityError ────────────────────────────────────────────────

// UnresolvedKind distinguishes why a capability could not be resolved.
type UnresolvedKind string

const (
	NotFound  UnresolvedKind = "not-found"
	Ambiguous UnresolvedKind = "ambiguous"
)

// UnresolvedCapabilityError reports a failed resolution: either no
// component implements the requested capability, or more than one does
// where exactly one is expected. Fatal at first resolution — surfaced to
// the operator, never swallowed.
type UnresolvedCapabilityError struct {
	Capability reflect.Type
	Kind       UnresolvedKind
	Candidates []string // fully-qualified names, empty for NotFound
}

func (e *UnresolvedCapabilityError) Error() string {
	if e.Kind == Ambiguous {
		return fmt.Sprintf("component: capability %s is ambiguous: implemented by %s",
			e.Capability, strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("component: capability %s: no component registered", e.Capability)
}

// IsNotFound reports whether err is an unresolved capability with zero
// registered implementations.
func IsNotFound(err error) bool {
	var ue *UnresolvedCapabilityError
	return errors.As(err, &ue) && ue.Kind == NotFound
}

// IsAmbiguous reports whether err is an ambiguity failure, from either the
// scan or a resolution.
func IsAmbiguous(err error) bool {
	var ae *AmbiguousCapabilityError
	if errors.As(err, &ae) {
		return true
	}
	var ue *UnresolvedCapabilityError
	return errors.As(err, &ue) && ue.Kind == Ambiguous
}
