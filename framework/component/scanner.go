package component

import (
	"reflect"
	"sort"
	"strings"
)

// ── Lifecycle state ──────────────────────────────────────────────────────────

// State is the composition lifecycle. The only transitions are
// Uninitialized → Scanning → Ready and Uninitialized → Scanning → Failed;
// Scanning never exits partially — either every matched component is
// registered and validated, or nothing is retained.
type State int

const (
	Uninitialized State = iota
	Scanning
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Scanning:
		return "scanning"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// ── Scan ─────────────────────────────────────────────────────────────────────

// Scan runs the single discovery pass: it enumerates catalog registrations
// reachable under the declared namespaces, classifies each simple name
// against the pattern, validates capability uniqueness, constructs each
// admitted component, and returns the immutable Registry.
//
// A namespace covers its own package path and everything below it, the way
// a base-package scan does: namespace "app" reaches "app/application" but
// not "apparel".
//
// Registrations whose name matches no rule are silently excluded — that is
// the documented opt-out, not an error. Everything else that is wrong is
// fatal here, before any consumer can resolve: empty inputs, duplicate
// names, unimplemented capabilities (ConfigError), and capability types
// claimed by more than one component (AmbiguousCapabilityError).
//
// Scan is deterministic: admitted components are ordered by their
// fully-qualified names, so registry iteration order is reproducible
// across runs for identical inputs.
func Scan(catalog *Catalog, namespaces []string, pattern *NamePattern) (*Registry, error) {
	if catalog == nil {
		return nil, &ConfigError{Reason: "nil catalog"}
	}
	if len(namespaces) == 0 {
		return nil, &ConfigError{Reason: "empty namespace set"}
	}
	for _, ns := range namespaces {
		if ns == "" {
			return nil, &ConfigError{Reason: "empty namespace path"}
		}
	}
	if pattern == nil || len(pattern.rules) == 0 {
		return nil, &ConfigError{Reason: "name pattern defines no rules"}
	}

	// Pass 1: filter by namespace, classify by name, order by FQN.
	matched := make([]Registration, 0)
	tags := make(map[string]Classification)
	for _, reg := range catalog.Entries() {
		if !underAny(reg.Namespace, namespaces) {
			continue
		}
		tag, ok := pattern.Classify(reg.Name)
		if !ok {
			continue // documented exclusion
		}
		if _, dup := tags[reg.FQN()]; dup {
			return nil, &ConfigError{Reason: "duplicate component " + reg.FQN()}
		}
		tags[reg.FQN()] = tag
		matched = append(matched, reg)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].FQN() < matched[j].FQN() })

	// Pass 2: capability uniqueness, before anything is constructed.
	claimants := make(map[reflect.Type][]string)
	for _, reg := range matched {
		for _, cap := range reg.Capabilities {
			claimants[cap] = append(claimants[cap], reg.FQN())
		}
	}
	for cap, names := range claimants {
		if len(names) > 1 {
			sort.Strings(names)
			return nil, &AmbiguousCapabilityError{Capability: cap, Claimants: names}
		}
	}

	// Pass 3: construct and verify the declared contracts hold.
	reg := newRegistry()
	for _, m := range matched {
		instance := m.Build()
		if instance == nil {
			return nil, &ConfigError{Reason: "component " + m.FQN() + " built a nil instance"}
		}
		it := reflect.TypeOf(instance)
		for _, cap := range m.Capabilities {
			if !it.Implements(cap) {
				return nil, &ConfigError{
					Reason: "component " + m.FQN() + " declares capability " +
						cap.String() + " but " + it.String() + " does not implement it",
				}
			}
		}
		reg.add(&Descriptor{
			namespace:      m.Namespace,
			name:           m.Name,
			classification: tags[m.FQN()],
			capabilities:   append([]reflect.Type(nil), m.Capabilities...),
			instance:       instance,
		})
	}
	return reg, nil
}

// underAny reports whether pkg is one of the namespaces or below one.
func underAny(pkg string, namespaces []string) bool {
	for _, ns := range namespaces {
		if pkg == ns || strings.HasPrefix(pkg, ns+"/") {
			return true
		}
	}
	return false
}
