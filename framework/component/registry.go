package component

import (
	"fmt"
	"reflect"
)

// ── Registry ─────────────────────────────────────────────────────────────────

// Registry maps capability (port) types to the components that implement
// them. It is only produced by Scan, is immutable from then on, and may be
// read concurrently without locking.
type Registry struct {
	slots map[reflect.Type][]*Descriptor
	order []*Descriptor // discovery order: lexicographic by FQN
}

func newRegistry() *Registry {
	return &Registry{slots: make(map[reflect.Type][]*Descriptor)}
}

// add records a descriptor under each of its capabilities (scan-internal).
func (r *Registry) add(d *Descriptor) {
	r.order = append(r.order, d)
	for _, cap := range d.capabilities {
		r.slots[cap] = append(r.slots[cap], d)
	}
}

// Resolve returns the unique implementation instance of the given
// capability type. Zero registered implementations fail with
// UnresolvedCapabilityError kind NotFound; more than one, kind Ambiguous.
// Nothing is ever silently defaulted.
func (r *Registry) Resolve(capability reflect.Type) (any, error) {
	d, err := r.Descriptor(capability)
	if err != nil {
		return nil, err
	}
	return d.instance, nil
}

// Descriptor returns the unique descriptor registered for a capability,
// failing the same way Resolve does.
func (r *Registry) Descriptor(capability reflect.Type) (*Descriptor, error) {
	ds := r.slots[capability]
	switch len(ds) {
	case 0:
		return nil, &UnresolvedCapabilityError{Capability: capability, Kind: NotFound}
	case 1:
		return ds[0], nil
	default:
		names := make([]string, len(ds))
		for i, d := range ds {
			names[i] = d.FQN()
		}
		return nil, &UnresolvedCapabilityError{Capability: capability, Kind: Ambiguous, Candidates: names}
	}
}

// Descriptors returns every registered component in discovery order.
func (r *Registry) Descriptors() []*Descriptor {
	return append([]*Descriptor(nil), r.order...)
}

// Capabilities returns the registered capability types, in discovery order
// of their implementing components.
func (r *Registry) Capabilities() []reflect.Type {
	seen := make(map[reflect.Type]bool, len(r.slots))
	out := make([]reflect.Type, 0, len(r.slots))
	for _, d := range r.order {
		for _, cap := range d.capabilities {
			if !seen[cap] {
				seen[cap] = true
				out = append(out, cap)
			}
		}
	}
	return out
}

// Len returns the number of registered components.
func (r *Registry) Len() int { return len(r.order) }

// ── Generic resolution ───────────────────────────────────────────────────────

// Resolve is the typed lookup consumers use instead of a manual assertion:
//
//	placer, err := component.Resolve[OrderPlacer](registry)
func Resolve[T any](r *Registry) (T, error) {
	var zero T
	instance, err := r.Resolve(Capability[T]())
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		// Scan verifies declared capabilities, so this indicates registry
		// misuse rather than miswiring.
		return zero, fmt.Errorf("component: Resolve[%T]: instance is %T", zero, instance)
	}
	return typed, nil
}

// MustResolve is Resolve for composition-root wiring, where an unresolved
// capability must abort startup anyway.
func MustResolve[T any](r *Registry) T {
	v, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return v
}
