package component

import (
	"reflect"
	"sync"
)

// ── Classification ───────────────────────────────────────────────────────────

// Classification tags a discovered component by the naming category it
// matched. A component whose name matches no rule stays Unclassified and
// never enters the registry.
type Classification string

const (
	UseCase      Classification = "use-case"
	Service      Classification = "service"
	Unclassified Classification = ""
)

// ── Registration ─────────────────────────────────────────────────────────────

// Registration is what a discoverable component declares about itself.
// Components enter the Catalog through a Registration, typically from an
// init() func in their own package:
//
//	func init() {
//	    component.Add(component.Registration{
//	        Namespace:    "app/application",
//	        Name:         "PlaceOrderCase",
//	        Capabilities: []reflect.Type{component.Capability[OrderPlacer]()},
//	        Build:        func() any { return &PlaceOrderCase{} },
//	    })
//	}
type Registration struct {
	// Namespace is the package path of the component, relative to the
	// module root (e.g. "app/application"). Only registrations under a
	// namespace declared at composition time participate in the scan.
	Namespace string

	// Name is the simple component name tested against the active
	// NamePattern (e.g. "PlaceOrderCase").
	Name string

	// Capabilities are the port interface types this component claims to
	// implement. Use Capability[T]() to obtain them.
	Capabilities []reflect.Type

	// Build constructs the implementation. Called once, during the scan.
	Build func() any
}

// FQN returns the fully-qualified component name, namespace-dot-name.
func (r Registration) FQN() string { return r.Namespace + "." + r.Name }

// ── Descriptor ───────────────────────────────────────────────────────────────

// Descriptor is a component the scan admitted into the registry: the
// registration data plus its classification and the constructed instance.
// Descriptors are immutable once recorded.
type Descriptor struct {
	namespace      string
	name           string
	classification Classification
	capabilities   []reflect.Type
	instance       any
}

func (d *Descriptor) Namespace() string              { return d.namespace }
func (d *Descriptor) Name() string                   { return d.name }
func (d *Descriptor) Classification() Classification { return d.classification }
func (d *Descriptor) Instance() any                  { return d.instance }

// FQN returns the fully-qualified component name, namespace-dot-name.
func (d *Descriptor) FQN() string { return d.namespace + "." + d.name }

// Capabilities returns the port types the component implements.
func (d *Descriptor) Capabilities() []reflect.Type {
	out := make([]reflect.Type, len(d.capabilities))
	copy(out, d.capabilities)
	return out
}

// ── Capability helper ────────────────────────────────────────────────────────

// Capability returns the reflect.Type of the port interface T, the key a
// component registers under and consumers resolve by.
//
//	placer := component.Capability[OrderPlacer]()
//
// Panics if T is not an interface type: ports are contracts, never concrete
// implementations.
func Capability[T any]() reflect.Type {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Interface {
		panic("component: Capability[" + t.String() + "]: ports must be interface types")
	}
	return t
}

// ── Catalog ──────────────────────────────────────────────────────────────────

// Catalog is the static registration table the scan enumerates — the
// compiled-in stand-in for a class index. It accumulates Registrations
// before the scan; the scan itself never mutates it.
type Catalog struct {
	mu      sync.Mutex
	entries []Registration
}

// NewCatalog creates an empty catalog. Production code uses the process
// Default() catalog; tests build their own.
func NewCatalog() *Catalog { return &Catalog{} }

// Add appends a registration. Registrations with an empty namespace or
// name, or a nil Build func, are rejected here rather than at scan time so
// the defect points at the registering package.
func (c *Catalog) Add(r Registration) error {
	if r.Namespace == "" || r.Name == "" {
		return &ConfigError{Reason: "registration requires a namespace and a name"}
	}
	if r.Build == nil {
		return &ConfigError{Reason: "registration for " + r.FQN() + " has no Build func"}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, r)
	return nil
}

// Entries returns a snapshot of all registrations, in insertion order.
func (c *Catalog) Entries() []Registration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Registration, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of registrations.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// defaultCatalog is the process-wide catalog init() registrations land in.
var defaultCatalog = NewCatalog()

// Default returns the process-wide catalog.
func Default() *Catalog { return defaultCatalog }

// Add registers a component into the process-wide catalog. Panics on an
// invalid registration: Add runs from init() funcs, where returning an
// error has nowhere to go.
func Add(r Registration) {
	if err := defaultCatalog.Add(r); err != nil {
		panic(err)
	}
}
