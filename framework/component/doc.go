// Package component implements the archetype's discovery convention: the
// rule by which types are recognized as use cases or application services
// and wired into the composition root by the port contracts they satisfy.
//
// # Convention
//
// A component is discoverable when it
//
//  1. lives under a namespace declared at composition time,
//  2. has a simple name ending in a designated suffix
//     ("Case" for use cases, "Service" for application services), and
//  3. declares the capability (port) types it implements.
//
// A type violating (2) is silently excluded — that is the opt-out, not an
// error. Everything else that can be wrong is fatal at scan time.
//
// # Registration
//
// Go has no class index to reflect over, so discovery enumerates an
// explicit static catalog that component packages populate at init time:
//
//	func init() {
//	    component.Add(component.Registration{
//	        Namespace:    "app/application",
//	        Name:         "PlaceOrderCase",
//	        Capabilities: []reflect.Type{component.Capability[OrderPlacer]()},
//	        Build:        func() any { return &PlaceOrderCase{} },
//	    })
//	}
//
// # Scan
//
// The kernel runs exactly one scan before anything else is reachable:
//
//	registry, err := component.Scan(
//	    component.Default(),
//	    []string{"app/application", "app/adapters"},
//	    component.DefaultPattern(),
//	)
//
// The scan is deterministic (components ordered by fully-qualified name),
// all-or-nothing, and fail-fast: a capability claimed twice, a duplicate
// name, or a declared contract the built value does not satisfy aborts
// startup with a diagnostic naming the capability and the components.
//
// # Resolution
//
// After the scan the registry is immutable and safe for concurrent reads.
// Consumers depend on ports, never on concrete types:
//
//	placer, err := component.Resolve[OrderPlacer](registry)
//
// A capability with zero implementations fails with kind NotFound at first
// resolution; it never silently yields a zero value.
package component
