// Package application is the home of use cases and application services —
// the orchestration layer between driving adapters and the domain.
//
// This namespace is scanned at startup. To be discovered here a type must
// have a simple name ending in "Case" (a use case: one application-level
// operation expressed as orchestration over ports) or "Service" (an
// application service: a cohesive group of operations), and must declare
// the port types it implements in its registration:
//
//	type PlaceOrderCase struct{ orders ports.OrderStore }
//
//	func init() {
//	    component.Add(component.Registration{
//	        Namespace:    "app/application",
//	        Name:         "PlaceOrderCase",
//	        Capabilities: []reflect.Type{component.Capability[ports.OrderPlacer]()},
//	        Build:        func() any { return &PlaceOrderCase{} },
//	    })
//	}
//
// Types with any other name are deliberately invisible to discovery;
// helpers and internal collaborators stay unregistered by construction.
//
// The archetype ships no use case: this package documents where they go.
package application
