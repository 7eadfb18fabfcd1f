// Package ports holds the capability contracts of the application: the
// interfaces use cases depend on, with no knowledge of who implements
// them. Ports are the keys of the component registry — a use case or
// adapter registers under the port types it satisfies, and consumers
// resolve by port type, never by concrete implementation.
//
// Inbound ports are implemented by the application layer and called by
// driving adapters; outbound ports are implemented by driven adapters and
// called by the application layer. Both kinds live here so neither side
// depends on the other.
//
// The archetype ships no port: this package documents where they go.
package ports
