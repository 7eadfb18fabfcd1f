// Package driving is the home of inbound adapters: the technology-facing
// edges that invoke the application — HTTP handlers, message consumers,
// schedulers. A driving adapter resolves the inbound ports it needs from
// the registry and registers its routes on the kernel router before Run.
//
// Driving adapters live under the scanned "app/adapters" namespace and
// follow the same naming convention as the application layer: a name
// ending in "Service" (or "Case") makes the adapter discoverable.
//
// The archetype ships no adapter: concrete transports are named in
// documentation only.
package driving
