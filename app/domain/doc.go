// Package domain holds the pure domain model: entities, value objects, and
// domain services. Nothing here imports the framework, an adapter, or any
// external technology; the domain expresses business rules and nothing
// else.
//
// Domain types are not discoverable components. They are constructed by use
// cases and adapters, never resolved from the registry.
package domain
