// Package driven is the home of outbound adapters: implementations of the
// application's outbound ports bound to specific external technology —
// object storage, queues, key-value stores, secret stores, persistence.
// A driven adapter registers under the port types it implements and is
// resolved by the application layer through those ports alone.
//
// Driven adapters live under the scanned "app/adapters" namespace and
// follow the discovery naming convention (simple name ending in "Service"
// or "Case").
//
// The archetype ships no adapter: concrete cloud integrations are named in
// documentation only.
package driven
