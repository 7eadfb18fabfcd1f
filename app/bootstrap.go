// Package app declares the application's composition: which namespaces
// participate in component discovery and which naming rules mark a type as
// discoverable. This is the only place the wiring convention is configured;
// nothing here is runtime-mutable.
package app

import (
	kernel "github.com/hexkit/hexkit/framework/app"
	"github.com/hexkit/hexkit/framework/component"
)

// Namespaces the discovery scan covers. Use cases and application services
// live under app/application; adapter implementations under app/adapters.
// Types outside these namespaces are invisible to discovery regardless of
// their names.
var Namespaces = []string{
	"app/application",
	"app/adapters",
}

// New creates the application with the archetype's discovery convention:
// simple names ending in "Case" are use cases, names ending in "Service"
// are application services, everything else is excluded.
func New() *kernel.Application {
	return kernel.New(kernel.Options{
		Namespaces: Namespaces,
		Pattern:    component.DefaultPattern(),
	})
}
