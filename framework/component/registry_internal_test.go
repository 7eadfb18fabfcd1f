package component

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// White-box tests for resolution sub-kinds: Scan refuses to build an
// ambiguous registry, so the Ambiguous path is exercised on a hand-built
// one here.

type pinger interface{ Ping() string }

type pingA struct{}

func (pingA) Ping() string { return "a" }

type pingB struct{}

func (pingB) Ping() string { return "b" }

func descriptorFor(ns, name string, tag Classification, caps []reflect.Type, instance any) *Descriptor {
	return &Descriptor{
		namespace:      ns,
		name:           name,
		classification: tag,
		capabilities:   caps,
		instance:       instance,
	}
}

func TestResolve_NotFoundKind(t *testing.T) {
	r := newRegistry()

	_, err := r.Resolve(Capability[pinger]())
	require.Error(t, err)

	var unresolved *UnresolvedCapabilityError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, NotFound, unresolved.Kind)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsAmbiguous(err))
	assert.Contains(t, err.Error(), "pinger")
}

func TestResolve_AmbiguousKind(t *testing.T) {
	cap := Capability[pinger]()
	r := newRegistry()
	r.add(descriptorFor("app", "PingACase", UseCase, []reflect.Type{cap}, pingA{}))
	r.add(descriptorFor("app", "PingBService", Service, []reflect.Type{cap}, pingB{}))

	_, err := r.Resolve(cap)
	require.Error(t, err)

	var unresolved *UnresolvedCapabilityError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, Ambiguous, unresolved.Kind)
	assert.Equal(t, []string{"app.PingACase", "app.PingBService"}, unresolved.Candidates)
	assert.True(t, IsAmbiguous(err))
	assert.False(t, IsNotFound(err))
}

func TestResolve_UniqueInstance(t *testing.T) {
	cap := Capability[pinger]()
	r := newRegistry()
	r.add(descriptorFor("app", "PingACase", UseCase, []reflect.Type{cap}, pingA{}))

	got, err := r.Resolve(cap)
	require.NoError(t, err)
	assert.Equal(t, pingA{}, got)

	typed, err := Resolve[pinger](r)
	require.NoError(t, err)
	assert.Equal(t, "a", typed.Ping())
}

func TestMustResolve_PanicsWhenUnresolved(t *testing.T) {
	r := newRegistry()
	assert.Panics(t, func() { MustResolve[pinger](r) })
}

func TestRegistry_CapabilitiesDiscoveryOrder(t *testing.T) {
	capP := Capability[pinger]()
	r := newRegistry()
	r.add(descriptorFor("app", "PingACase", UseCase, []reflect.Type{capP}, pingA{}))

	require.Equal(t, 1, r.Len())
	assert.Equal(t, []reflect.Type{capP}, r.Capabilities())

	d, err := r.Descriptor(capP)
	require.NoError(t, err)
	assert.Equal(t, "app.PingACase", d.FQN())
	assert.Equal(t, []reflect.Type{capP}, d.Capabilities())
}

func TestCapability_RequiresInterface(t *testing.T) {
	assert.Panics(t, func() { Capability[pingA]() })
	assert.NotPanics(t, func() { Capability[pinger]() })
}
