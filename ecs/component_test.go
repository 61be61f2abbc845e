package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testTag struct{}

func (testTag) ComponentIdentifier() Identifier {
	return mustID("11111111-1111-1111-1111-111111111111")
}

type destroyCounter struct {
	count *int
}

func (d *destroyCounter) Destroy() { *d.count++ }

func (destroyCounter) ComponentIdentifier() Identifier {
	return mustID("22222222-2222-2222-2222-222222222222")
}

func mustID(s string) Identifier {
	id, err := ParseIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

func TestRegisterComponentIsIdempotent(t *testing.T) {
	reg := NewComponentRegistry(nil)

	id1 := RegisterComponent[testTag](reg)
	id2 := RegisterComponent[testTag](reg)

	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, reg.Len())
}

func TestRegisterComponentDerivesDestructor(t *testing.T) {
	reg := NewComponentRegistry(nil)
	id := RegisterComponent[destroyCounter](reg)

	info := reg.Info(id)
	require.NotNil(t, info.Destructor)
}

func TestRegisterComponentWithoutDestroyerHasNilDestructor(t *testing.T) {
	reg := NewComponentRegistry(nil)
	id := RegisterComponent[testTag](reg)

	info := reg.Info(id)
	assert.Nil(t, info.Destructor)
}

func TestLookupUnknownIdentifier(t *testing.T) {
	reg := NewComponentRegistry(nil)
	_, ok := reg.Lookup(mustID("33333333-3333-3333-3333-333333333333"))
	assert.False(t, ok)
}

type otherTag struct{}

func (otherTag) ComponentIdentifier() Identifier {
	return mustID("11111111-1111-1111-1111-111111111111")
}

func TestRegisterComponentCollisionPanics(t *testing.T) {
	reg := NewComponentRegistry(nil)
	RegisterComponent[testTag](reg)

	assert.Panics(t, func() {
		RegisterComponent[otherTag](reg)
	})
}

func TestRegisterAnonymousRecordsInfo(t *testing.T) {
	reg := NewComponentRegistry(nil)
	id := reg.RegisterAnonymous(ComponentInfo{Name: "anon"})

	assert.Equal(t, "anon", reg.Info(id).Name)
	assert.Equal(t, 1, reg.Len())
}
