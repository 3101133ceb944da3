package authevents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safaribook/authevents"
)

func TestNotifyInvokesEveryHandlerOnce(t *testing.T) {
	registry := authevents.NewRegistry()

	first, second := 0, 0
	registry.Register(func() { first++ })
	registry.Register(func() { second++ })

	registry.Notify()

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	registry.Notify()

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func TestDeregisteredHandlerIsNeverInvoked(t *testing.T) {
	registry := authevents.NewRegistry()

	calls := 0
	deregister := registry.Register(func() { calls++ })

	registry.Notify()
	assert.Equal(t, 1, calls)

	deregister()
	deregister() // second call is a no-op

	registry.Notify()
	assert.Equal(t, 1, calls)
}

func TestNotifyWithNoHandlers(t *testing.T) {
	registry := authevents.NewRegistry()
	registry.Notify()
}

func TestClearRemovesAllHandlers(t *testing.T) {
	registry := authevents.NewRegistry()

	calls := 0
	registry.Register(func() { calls++ })
	registry.Register(func() { calls++ })

	registry.Clear()
	registry.Notify()

	assert.Equal(t, 0, calls)
}

func TestHandlerRegisteredDuringNotifyDoesNotRunInSameRound(t *testing.T) {
	registry := authevents.NewRegistry()

	lateCalls := 0
	registry.Register(func() {
		registry.Register(func() { lateCalls++ })
	})

	registry.Notify()
	assert.Equal(t, 0, lateCalls)

	registry.Notify()
	assert.Equal(t, 1, lateCalls)
}
