package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribersInOrder(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var calls []string
	dispatcher.Subscribe(EventComplaintFiled, func(_ context.Context, _ Event) error {
		calls = append(calls, "first")
		return nil
	})
	dispatcher.Subscribe(EventComplaintFiled, func(_ context.Context, _ Event) error {
		calls = append(calls, "second")
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventComplaintFiled}))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatcherHandlerErrorDoesNotBlockOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var reached bool
	dispatcher.Subscribe(EventComplaintDispatched, func(_ context.Context, _ Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventComplaintDispatched, func(_ context.Context, _ Event) error {
		reached = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventComplaintDispatched}))
	assert.True(t, reached)
}

func TestDispatcherIgnoresUnrelatedEventTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var called bool
	dispatcher.Subscribe(EventComplaintDeleted, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventComplaintFiled}))
	assert.False(t, called)
}
