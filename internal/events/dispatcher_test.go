package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribersInOrder(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var calls []string
	dispatcher.Subscribe(EventReportCreated, func(_ context.Context, _ Event) error {
		calls = append(calls, "first")
		return nil
	})
	dispatcher.Subscribe(EventReportCreated, func(_ context.Context, _ Event) error {
		calls = append(calls, "second")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventReportCreated, ReportID: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestPublishIgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventReportDeleted, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventReportCreated})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestHandlerErrorDoesNotStopOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var reached bool
	dispatcher.Subscribe(EventReportStatusChanged, func(_ context.Context, _ Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventReportStatusChanged, func(_ context.Context, _ Event) error {
		reached = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventReportStatusChanged})
	require.NoError(t, err)
	assert.True(t, reached)
}
