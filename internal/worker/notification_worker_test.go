package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/grievance-service/internal/config"
	"github.com/spec-kit/grievance-service/internal/events"
)

func TestStartNotificationWorkerSubscribes(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()

	svc := StartNotificationWorker(dispatcher, zap.New(core), config.NotificationConfig{})
	require.NotNil(t, svc)

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventGrievanceSubmitted,
		TicketID: "ab12cd34",
		Payload:  events.GrievanceSubmittedPayload{Anonymous: true},
	}))
	assert.Equal(t, 1, logs.FilterMessage("GrievanceSubmitted").Len())
}

func TestStartNotificationWorkerWithoutDispatcher(t *testing.T) {
	assert.Nil(t, StartNotificationWorker(nil, zap.NewNop(), config.NotificationConfig{}))
}
