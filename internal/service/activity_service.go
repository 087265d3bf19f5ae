package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/artisanfinder/web/internal/events"
	"github.com/artisanfinder/web/internal/observability"
)

// ActivityTypes lists every event the activity service listens to.
var ActivityTypes = []events.EventType{
	events.EventArtisanCreated,
	events.EventArtisanUpdated,
	events.EventArtisanDeleted,
	events.EventReviewAdded,
	events.EventUserRegistered,
	events.EventUserLoggedIn,
}

// ActivityService logs and counts the mutations made through the application.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{
		dispatcher: dispatcher,
		logger:     logger.Named("activity"),
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, eventType := range ActivityTypes {
		a.dispatcher.Subscribe(eventType, a.handle)
	}
}

func (a *ActivityService) handle(_ context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Time("timestamp", event.Timestamp),
		zap.Any("payload", event.Payload),
	}
	if event.ArtisanID != 0 {
		fields = append(fields, zap.Int("artisan_id", event.ArtisanID))
	}
	a.logger.Info("activity", fields...)
	a.metrics.RecordEvent(string(event.Type))
	return nil
}
