package service

import (
	"context"

	"video-search-be/internal/pkg/logger"
	"video-search-be/pkg/events"
	"video-search-be/pkg/playback"
)

// busEmitter forwards playback events onto the in-process bus. Emission is
// fire and forget so interaction commands never wait on analytics.
type busEmitter struct {
	publisher IPublisherService
	log       logger.ILogger
}

func NewBusEmitter(publisher IPublisherService, log logger.ILogger) playback.Emitter {
	return &busEmitter{
		publisher: publisher,
		log:       log,
	}
}

func (e *busEmitter) Emit(evt events.Event) {
	go func() {
		if err := e.publisher.Publish(context.Background(), evt); err != nil {
			e.log.Warn("EventEmitter", "failed to publish event", map[string]interface{}{
				"event_type": evt.EventType(),
				"error":      err.Error(),
			})
		}
	}()
}
