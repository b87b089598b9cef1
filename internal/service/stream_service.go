package service

import (
	"context"

	"video-search-be/internal/dto"
	"video-search-be/internal/pkg/logger"
	"video-search-be/internal/websocket"
	"video-search-be/pkg/events"
	"video-search-be/pkg/nats"

	"github.com/google/uuid"
)

type IStreamService interface {
	Start() error
}

// streamService bridges the NATS event mirror to websocket watchers. Every
// analytics event carries a session_id; events without one (or with a bad
// one) are dropped, since no watcher could be keyed to them anyway.
type streamService struct {
	subscriber *nats.Subscriber
	hub        *websocket.Hub
	log        logger.ILogger
}

func NewStreamService(subscriber *nats.Subscriber, hub *websocket.Hub, log logger.ILogger) IStreamService {
	return &streamService{
		subscriber: subscriber,
		hub:        hub,
		log:        log,
	}
}

func (s *streamService) Start() error {
	return s.subscriber.Subscribe("events.>", "stream-service-worker", s.handleEvent)
}

func (s *streamService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	raw, _ := payload["session_id"].(string)
	sessionId, err := uuid.Parse(raw)
	if err != nil {
		s.log.Warn("StreamService", "event without usable session_id", map[string]interface{}{
			"event_type": event.EventType(),
		})
		return nil
	}

	s.hub.Send(sessionId, dto.EventEnvelope{
		EventType:  event.EventType(),
		Payload:    payload,
		OccurredAt: event.Timestamp(),
	})
	return nil
}
