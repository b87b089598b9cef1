package service

import (
	"context"
	"encoding/json"

	"video-search-be/internal/dto"
	"video-search-be/internal/entity"
	"video-search-be/internal/pkg/logger"
	"video-search-be/internal/repository/unitofwork"
	"video-search-be/pkg/events"
	"video-search-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains analytics events off the in-process bus and writes
// them to the database. Analytics writes are best effort: every message is
// Acked exactly once and failures are logged, never retried, so a database
// hiccup cannot back up the interaction path.
type consumerService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	uowFactory    unitofwork.RepositoryFactory
	natsPublisher *nats.Publisher // optional mirror for live subscribers
	log           logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	natsPublisher *nats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:        pubSub,
		topicName:     topicName,
		uowFactory:    uowFactory,
		natsPublisher: natsPublisher,
		log:           log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Ack unconditionally. Interaction analytics are lossy by contract and a
	// poison message must not wedge the channel.
	defer msg.Ack()

	var envelope dto.EventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.log.Error("AnalyticsConsumer", "failed to unmarshal event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := cs.persist(ctx, envelope); err != nil {
		cs.log.Error("AnalyticsConsumer", "failed to persist event", map[string]interface{}{
			"event_type": envelope.EventType,
			"error":      err.Error(),
		})
		return
	}

	cs.mirror(ctx, envelope)
}

func (cs *consumerService) persist(ctx context.Context, envelope dto.EventEnvelope) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sessionId, err := payloadUUID(envelope.Payload, "session_id")
	if err != nil {
		return err
	}

	switch envelope.EventType {
	case events.TypeSessionStarted:
		userId, err := payloadUUID(envelope.Payload, "user_id")
		if err != nil {
			return err
		}
		return uow.PageSessionRepository().Create(ctx, &entity.PageSession{
			Id:        sessionId,
			UserId:    userId,
			StartedAt: envelope.OccurredAt,
		})

	case events.TypeSessionEnded:
		return uow.PageSessionRepository().End(ctx, sessionId, envelope.OccurredAt)

	case events.TypeNext, events.TypePrev, events.TypeAutoAdvanceStart, events.TypeAutoAdvanceStop:
		videoId, _ := envelope.Payload["video_id"].(string)
		interaction := entity.VideoInteraction{
			Id:        uuid.New(),
			SessionId: sessionId,
			VideoId:   videoId,
			EventType: envelope.EventType,
			CreatedAt: envelope.OccurredAt,
		}
		if raw, ok := envelope.Payload["auto_advance_duration"]; ok {
			if seconds, ok := raw.(float64); ok {
				d := int(seconds)
				interaction.AutoAdvanceDuration = &d
			}
		}
		return uow.VideoInteractionRepository().Create(ctx, &interaction)

	case events.TypeIntervalSet:
		seconds, _ := envelope.Payload["interval_set"].(float64)
		return uow.AutoAdvanceIntervalRepository().Create(ctx, &entity.AutoAdvanceInterval{
			Id:          uuid.New(),
			SessionId:   sessionId,
			IntervalSet: int(seconds),
			CreatedAt:   envelope.OccurredAt,
		})

	default:
		cs.log.Warn("AnalyticsConsumer", "unknown event type", map[string]interface{}{
			"event_type": envelope.EventType,
		})
		return nil
	}
}

// mirror republishes the event to NATS so websocket subscribers see it live.
// Mirroring is best effort.
func (cs *consumerService) mirror(ctx context.Context, envelope dto.EventEnvelope) {
	if cs.natsPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       envelope.EventType,
		Data:       envelope.Payload,
		OccurredAt: envelope.OccurredAt,
	}
	if err := cs.natsPublisher.Publish(ctx, evt); err != nil {
		cs.log.Warn("AnalyticsConsumer", "failed to mirror event to NATS", map[string]interface{}{
			"event_type": envelope.EventType,
			"error":      err.Error(),
		})
	}
}

func payloadUUID(payload map[string]interface{}, key string) (uuid.UUID, error) {
	raw, _ := payload[key].(string)
	return uuid.Parse(raw)
}
