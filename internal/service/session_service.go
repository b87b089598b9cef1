package service

import (
	"context"
	"time"

	"video-search-be/internal/dto"
	"video-search-be/internal/pkg/logger"
	"video-search-be/internal/pkg/serverutils"
	"video-search-be/internal/repository/memory"
	"video-search-be/internal/repository/specification"
	"video-search-be/internal/repository/unitofwork"
	"video-search-be/pkg/events"
	"video-search-be/pkg/playback"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionService interface {
	Start(ctx context.Context, userId uuid.UUID) (*dto.StartSessionResponse, error)
	End(ctx context.Context, sessionId uuid.UUID) (*dto.EndSessionResponse, error)
	Summary(ctx context.Context, sessionId uuid.UUID) (*dto.SessionSummaryResponse, error)
	List(ctx context.Context, userId uuid.UUID, page, limit int) (*dto.SessionListResponse, error)
}

type sessionService struct {
	sessions         *memory.PlaybackRepository
	emitter          playback.Emitter
	compilationStore playback.CompilationStore
	uowFactory       unitofwork.RepositoryFactory
	log              logger.ILogger
}

func NewSessionService(
	sessions *memory.PlaybackRepository,
	emitter playback.Emitter,
	compilationStore playback.CompilationStore,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		sessions:         sessions,
		emitter:          emitter,
		compilationStore: compilationStore,
		uowFactory:       uowFactory,
		log:              log,
	}
}

// Start mints a session, registers its live state and announces it on the
// bus. The page_sessions row is written by the analytics consumer.
func (s *sessionService) Start(ctx context.Context, userId uuid.UUID) (*dto.StartSessionResponse, error) {
	id := uuid.New()
	startedAt := time.Now()

	session := playback.NewSession(id, userId, nil, s.compilationStore, s.emitter, s.log)
	s.sessions.Put(session)

	s.emitter.Emit(events.NewSessionStarted(id, userId))

	s.log.Info("SessionService", "session started", map[string]interface{}{
		"session_id": id,
		"user_id":    userId,
	})

	return &dto.StartSessionResponse{
		SessionId: id,
		StartedAt: startedAt,
	}, nil
}

// End closes a session. Unload, visibility loss and teardown can all arrive
// for the same visit; only the first one emits SESSION_ENDED, and the
// consumer's guarded update makes even redundant events harmless. A session
// already evicted from memory is still announced for the same reason.
func (s *sessionService) End(ctx context.Context, sessionId uuid.UUID) (*dto.EndSessionResponse, error) {
	session, ok := s.sessions.Get(sessionId)
	if ok {
		if !session.MarkEnded() {
			return &dto.EndSessionResponse{SessionId: sessionId, Ended: false}, nil
		}
		s.sessions.Delete(sessionId)
	}

	s.emitter.Emit(events.NewSessionEnded(sessionId))

	return &dto.EndSessionResponse{SessionId: sessionId, Ended: true}, nil
}

// Summary rolls up the analytics rows of one page session: interaction and
// search counts, the last settled interval, compilation spans and the most
// recent events.
func (s *sessionService) Summary(ctx context.Context, sessionId uuid.UUID) (*dto.SessionSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.PageSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Session not found", nil)
	}

	bySession := specification.BySessionID{SessionID: sessionId}
	newestFirst := specification.OrderBy{Field: "created_at", Desc: true}

	interactions := uow.VideoInteractionRepository()
	total, err := interactions.Count(ctx, bySession)
	if err != nil {
		return nil, err
	}
	nextCount, err := interactions.Count(ctx, bySession, specification.ByEventType{EventType: events.TypeNext})
	if err != nil {
		return nil, err
	}
	prevCount, err := interactions.Count(ctx, bySession, specification.ByEventType{EventType: events.TypePrev})
	if err != nil {
		return nil, err
	}
	recent, err := interactions.FindAll(ctx, bySession, newestFirst, specification.Pagination{Limit: 10})
	if err != nil {
		return nil, err
	}

	searchCount, err := uow.SearchRepository().Count(ctx, bySession)
	if err != nil {
		return nil, err
	}
	lastSearch, err := uow.SearchRepository().FindOne(ctx, bySession, newestFirst)
	if err != nil {
		return nil, err
	}

	intervalEdits, err := uow.AutoAdvanceIntervalRepository().Count(ctx, bySession)
	if err != nil {
		return nil, err
	}
	lastIntervals, err := uow.AutoAdvanceIntervalRepository().FindAll(ctx, bySession, newestFirst, specification.Pagination{Limit: 1})
	if err != nil {
		return nil, err
	}

	spans, err := uow.CompilationSessionRepository().FindAll(ctx, bySession)
	if err != nil {
		return nil, err
	}

	res := dto.SessionSummaryResponse{
		SessionId:         session.Id,
		StartedAt:         session.StartedAt,
		EndedAt:           session.EndedAt,
		InteractionCount:  total,
		NextCount:         nextCount,
		PrevCount:         prevCount,
		SearchCount:       searchCount,
		IntervalEditCount: intervalEdits,
		CompilationCount:  len(spans),
		RecentEvents:      make([]dto.SessionEventRecord, 0, len(recent)),
	}
	if lastSearch != nil {
		res.LastPrompt = lastSearch.Prompt
	}
	if len(lastIntervals) > 0 {
		res.LastIntervalSet = &lastIntervals[0].IntervalSet
	}
	for _, i := range recent {
		res.RecentEvents = append(res.RecentEvents, dto.SessionEventRecord{
			VideoId:   i.VideoId,
			EventType: i.EventType,
			CreatedAt: i.CreatedAt,
		})
	}
	return &res, nil
}

// List pages through the caller's sessions, newest first, with a count of
// visits that never saw their close event.
func (s *sessionService) List(ctx context.Context, userId uuid.UUID, page, limit int) (*dto.SessionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	byUser := specification.ByUserID{UserID: userId}

	sessions, err := uow.PageSessionRepository().FindAll(ctx, byUser,
		specification.OrderBy{Field: "started_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	openCount, err := uow.PageSessionRepository().Count(ctx, byUser, specification.OpenOnly{})
	if err != nil {
		return nil, err
	}

	res := dto.SessionListResponse{
		Sessions:  make([]dto.SessionListItem, 0, len(sessions)),
		OpenCount: openCount,
	}
	for _, session := range sessions {
		res.Sessions = append(res.Sessions, dto.SessionListItem{
			SessionId: session.Id,
			StartedAt: session.StartedAt,
			EndedAt:   session.EndedAt,
		})
	}
	return &res, nil
}
