package service

import (
	"context"
	"errors"

	"video-search-be/internal/pkg/serverutils"
	"video-search-be/internal/repository/memory"
	"video-search-be/pkg/playback"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

type IPlaybackService interface {
	State(ctx context.Context, sessionId uuid.UUID) (*playback.State, error)
	AddSlot(ctx context.Context, sessionId uuid.UUID, pos playback.Position) (*playback.State, error)
	RemoveSlot(ctx context.Context, sessionId uuid.UUID, pos playback.Position) (*playback.State, error)
	Next(ctx context.Context, sessionId uuid.UUID, pos playback.Position) (*playback.State, error)
	Previous(ctx context.Context, sessionId uuid.UUID, pos playback.Position) (*playback.State, error)
	ToggleAutoAdvance(ctx context.Context, sessionId uuid.UUID, enabled bool) (*playback.State, error)
	SetInterval(ctx context.Context, sessionId uuid.UUID, seconds int) (*playback.State, error)
	EnterFullscreen(ctx context.Context, sessionId uuid.UUID) (*playback.State, error)
	ExitFullscreen(ctx context.Context, sessionId uuid.UUID) (*playback.State, error)
	SyncFullscreen(ctx context.Context, sessionId uuid.UUID, active bool) (*playback.State, error)
	ToggleBookmark(ctx context.Context, sessionId uuid.UUID, videoId string) (bool, error)
}

// playbackService is the command surface over live playback sessions. Every
// command re-reads the session from the store so TTLs keep extending while
// the visit is active.
type playbackService struct {
	sessions *memory.PlaybackRepository
}

func NewPlaybackService(sessions *memory.PlaybackRepository) IPlaybackService {
	return &playbackService{sessions: sessions}
}

func (s *playbackService) session(sessionId uuid.UUID) (*playback.Session, error) {
	session, ok := s.sessions.Get(sessionId)
	if !ok {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "Session not found", ErrSessionNotFound)
	}
	s.sessions.Touch(sessionId)
	return session, nil
}

func (s *playbackService) snapshot(session *playback.Session) *playback.State {
	state := session.State()
	return &state
}

func (s *playbackService) State(ctx context.Context, sessionId uuid.UUID) (*playback.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	return s.snapshot(session), nil
}

func (s *playbackService) AddSlot(ctx context.Context, sessionId uuid.UUID, pos playback.Position) (*playback.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	if err := session.AddSlot(pos); err != nil {
		return nil, badCommand(err)
	}
	return s.snapshot(session), nil
}

func (s *playbackService) RemoveSlot(ctx context.Context, sessionId uuid.UUID, pos playback.Position) (*playback.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	if err := session.RemoveSlot(pos); err != nil {
		return nil, badCommand(err)
	}
	return s.snapshot(session), nil
}

func (s *playbackService) Next(ctx context.Context, sessionId uuid.UUID, pos playback.Position) (*playback.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	if err := session.Next(pos); err != nil {
		return nil, badCommand(err)
	}
	return s.snapshot(session), nil
}

func (s *playbackService) Previous(ctx context.Context, sessionId uuid.UUID, pos playback.Position) (*playback.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	if err := session.Previous(pos); err != nil {
		return nil, badCommand(err)
	}
	return s.snapshot(session), nil
}

func (s *playbackService) ToggleAutoAdvance(ctx context.Context, sessionId uuid.UUID, enabled bool) (*playback.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	if err := session.ToggleAutoAdvance(enabled); err != nil {
		return nil, badCommand(err)
	}
	return s.snapshot(session), nil
}

func (s *playbackService) SetInterval(ctx context.Context, sessionId uuid.UUID, seconds int) (*playback.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	session.SetInterval(seconds)
	return s.snapshot(session), nil
}

func (s *playbackService) EnterFullscreen(ctx context.Context, sessionId uuid.UUID) (*playback.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	if err := session.EnterFullscreen(ctx); err != nil {
		return nil, badCommand(err)
	}
	return s.snapshot(session), nil
}

func (s *playbackService) ExitFullscreen(ctx context.Context, sessionId uuid.UUID) (*playback.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	if err := session.ExitFullscreen(ctx); err != nil {
		return nil, badCommand(err)
	}
	return s.snapshot(session), nil
}

func (s *playbackService) SyncFullscreen(ctx context.Context, sessionId uuid.UUID, active bool) (*playback.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	session.SyncFullscreen(active)
	return s.snapshot(session), nil
}

func (s *playbackService) ToggleBookmark(ctx context.Context, sessionId uuid.UUID, videoId string) (bool, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return false, err
	}
	return session.ToggleBookmark(videoId), nil
}

// badCommand maps domain rule violations to 400s while letting platform
// failures surface as 500s.
func badCommand(err error) error {
	switch {
	case errors.Is(err, playback.ErrCenterSlotFixed),
		errors.Is(err, playback.ErrInvalidSlot),
		errors.Is(err, playback.ErrNoCurrentVideo):
		return serverutils.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	default:
		return err
	}
}
