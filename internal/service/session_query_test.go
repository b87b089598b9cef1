package service

import (
	"context"
	"testing"
	"time"

	"video-search-be/internal/entity"
	"video-search-be/internal/repository/contract"
	"video-search-be/internal/repository/specification"
	"video-search-be/internal/repository/unitofwork"
	"video-search-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queryPageRepo struct {
	session   *entity.PageSession
	sessions  []*entity.PageSession
	openCount int64
}

func (r *queryPageRepo) Create(context.Context, *entity.PageSession) error { return nil }
func (r *queryPageRepo) End(context.Context, uuid.UUID, time.Time) error   { return nil }
func (r *queryPageRepo) FindOne(context.Context, ...specification.Specification) (*entity.PageSession, error) {
	return r.session, nil
}

func (r *queryPageRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.PageSession, error) {
	return r.sessions, nil
}

// Count answers the open-session count only when the open filter was
// actually passed; otherwise the total.
func (r *queryPageRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	for _, sp := range specs {
		if _, ok := sp.(specification.OpenOnly); ok {
			return r.openCount, nil
		}
	}
	return int64(len(r.sessions)), nil
}

type queryInteractionRepo struct {
	rows []*entity.VideoInteraction
}

func (r *queryInteractionRepo) Create(context.Context, *entity.VideoInteraction) error { return nil }
func (r *queryInteractionRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.VideoInteraction, error) {
	return r.rows, nil
}

// Count honors an event-type filter so the summary's per-type counts prove
// the specification is passed through.
func (r *queryInteractionRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	eventType := ""
	for _, sp := range specs {
		if et, ok := sp.(specification.ByEventType); ok {
			eventType = et.EventType
		}
	}
	if eventType == "" {
		return int64(len(r.rows)), nil
	}
	var n int64
	for _, row := range r.rows {
		if row.EventType == eventType {
			n++
		}
	}
	return n, nil
}

type queryIntervalRepo struct {
	rows []*entity.AutoAdvanceInterval
}

func (r *queryIntervalRepo) Create(context.Context, *entity.AutoAdvanceInterval) error { return nil }
func (r *queryIntervalRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.AutoAdvanceInterval, error) {
	return r.rows, nil
}

func (r *queryIntervalRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

type querySearchRepo struct {
	rows []*entity.Search
}

func (r *querySearchRepo) Create(context.Context, *entity.Search) error { return nil }
func (r *querySearchRepo) FindOne(context.Context, ...specification.Specification) (*entity.Search, error) {
	if len(r.rows) == 0 {
		return nil, nil
	}
	return r.rows[0], nil
}

func (r *querySearchRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Search, error) {
	return r.rows, nil
}

func (r *querySearchRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

type queryCompilationRepo struct {
	spans []*entity.CompilationModeSession
}

func (r *queryCompilationRepo) Create(context.Context, *entity.CompilationModeSession) error {
	return nil
}
func (r *queryCompilationRepo) CloseById(context.Context, uuid.UUID, time.Time) error { return nil }
func (r *queryCompilationRepo) FindOne(context.Context, ...specification.Specification) (*entity.CompilationModeSession, error) {
	return nil, nil
}

func (r *queryCompilationRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.CompilationModeSession, error) {
	return r.spans, nil
}

type queryUow struct {
	pages        *queryPageRepo
	interactions *queryInteractionRepo
	intervals    *queryIntervalRepo
	searches     *querySearchRepo
	compilations *queryCompilationRepo
}

func (u *queryUow) Begin(context.Context) error { return nil }
func (u *queryUow) Commit() error               { return nil }
func (u *queryUow) Rollback() error             { return nil }

func (u *queryUow) PageSessionRepository() contract.PageSessionRepository { return u.pages }
func (u *queryUow) VideoInteractionRepository() contract.VideoInteractionRepository {
	return u.interactions
}
func (u *queryUow) AutoAdvanceIntervalRepository() contract.AutoAdvanceIntervalRepository {
	return u.intervals
}
func (u *queryUow) CompilationSessionRepository() contract.CompilationSessionRepository {
	return u.compilations
}
func (u *queryUow) SearchRepository() contract.SearchRepository { return u.searches }

type queryFactory struct {
	uow *queryUow
}

func (f *queryFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

func newQueryService(uow *queryUow) ISessionService {
	return NewSessionService(nil, &recordingEmitter{}, nil, &queryFactory{uow}, testLogger{})
}

func TestSessionSummaryAggregates(t *testing.T) {
	sessionId := uuid.New()
	interval := 8
	uow := &queryUow{
		pages: &queryPageRepo{session: &entity.PageSession{
			Id:        sessionId,
			UserId:    uuid.New(),
			StartedAt: time.Now().Add(-time.Hour),
		}},
		interactions: &queryInteractionRepo{rows: []*entity.VideoInteraction{
			{SessionId: sessionId, VideoId: "a", EventType: events.TypeNext},
			{SessionId: sessionId, VideoId: "b", EventType: events.TypeNext},
			{SessionId: sessionId, VideoId: "a", EventType: events.TypePrev},
			{SessionId: sessionId, VideoId: "c", EventType: events.TypeAutoAdvanceStop},
		}},
		intervals: &queryIntervalRepo{rows: []*entity.AutoAdvanceInterval{
			{SessionId: sessionId, IntervalSet: interval},
			{SessionId: sessionId, IntervalSet: 5},
		}},
		searches: &querySearchRepo{rows: []*entity.Search{
			{SessionId: sessionId, Prompt: "beach sunset"},
			{SessionId: sessionId, Prompt: "waves"},
		}},
		compilations: &queryCompilationRepo{spans: []*entity.CompilationModeSession{
			{SessionId: sessionId, EnteredAt: time.Now()},
		}},
	}
	svc := newQueryService(uow)

	res, err := svc.Summary(context.Background(), sessionId)
	require.NoError(t, err)

	assert.Equal(t, sessionId, res.SessionId)
	assert.Nil(t, res.EndedAt)
	assert.Equal(t, int64(4), res.InteractionCount)
	assert.Equal(t, int64(2), res.NextCount)
	assert.Equal(t, int64(1), res.PrevCount)
	assert.Equal(t, int64(2), res.SearchCount)
	assert.Equal(t, "beach sunset", res.LastPrompt)
	assert.Equal(t, int64(2), res.IntervalEditCount)
	require.NotNil(t, res.LastIntervalSet)
	assert.Equal(t, interval, *res.LastIntervalSet)
	assert.Equal(t, 1, res.CompilationCount)
	require.Len(t, res.RecentEvents, 4)
	assert.Equal(t, "a", res.RecentEvents[0].VideoId)
}

func TestSessionSummaryUnknownSessionIs404(t *testing.T) {
	svc := newQueryService(&queryUow{
		pages:        &queryPageRepo{},
		interactions: &queryInteractionRepo{},
		intervals:    &queryIntervalRepo{},
		searches:     &querySearchRepo{},
		compilations: &queryCompilationRepo{},
	})

	_, err := svc.Summary(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Session not found")
}

func TestSessionListReportsOpenCount(t *testing.T) {
	userId := uuid.New()
	ended := time.Now()
	uow := &queryUow{
		pages: &queryPageRepo{
			sessions: []*entity.PageSession{
				{Id: uuid.New(), UserId: userId, StartedAt: time.Now()},
				{Id: uuid.New(), UserId: userId, StartedAt: time.Now().Add(-time.Hour), EndedAt: &ended},
			},
			openCount: 1,
		},
		interactions: &queryInteractionRepo{},
		intervals:    &queryIntervalRepo{},
		searches:     &querySearchRepo{},
		compilations: &queryCompilationRepo{},
	}
	svc := newQueryService(uow)

	res, err := svc.List(context.Background(), userId, 0, 0)
	require.NoError(t, err)

	require.Len(t, res.Sessions, 2)
	assert.Nil(t, res.Sessions[0].EndedAt)
	assert.NotNil(t, res.Sessions[1].EndedAt)
	assert.Equal(t, int64(1), res.OpenCount)
}
