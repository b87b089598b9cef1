package service

import (
	"context"
	"errors"
	"testing"

	"video-search-be/internal/dto"
	"video-search-be/internal/entity"
	"video-search-be/internal/pkg/serverutils"
	"video-search-be/internal/repository/contract"
	"video-search-be/internal/repository/memory"
	"video-search-be/internal/repository/specification"
	"video-search-be/internal/repository/unitofwork"
	"video-search-be/pkg/inference"
	"video-search-be/pkg/playback"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debug(string, string, map[string]interface{}) {}
func (testLogger) Info(string, string, map[string]interface{})  {}
func (testLogger) Warn(string, string, map[string]interface{})  {}
func (testLogger) Error(string, string, map[string]interface{}) {}
func (testLogger) Sync() error                                  { return nil }

type stubSearchRepo struct {
	createErr error
	created   []*entity.Search
}

func (r *stubSearchRepo) Create(_ context.Context, s *entity.Search) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, s)
	return nil
}

func (r *stubSearchRepo) FindOne(context.Context, ...specification.Specification) (*entity.Search, error) {
	return nil, nil
}

func (r *stubSearchRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Search, error) {
	return nil, nil
}

func (r *stubSearchRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, nil
}

type stubUow struct {
	searchRepo *stubSearchRepo
}

func (u *stubUow) Begin(context.Context) error { return nil }
func (u *stubUow) Commit() error               { return nil }
func (u *stubUow) Rollback() error             { return nil }

func (u *stubUow) PageSessionRepository() contract.PageSessionRepository { return nil }
func (u *stubUow) VideoInteractionRepository() contract.VideoInteractionRepository {
	return nil
}
func (u *stubUow) AutoAdvanceIntervalRepository() contract.AutoAdvanceIntervalRepository {
	return nil
}
func (u *stubUow) CompilationSessionRepository() contract.CompilationSessionRepository {
	return nil
}
func (u *stubUow) SearchRepository() contract.SearchRepository { return u.searchRepo }

type stubFactory struct {
	uow *stubUow
}

func (f *stubFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

type stubPredictor struct {
	req  *inference.Request
	resp *inference.Response
	err  error
}

func (p *stubPredictor) Predict(_ context.Context, req inference.Request) (*inference.Response, error) {
	p.req = &req
	if p.err != nil {
		return nil, p.err
	}
	return p.resp, nil
}

type stubSigner struct {
	failOn string
	calls  []string
}

func (s *stubSigner) SignedURL(_ context.Context, locator string) (string, error) {
	if s.failOn != "" && locator == s.failOn {
		return "", errors.New("unsignable locator")
	}
	s.calls = append(s.calls, locator)
	return "signed://" + locator, nil
}

func searchFixture() *inference.Response {
	return &inference.Response{
		Matches: []inference.Match{
			{ID: "clip-1", Title: "Sunset", StorageURL: "https://s3.wasabisys.com/clips/a.mp4", Similarity: 0.95},
			{ID: "clip-2", Title: "Waves", StorageURL: "https://s3.wasabisys.com/clips/b.mp4", Similarity: 0.82},
			{ID: "clip-3", Title: "Dunes", StorageURL: "https://s3.wasabisys.com/clips/c.mp4", Similarity: 0.77},
		},
		Prompt:    "beach",
		Threshold: 0.1,
	}
}

func TestSearchSignsAllMatchesInOrder(t *testing.T) {
	repo := &stubSearchRepo{}
	predictor := &stubPredictor{resp: searchFixture()}
	signer := &stubSigner{}
	svc := NewSearchService(&stubFactory{&stubUow{repo}}, predictor, signer, nil, testLogger{})

	userId := uuid.New()
	res, err := svc.Search(context.Background(), userId, dto.SearchRequest{Prompt: "beach"})
	require.NoError(t, err)

	require.Len(t, res.Matches, 3)
	assert.Equal(t, "clip-1", res.Matches[0].Id)
	assert.Equal(t, "clip-2", res.Matches[1].Id)
	assert.Equal(t, "clip-3", res.Matches[2].Id)

	// Every match carries its own signed URL.
	seen := map[string]bool{}
	for _, m := range res.Matches {
		assert.Contains(t, m.AccessUrl, "signed://")
		assert.False(t, seen[m.AccessUrl])
		seen[m.AccessUrl] = true
	}

	assert.Equal(t, "beach", res.Prompt)
	assert.Equal(t, 0.1, res.Threshold)

	// The search log row was written before inference ran.
	require.Len(t, repo.created, 1)
	assert.Equal(t, "beach", repo.created[0].Prompt)
	assert.Equal(t, userId, repo.created[0].UserId)
	assert.Equal(t, repo.created[0].Id, res.SearchId)
}

func TestSearchAppliesDefaults(t *testing.T) {
	predictor := &stubPredictor{resp: searchFixture()}
	svc := NewSearchService(&stubFactory{&stubUow{&stubSearchRepo{}}}, predictor, &stubSigner{}, nil, testLogger{})

	_, err := svc.Search(context.Background(), uuid.New(), dto.SearchRequest{Prompt: "beach"})
	require.NoError(t, err)

	require.NotNil(t, predictor.req)
	assert.Equal(t, DefaultSimilarityThreshold, predictor.req.SimilarityThreshold)
	assert.Equal(t, DefaultMatchCount, predictor.req.MatchCount)
}

func TestSearchFailsWhenLogWriteFails(t *testing.T) {
	repo := &stubSearchRepo{createErr: errors.New("db down")}
	predictor := &stubPredictor{resp: searchFixture()}
	svc := NewSearchService(&stubFactory{&stubUow{repo}}, predictor, &stubSigner{}, nil, testLogger{})

	_, err := svc.Search(context.Background(), uuid.New(), dto.SearchRequest{Prompt: "beach"})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)
	assert.Equal(t, "Search failed", appErr.Message)

	// Inference must not run for an unlogged search.
	assert.Nil(t, predictor.req)
}

func TestSearchFailsWhenAnyMatchUnsignable(t *testing.T) {
	predictor := &stubPredictor{resp: searchFixture()}
	signer := &stubSigner{failOn: "https://s3.wasabisys.com/clips/b.mp4"}
	svc := NewSearchService(&stubFactory{&stubUow{&stubSearchRepo{}}}, predictor, signer, nil, testLogger{})

	_, err := svc.Search(context.Background(), uuid.New(), dto.SearchRequest{Prompt: "beach"})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)
}

func TestSearchFailsWhenInferenceFails(t *testing.T) {
	predictor := &stubPredictor{err: errors.New("model offline")}
	svc := NewSearchService(&stubFactory{&stubUow{&stubSearchRepo{}}}, predictor, &stubSigner{}, nil, testLogger{})

	_, err := svc.Search(context.Background(), uuid.New(), dto.SearchRequest{Prompt: "beach"})
	require.Error(t, err)
}

func TestSearchInstallsMatchesIntoLiveSession(t *testing.T) {
	sessions := memory.NewPlaybackRepository()
	session := playback.NewSession(uuid.New(), uuid.New(), nil, nil, nil, testLogger{})
	sessions.Put(session)

	predictor := &stubPredictor{resp: searchFixture()}
	svc := NewSearchService(&stubFactory{&stubUow{&stubSearchRepo{}}}, predictor, &stubSigner{}, sessions, testLogger{})

	_, err := svc.Search(context.Background(), uuid.New(), dto.SearchRequest{
		Prompt:    "beach",
		SessionId: session.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, session.State().MatchCount)
	matches := session.Matches()
	require.Len(t, matches, 3)
	assert.Equal(t, "signed://https://s3.wasabisys.com/clips/a.mp4", matches[0].AccessURL)
}

func TestSearchWithoutSessionStillSucceeds(t *testing.T) {
	sessions := memory.NewPlaybackRepository()
	predictor := &stubPredictor{resp: searchFixture()}
	svc := NewSearchService(&stubFactory{&stubUow{&stubSearchRepo{}}}, predictor, &stubSigner{}, sessions, testLogger{})

	res, err := svc.Search(context.Background(), uuid.New(), dto.SearchRequest{
		Prompt:    "beach",
		SessionId: uuid.New(), // never registered
	})
	require.NoError(t, err)
	assert.Len(t, res.Matches, 3)
}
