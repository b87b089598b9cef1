package service

import (
	"context"
	"encoding/json"

	"video-search-be/internal/dto"
	"video-search-be/internal/entity"
	"video-search-be/internal/pkg/logger"
	"video-search-be/internal/pkg/serverutils"
	"video-search-be/internal/repository/memory"
	"video-search-be/internal/repository/unitofwork"
	"video-search-be/pkg/inference"
	"video-search-be/pkg/playback"
	"video-search-be/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Defaults applied when the request omits tuning parameters.
const (
	DefaultSimilarityThreshold = 0.1
	DefaultMatchCount          = 20
)

// InferencePredictor abstracts the hosted model endpoint.
type InferencePredictor interface {
	Predict(ctx context.Context, req inference.Request) (*inference.Response, error)
}

type ISearchService interface {
	Search(ctx context.Context, userId uuid.UUID, req dto.SearchRequest) (*dto.SearchResponse, error)
}

// searchService orchestrates one search submission: log the search, query
// the model, presign every match, then hand the result set to the live
// playback session. The search log write is synchronous and failing it fails
// the request; a search that was never recorded must not return results.
type searchService struct {
	uowFactory unitofwork.RepositoryFactory
	predictor  InferencePredictor
	signer     storage.URLSigner
	sessions   *memory.PlaybackRepository
	log        logger.ILogger
}

func NewSearchService(
	uowFactory unitofwork.RepositoryFactory,
	predictor InferencePredictor,
	signer storage.URLSigner,
	sessions *memory.PlaybackRepository,
	log logger.ILogger,
) ISearchService {
	return &searchService{
		uowFactory: uowFactory,
		predictor:  predictor,
		signer:     signer,
		sessions:   sessions,
		log:        log,
	}
}

func (s *searchService) Search(ctx context.Context, userId uuid.UUID, req dto.SearchRequest) (*dto.SearchResponse, error) {
	if req.SimilarityThreshold == 0 {
		req.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if req.MatchCount == 0 {
		req.MatchCount = DefaultMatchCount
	}

	searchId, err := s.logSearch(ctx, userId, req)
	if err != nil {
		s.log.Error("SearchService", "failed to log search", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return nil, serverutils.NewAppError(fiber.StatusInternalServerError, "Search failed", err)
	}

	result, err := s.predictor.Predict(ctx, inference.Request{
		Prompt:              req.Prompt,
		SimilarityThreshold: req.SimilarityThreshold,
		MatchCount:          req.MatchCount,
	})
	if err != nil {
		s.log.Error("SearchService", "inference call failed", map[string]interface{}{
			"search_id": searchId,
			"error":     err.Error(),
		})
		return nil, serverutils.NewAppError(fiber.StatusInternalServerError, "Search failed", err)
	}

	// All or nothing: one unsignable locator fails the whole search rather
	// than returning a result set with holes.
	matches := make([]dto.SearchMatch, len(result.Matches))
	for i, m := range result.Matches {
		signed, err := s.signer.SignedURL(ctx, m.StorageURL)
		if err != nil {
			s.log.Error("SearchService", "failed to presign match", map[string]interface{}{
				"search_id": searchId,
				"video_id":  m.ID,
				"error":     err.Error(),
			})
			return nil, serverutils.NewAppError(fiber.StatusInternalServerError, "Search failed", err)
		}
		matches[i] = dto.SearchMatch{
			Id:         m.ID,
			Title:      m.Title,
			AccessUrl:  signed,
			Similarity: m.Similarity,
		}
	}

	s.installMatches(req.SessionId, matches)

	return &dto.SearchResponse{
		Matches:   matches,
		Prompt:    result.Prompt,
		Threshold: result.Threshold,
		SearchId:  searchId,
	}, nil
}

func (s *searchService) logSearch(ctx context.Context, userId uuid.UUID, req dto.SearchRequest) (uuid.UUID, error) {
	params, err := json.Marshal(map[string]interface{}{
		"similarity_threshold": req.SimilarityThreshold,
		"match_count":          req.MatchCount,
	})
	if err != nil {
		return uuid.Nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	search := entity.Search{
		Id:        uuid.New(),
		SessionId: req.SessionId,
		UserId:    userId,
		Prompt:    req.Prompt,
		Params:    params,
	}
	if err := uow.SearchRepository().Create(ctx, &search); err != nil {
		return uuid.Nil, err
	}
	return search.Id, nil
}

// installMatches loads the results into the live session, if one exists.
// Searches from clients that never opened a session still succeed.
func (s *searchService) installMatches(sessionId uuid.UUID, matches []dto.SearchMatch) {
	if sessionId == uuid.Nil || s.sessions == nil {
		return
	}
	session, ok := s.sessions.Get(sessionId)
	if !ok {
		return
	}
	loaded := make([]playback.Match, len(matches))
	for i, m := range matches {
		loaded[i] = playback.Match{
			ID:         m.Id,
			Title:      m.Title,
			AccessURL:  m.AccessUrl,
			Similarity: m.Similarity,
		}
	}
	session.SetMatches(loaded)
}
