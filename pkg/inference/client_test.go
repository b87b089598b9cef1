package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Api-Key test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sunset over water", req.Prompt)
		assert.Equal(t, 0.1, req.SimilarityThreshold)
		assert.Equal(t, 20, req.MatchCount)

		json.NewEncoder(w).Encode(Response{
			Matches: []Match{
				{ID: "clip-1", Title: "Sunset", StorageURL: "https://s3.wasabisys.com/clips/sunset.mp4", Similarity: 0.92},
				{ID: "clip-2", Title: "Waves", StorageURL: "https://s3.wasabisys.com/clips/waves.mp4", Similarity: 0.81},
			},
			Prompt:    "sunset over water",
			Threshold: 0.1,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	resp, err := client.Predict(context.Background(), Request{
		Prompt:              "sunset over water",
		SimilarityThreshold: 0.1,
		MatchCount:          20,
	})
	require.NoError(t, err)

	require.Len(t, resp.Matches, 2)
	assert.Equal(t, "clip-1", resp.Matches[0].ID)
	assert.Equal(t, "https://s3.wasabisys.com/clips/waves.mp4", resp.Matches[1].StorageURL)
	assert.Equal(t, 0.1, resp.Threshold)
}

func TestPredictOmitsAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(Response{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.Predict(context.Background(), Request{Prompt: "x"})
	assert.NoError(t, err)
}

func TestPredictNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	_, err := client.Predict(context.Background(), Request{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestPredictMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	_, err := client.Predict(context.Background(), Request{Prompt: "x"})
	assert.Error(t, err)
}
