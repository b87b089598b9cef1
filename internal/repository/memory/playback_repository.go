package memory

import (
	"time"

	"video-search-be/pkg/playback"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	// Sessions idle this long are considered abandoned and reclaimed.
	defaultSessionTTL = 6 * time.Hour
	cleanupInterval   = 10 * time.Minute
)

// PlaybackRepository holds live playback sessions keyed by page session id.
// Eviction stops a session's timers so abandoned sessions do not keep
// auto advance goroutines alive.
type PlaybackRepository struct {
	cache *gocache.Cache
}

func NewPlaybackRepository() *PlaybackRepository {
	c := gocache.New(defaultSessionTTL, cleanupInterval)
	c.OnEvicted(func(_ string, v interface{}) {
		if s, ok := v.(*playback.Session); ok {
			s.MarkEnded()
		}
	})
	return &PlaybackRepository{cache: c}
}

func (r *PlaybackRepository) Put(session *playback.Session) {
	r.cache.Set(session.ID.String(), session, gocache.DefaultExpiration)
}

func (r *PlaybackRepository) Get(id uuid.UUID) (*playback.Session, bool) {
	v, ok := r.cache.Get(id.String())
	if !ok {
		return nil, false
	}
	s, ok := v.(*playback.Session)
	return s, ok
}

// Touch extends the TTL of a session that is still being driven.
func (r *PlaybackRepository) Touch(id uuid.UUID) {
	if v, ok := r.cache.Get(id.String()); ok {
		r.cache.Set(id.String(), v, gocache.DefaultExpiration)
	}
}

func (r *PlaybackRepository) Delete(id uuid.UUID) {
	r.cache.Delete(id.String())
}
