package playback

import (
	"context"
	"sort"
	"sync"
	"time"

	"video-search-be/internal/pkg/logger"
	"video-search-be/pkg/events"

	"github.com/google/uuid"
)

// Match is a single ranked result as the playback layer sees it: immutable,
// already enriched with its signed access URL by the search gateway.
type Match struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	AccessURL  string  `json:"access_url"`
	Similarity float64 `json:"similarity"`
}

// Emitter delivers analytics events. Implementations must not block: state
// transitions apply synchronously and optimistically, event delivery is
// best-effort afterwards and its completion order is not guaranteed.
type Emitter interface {
	Emit(evt events.Event)
}

// State is a read snapshot of a session for the API layer.
type State struct {
	Slots           [3]Slot  `json:"slots"`
	MatchCount      int      `json:"match_count"`
	AutoAdvance     bool     `json:"auto_advance"`
	IntervalSeconds int      `json:"interval_seconds"`
	Fullscreen      bool     `json:"fullscreen"`
	Bookmarks       []string `json:"bookmarks"`
	Ended           bool     `json:"ended"`
}

// Session is the explicit state object for one page visit: the slot layout,
// the loaded result set, auto-advance, fullscreen tracking and bookmarks.
// Commands are serialized by a mutex, the analogue of the original single
// event loop; nothing inside a command waits on an analytics write.
type Session struct {
	ID     uuid.UUID
	UserID uuid.UUID

	mu         sync.Mutex
	nav        *Navigator
	advance    *AutoAdvance
	fullscreen *FullscreenTracker
	matches    []Match
	bookmarks  map[string]struct{}
	ended      bool
	tick       *time.Timer
	tickGen    uint64

	emitter Emitter
	logger  logger.ILogger
}

func NewSession(id, userID uuid.UUID, display *Display, store CompilationStore, emitter Emitter, log logger.ILogger) *Session {
	return &Session{
		ID:         id,
		UserID:     userID,
		nav:        NewNavigator(),
		advance:    NewAutoAdvance(),
		fullscreen: NewFullscreenTracker(id, display, store, log),
		bookmarks:  make(map[string]struct{}),
		emitter:    emitter,
		logger:     log,
	}
}

// State returns a consistent snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks := make([]string, 0, len(s.bookmarks))
	for id := range s.bookmarks {
		bookmarks = append(bookmarks, id)
	}
	sort.Strings(bookmarks)

	return State{
		Slots:           s.nav.Slots(),
		MatchCount:      len(s.matches),
		AutoAdvance:     s.advance.Enabled(),
		IntervalSeconds: s.advance.IntervalSeconds(),
		Fullscreen:      s.fullscreen.Active(),
		Bookmarks:       bookmarks,
		Ended:           s.ended,
	}
}

// Matches returns the loaded result set.
func (s *Session) Matches() []Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Match, len(s.matches))
	copy(out, s.matches)
	return out
}

// SetMatches installs a fresh result set (a new search submission): every
// slot index resets to 0 while slot activity is preserved.
func (s *Session) SetMatches(matches []Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = matches
	s.nav.ResetAll()
	s.rearmTick()
}

func (s *Session) AddSlot(pos Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.nav.Activate(pos); err != nil {
		return err
	}
	s.rearmTick()
	return nil
}

func (s *Session) RemoveSlot(pos Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.nav.Deactivate(pos); err != nil {
		return err
	}
	s.rearmTick()
	return nil
}

// Next advances one slot and emits NEXT tagged with the pre-transition
// video. With no results loaded this is a silent no-op.
func (s *Session) Next(pos Position) error {
	if !pos.valid() {
		return ErrInvalidSlot
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.nav.Next(pos, len(s.matches))
	if !ok {
		return nil
	}
	s.emit(events.NewInteraction(s.ID, s.matches[prev].ID, events.TypeNext, nil))
	return nil
}

// Previous mirrors Next with PREV.
func (s *Session) Previous(pos Position) error {
	if !pos.valid() {
		return ErrInvalidSlot
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.nav.Previous(pos, len(s.matches))
	if !ok {
		return nil
	}
	s.emit(events.NewInteraction(s.ID, s.matches[prev].ID, events.TypePrev, nil))
	return nil
}

// ToggleAutoAdvance starts or stops periodic advancement. The toggle events
// carry the center slot's current video id.
func (s *Session) ToggleAutoAdvance(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	evt, err := s.advance.Toggle(on, s.ID, s.centerVideoID())
	if err != nil {
		return err
	}
	if evt != nil {
		s.emit(evt)
	}
	s.rearmTick()
	return nil
}

// SetInterval applies the new cadence immediately; the analytics record is
// written only once the burst of edits settles.
func (s *Session) SetInterval(seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance.SetInterval(seconds, func(settled int) {
		s.emit(events.NewIntervalSet(s.ID, settled))
	})
	s.rearmTick()
}

func (s *Session) EnterFullscreen(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fullscreen.Enter(ctx)
}

func (s *Session) ExitFullscreen(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fullscreen.Exit(ctx)
}

// SyncFullscreen applies an external fullscreen-change notification.
func (s *Session) SyncFullscreen(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fullscreen.SyncState(active)
}

// ToggleBookmark flips a bookmark and reports the new state.
func (s *Session) ToggleBookmark(videoID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookmarks[videoID]; ok {
		delete(s.bookmarks, videoID)
		return false
	}
	s.bookmarks[videoID] = struct{}{}
	return true
}

// MarkEnded flags the visit as over and stops all timers. It reports whether
// this call was the first: unload, visibility loss and teardown all route
// here, and only the first observed signal may trigger the close write.
func (s *Session) MarkEnded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return false
	}
	s.ended = true
	s.advance.Stop()
	if s.tick != nil {
		s.tick.Stop()
		s.tick = nil
	}
	return true
}

func (s *Session) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

// centerVideoID resolves the center slot's current video. Caller holds mu.
func (s *Session) centerVideoID() string {
	if len(s.matches) == 0 {
		return ""
	}
	idx := s.nav.Slots()[Center].VideoIndex % len(s.matches)
	return s.matches[idx].ID
}

// rearmTick cancels and recreates the single-shot advance timer. Called
// under mu whenever its dependencies change (enabled flag, interval, slot
// set, result set), so a stale timer can never fire against an outdated
// result set. Stop alone is not enough: a callback that fired just before
// the rearm may already be blocked on mu, so each chain carries a
// generation and stale callbacks are discarded. Caller holds mu.
func (s *Session) rearmTick() {
	s.tickGen++
	if s.tick != nil {
		s.tick.Stop()
		s.tick = nil
	}
	if s.ended || !s.advance.Enabled() || len(s.matches) == 0 {
		return
	}
	gen := s.tickGen
	s.tick = time.AfterFunc(s.advance.Interval(), func() { s.advanceTick(gen) })
}

// advanceTick moves every active slot one position and rearms its own
// chain. A callback whose generation no longer matches lost a race with a
// rearm and must neither advance nor rearm, otherwise two chains would run
// concurrently. This path deliberately emits no NEXT events; only the
// toggle start/stop spans represent auto-advance in analytics.
func (s *Session) advanceTick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.tickGen {
		return
	}
	if s.ended || !s.advance.Enabled() || len(s.matches) == 0 {
		s.tick = nil
		return
	}
	s.nav.AdvanceActive(len(s.matches))
	s.tick = time.AfterFunc(s.advance.Interval(), func() { s.advanceTick(gen) })
}

// emit hands an event to the emitter. Caller holds mu; emitters are
// non-blocking so this never stalls a command.
func (s *Session) emit(evt events.Event) {
	if s.emitter == nil {
		return
	}
	s.emitter.Emit(evt)
}
