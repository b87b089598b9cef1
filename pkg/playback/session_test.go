package playback

import (
	"sync"
	"testing"

	"video-search-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEmitter struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingEmitter) Emit(evt events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *recordingEmitter) all() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Event, len(r.events))
	copy(out, r.events)
	return out
}

func testMatches(n int) []Match {
	matches := make([]Match, n)
	for i := range matches {
		matches[i] = Match{ID: string(rune('a' + i)), Title: "clip", AccessURL: "https://signed/clip", Similarity: 0.9}
	}
	return matches
}

func newTestSession(emitter Emitter) *Session {
	return NewSession(uuid.New(), uuid.New(), nil, nil, emitter, nopLogger{})
}

func TestSessionNextTagsPreTransitionVideo(t *testing.T) {
	rec := &recordingEmitter{}
	s := newTestSession(rec)
	s.SetMatches(testMatches(3))

	require.NoError(t, s.Next(Center))
	require.NoError(t, s.Next(Center))

	evts := rec.all()
	require.Len(t, evts, 2)
	assert.Equal(t, events.TypeNext, evts[0].EventType())
	assert.Equal(t, "a", evts[0].Payload()["video_id"])
	assert.Equal(t, "b", evts[1].Payload()["video_id"])
}

func TestSessionPreviousWrapsAndTags(t *testing.T) {
	rec := &recordingEmitter{}
	s := newTestSession(rec)
	s.SetMatches(testMatches(3))

	require.NoError(t, s.Previous(Center))

	evts := rec.all()
	require.Len(t, evts, 1)
	assert.Equal(t, events.TypePrev, evts[0].EventType())
	assert.Equal(t, "a", evts[0].Payload()["video_id"])
	assert.Equal(t, 2, s.State().Slots[Center].VideoIndex)
}

func TestSessionNavigationWithoutResultsIsSilent(t *testing.T) {
	rec := &recordingEmitter{}
	s := newTestSession(rec)

	require.NoError(t, s.Next(Center))
	require.NoError(t, s.Previous(Center))
	assert.Empty(t, rec.all())
}

func TestSessionInvalidSlotRejected(t *testing.T) {
	s := newTestSession(&recordingEmitter{})
	s.SetMatches(testMatches(3))

	assert.ErrorIs(t, s.Next(Position(9)), ErrInvalidSlot)
	assert.ErrorIs(t, s.RemoveSlot(Center), ErrCenterSlotFixed)
}

func TestSessionSetMatchesResetsIndices(t *testing.T) {
	rec := &recordingEmitter{}
	s := newTestSession(rec)
	s.SetMatches(testMatches(5))
	require.NoError(t, s.AddSlot(Left))
	require.NoError(t, s.Next(Left))
	require.NoError(t, s.Next(Center))

	s.SetMatches(testMatches(2))

	state := s.State()
	for _, slot := range state.Slots {
		assert.Equal(t, 0, slot.VideoIndex)
	}
	assert.True(t, state.Slots[Left].Active)
	assert.Equal(t, 2, state.MatchCount)
}

func TestSessionAutoAdvanceToggleTagsCenterVideo(t *testing.T) {
	rec := &recordingEmitter{}
	s := newTestSession(rec)
	s.SetMatches(testMatches(3))

	// Move the center slot so the tagged video is not the first one.
	require.NoError(t, s.Next(Center))

	require.NoError(t, s.ToggleAutoAdvance(true))
	require.NoError(t, s.ToggleAutoAdvance(false))

	evts := rec.all()
	require.Len(t, evts, 3) // NEXT, START, STOP
	assert.Equal(t, events.TypeAutoAdvanceStart, evts[1].EventType())
	assert.Equal(t, "b", evts[1].Payload()["video_id"])
	assert.Equal(t, events.TypeAutoAdvanceStop, evts[2].EventType())
	assert.Contains(t, evts[2].Payload(), "auto_advance_duration")

	s.MarkEnded()
}

func TestSessionAutoAdvanceRequiresResults(t *testing.T) {
	s := newTestSession(&recordingEmitter{})
	assert.ErrorIs(t, s.ToggleAutoAdvance(true), ErrNoCurrentVideo)
}

func TestSessionBookmarkToggle(t *testing.T) {
	s := newTestSession(&recordingEmitter{})

	assert.True(t, s.ToggleBookmark("vid-1"))
	assert.True(t, s.ToggleBookmark("vid-2"))
	assert.False(t, s.ToggleBookmark("vid-1"))

	assert.Equal(t, []string{"vid-2"}, s.State().Bookmarks)
}

func TestSessionTickCallbackAdvancesActiveSlots(t *testing.T) {
	s := newTestSession(&recordingEmitter{})
	s.SetMatches(testMatches(3))
	require.NoError(t, s.AddSlot(Left))
	require.NoError(t, s.ToggleAutoAdvance(true))
	defer s.MarkEnded()

	s.mu.Lock()
	gen := s.tickGen
	s.mu.Unlock()

	s.advanceTick(gen)

	// Every active slot moved one position, the inactive one did not, and
	// the chain rearmed itself.
	state := s.State()
	assert.Equal(t, 1, state.Slots[Center].VideoIndex)
	assert.Equal(t, 1, state.Slots[Left].VideoIndex)
	assert.Equal(t, 0, state.Slots[Right].VideoIndex)

	s.mu.Lock()
	assert.NotNil(t, s.tick)
	s.mu.Unlock()
}

func TestSessionStaleTickCallbackIsDiscarded(t *testing.T) {
	s := newTestSession(&recordingEmitter{})
	s.SetMatches(testMatches(3))
	require.NoError(t, s.ToggleAutoAdvance(true))
	defer s.MarkEnded()

	// A timer callback can fire and block on the session mutex an instant
	// before a command rearms the timer; Stop cannot cancel it anymore.
	// Capture that callback's generation, then rearm the way any command
	// does.
	s.mu.Lock()
	stale := s.tickGen
	s.mu.Unlock()

	require.NoError(t, s.AddSlot(Left))

	s.mu.Lock()
	armed := s.tick
	s.mu.Unlock()

	// When the stale callback finally gets the lock it must neither advance
	// slots nor arm a second chain alongside the command's timer.
	s.advanceTick(stale)

	state := s.State()
	assert.Equal(t, 0, state.Slots[Center].VideoIndex)
	assert.Equal(t, 0, state.Slots[Left].VideoIndex)

	s.mu.Lock()
	assert.Same(t, armed, s.tick)
	current := s.tickGen
	s.mu.Unlock()

	// The live chain is unaffected and still drives advancement.
	s.advanceTick(current)
	assert.Equal(t, 1, s.State().Slots[Center].VideoIndex)
}

func TestSessionMarkEndedIsIdempotent(t *testing.T) {
	s := newTestSession(&recordingEmitter{})

	assert.True(t, s.MarkEnded())
	assert.False(t, s.MarkEnded())
	assert.False(t, s.MarkEnded())
	assert.True(t, s.Ended())
}

func TestSessionStateSnapshot(t *testing.T) {
	s := newTestSession(&recordingEmitter{})
	s.SetMatches(testMatches(4))
	require.NoError(t, s.AddSlot(Right))
	s.SetInterval(9)

	state := s.State()
	assert.Equal(t, 4, state.MatchCount)
	assert.True(t, state.Slots[Right].Active)
	assert.Equal(t, 9, state.IntervalSeconds)
	assert.False(t, state.AutoAdvance)
	assert.False(t, state.Ended)

	s.MarkEnded()
}
