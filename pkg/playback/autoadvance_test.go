package playback

import (
	"sync/atomic"
	"testing"
	"time"

	"video-search-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleRequiresCurrentVideo(t *testing.T) {
	a := NewAutoAdvance()

	_, err := a.Toggle(true, uuid.New(), "")
	assert.ErrorIs(t, err, ErrNoCurrentVideo)
	assert.False(t, a.Enabled())
}

func TestToggleStartEvent(t *testing.T) {
	a := NewAutoAdvance()
	sessionID := uuid.New()

	evt, err := a.Toggle(true, sessionID, "vid-1")
	require.NoError(t, err)
	require.NotNil(t, evt)

	assert.True(t, a.Enabled())
	assert.Equal(t, events.TypeAutoAdvanceStart, evt.EventType())
	assert.Equal(t, "vid-1", evt.Payload()["video_id"])
	assert.Equal(t, sessionID.String(), evt.Payload()["session_id"])
	_, hasDuration := evt.Payload()["auto_advance_duration"]
	assert.False(t, hasDuration)
}

func TestToggleSameStateIsNoOp(t *testing.T) {
	a := NewAutoAdvance()

	evt, err := a.Toggle(false, uuid.New(), "vid-1")
	require.NoError(t, err)
	assert.Nil(t, evt)

	_, err = a.Toggle(true, uuid.New(), "vid-1")
	require.NoError(t, err)

	evt, err = a.Toggle(true, uuid.New(), "vid-1")
	require.NoError(t, err)
	assert.Nil(t, evt)
}

func TestToggleStopReportsWholeSeconds(t *testing.T) {
	a := NewAutoAdvance()

	base := time.Now()
	a.now = func() time.Time { return base }

	_, err := a.Toggle(true, uuid.New(), "vid-1")
	require.NoError(t, err)

	// 7.9s elapsed must report 7, not 8.
	a.now = func() time.Time { return base.Add(7900 * time.Millisecond) }
	evt, err := a.Toggle(false, uuid.New(), "vid-2")
	require.NoError(t, err)
	require.NotNil(t, evt)

	assert.Equal(t, events.TypeAutoAdvanceStop, evt.EventType())
	assert.Equal(t, "vid-2", evt.Payload()["video_id"])
	assert.Equal(t, 7, evt.Payload()["auto_advance_duration"])
	assert.False(t, a.Enabled())
}

func TestSetIntervalAppliesImmediately(t *testing.T) {
	a := NewAutoAdvance()
	assert.Equal(t, DefaultIntervalSeconds, a.IntervalSeconds())

	a.SetInterval(8, func(int) {})
	assert.Equal(t, 8, a.IntervalSeconds())
	assert.Equal(t, 8*time.Second, a.Interval())

	// Values below one second clamp instead of disabling the timer.
	a.SetInterval(0, func(int) {})
	assert.Equal(t, 1, a.IntervalSeconds())
	a.Stop()
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	d := NewDebouncer()

	var fired atomic.Int32
	var last atomic.Int32
	schedule := func(v int32) {
		d.Schedule(30*time.Millisecond, func() {
			fired.Add(1)
			last.Store(v)
		})
	}

	schedule(5)
	schedule(6)
	schedule(7)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
	assert.Equal(t, int32(7), last.Load())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer()

	var fired atomic.Int32
	d.Schedule(30*time.Millisecond, func() { fired.Add(1) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}
