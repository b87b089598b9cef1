package playback

import (
	"errors"
	"time"

	"video-search-be/pkg/events"

	"github.com/google/uuid"
)

const (
	// DefaultIntervalSeconds matches the initial value of the interval input.
	DefaultIntervalSeconds = 5

	// IntervalLogDebounce is the quiescence window before a burst of interval
	// edits is persisted as a single record.
	IntervalLogDebounce = 2000 * time.Millisecond
)

// ErrNoCurrentVideo rejects a toggle when no result set is loaded, since the
// start/stop events must be tagged with a valid video id.
var ErrNoCurrentVideo = errors.New("auto-advance toggle requires a current video")

// AutoAdvance owns the toggle state, the live interval value and the
// debounced interval logging. The tick timer itself lives on the Session,
// which knows when result sets and slot sets change. Not safe for concurrent
// use; the owning Session serializes access.
type AutoAdvance struct {
	enabled   bool
	seconds   int
	startedAt time.Time
	debounce  *Debouncer

	now func() time.Time
}

func NewAutoAdvance() *AutoAdvance {
	return &AutoAdvance{
		seconds:  DefaultIntervalSeconds,
		debounce: NewDebouncer(),
		now:      time.Now,
	}
}

func (a *AutoAdvance) Enabled() bool {
	return a.enabled
}

func (a *AutoAdvance) IntervalSeconds() int {
	return a.seconds
}

func (a *AutoAdvance) Interval() time.Duration {
	return time.Duration(a.seconds) * time.Second
}

// Toggle flips the enabled state and returns the interaction event to emit.
// Only the center slot's current video identifies the span in analytics even
// though every active slot advances. Enabling records the wall-clock start;
// disabling reports elapsed whole seconds. A toggle to the current state
// returns no event.
func (a *AutoAdvance) Toggle(on bool, sessionID uuid.UUID, currentVideoID string) (events.Event, error) {
	if currentVideoID == "" {
		return nil, ErrNoCurrentVideo
	}
	if on == a.enabled {
		return nil, nil
	}
	if on {
		a.enabled = true
		a.startedAt = a.now()
		return events.NewInteraction(sessionID, currentVideoID, events.TypeAutoAdvanceStart, nil), nil
	}
	a.enabled = false
	elapsed := int(a.now().Sub(a.startedAt).Seconds())
	return events.NewInteraction(sessionID, currentVideoID, events.TypeAutoAdvanceStop, &elapsed), nil
}

// SetInterval updates the live interval immediately and schedules settled to
// run with the final value once edits have been quiet for the debounce
// window. A new edit inside the window replaces the pending callback, so a
// burst persists exactly one record.
func (a *AutoAdvance) SetInterval(seconds int, settled func(int)) {
	if seconds < 1 {
		seconds = 1
	}
	a.seconds = seconds
	a.debounce.Schedule(IntervalLogDebounce, func() {
		settled(seconds)
	})
}

// Stop cancels any pending interval log. Used on session end.
func (a *AutoAdvance) Stop() {
	a.debounce.Stop()
}
