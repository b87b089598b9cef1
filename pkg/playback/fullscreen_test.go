package playback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeStore struct {
	openErr  error
	closeErr error

	opened []uuid.UUID
	closed []uuid.UUID
	nextID uuid.UUID
}

func (f *fakeStore) Open(_ context.Context, sessionID uuid.UUID, _ time.Time) (uuid.UUID, error) {
	if f.openErr != nil {
		return uuid.Nil, f.openErr
	}
	if f.nextID == uuid.Nil {
		f.nextID = uuid.New()
	}
	f.opened = append(f.opened, sessionID)
	return f.nextID, nil
}

func (f *fakeStore) Close(_ context.Context, id uuid.UUID, _ time.Time) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	f.closed = append(f.closed, id)
	return nil
}

func TestDisplayPicksFirstAvailableEnter(t *testing.T) {
	var called string
	primary := func(context.Context) error { called = "primary"; return nil }
	fallback := func(context.Context) error { called = "fallback"; return nil }

	d := NewDisplay(nil, nil, primary, fallback)
	require.NoError(t, d.Enter(context.Background()))
	assert.Equal(t, "primary", called)
}

func TestDisplayWithoutCapabilityIsNoOp(t *testing.T) {
	d := NewDisplay(nil)
	assert.NoError(t, d.Enter(context.Background()))
	assert.NoError(t, d.Exit(context.Background()))

	var nilDisplay *Display
	assert.NoError(t, nilDisplay.Enter(context.Background()))
}

func TestFullscreenSpanRoundTrip(t *testing.T) {
	store := &fakeStore{nextID: uuid.New()}
	sessionID := uuid.New()
	tr := NewFullscreenTracker(sessionID, NewDisplay(nil), store, nopLogger{})

	require.NoError(t, tr.Enter(context.Background()))
	assert.True(t, tr.Active())
	require.Len(t, store.opened, 1)
	assert.Equal(t, sessionID, store.opened[0])

	// Re-entering while active does not open a second span.
	require.NoError(t, tr.Enter(context.Background()))
	assert.Len(t, store.opened, 1)

	require.NoError(t, tr.Exit(context.Background()))
	assert.False(t, tr.Active())
	require.Len(t, store.closed, 1)
	assert.Equal(t, store.nextID, store.closed[0])

	// Exiting while inactive is a no-op.
	require.NoError(t, tr.Exit(context.Background()))
	assert.Len(t, store.closed, 1)
}

func TestFullscreenOpenFailureSkipsClose(t *testing.T) {
	store := &fakeStore{openErr: errors.New("db down")}
	tr := NewFullscreenTracker(uuid.New(), NewDisplay(nil), store, nopLogger{})

	// The display transition still succeeds; the span is just never logged.
	require.NoError(t, tr.Enter(context.Background()))
	assert.True(t, tr.Active())

	require.NoError(t, tr.Exit(context.Background()))
	assert.Empty(t, store.closed)
}

func TestFullscreenEnterFailureLeavesStateUnchanged(t *testing.T) {
	displayErr := errors.New("denied")
	d := NewDisplay(nil, func(context.Context) error { return displayErr })
	store := &fakeStore{}
	tr := NewFullscreenTracker(uuid.New(), d, store, nopLogger{})

	assert.ErrorIs(t, tr.Enter(context.Background()), displayErr)
	assert.False(t, tr.Active())
	assert.Empty(t, store.opened)
}

func TestSyncStateMirrorsPlatform(t *testing.T) {
	tr := NewFullscreenTracker(uuid.New(), NewDisplay(nil), nil, nopLogger{})

	tr.SyncState(true)
	assert.True(t, tr.Active())
	tr.SyncState(false)
	assert.False(t, tr.Active())
}
