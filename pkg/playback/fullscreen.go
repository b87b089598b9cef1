package playback

import (
	"context"
	"time"

	"video-search-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// DisplayRequest asks the platform to change its fullscreen state. The
// platform is an external collaborator; a request may fail or be ignored,
// and the authoritative state arrives via change notifications (SyncState).
type DisplayRequest func(ctx context.Context) error

// Display is the capability probe over the concrete fullscreen APIs: the
// first available enter request wins (primary, then vendor-prefixed
// fallbacks). A Display with no capability treats requests as no-ops.
type Display struct {
	enter DisplayRequest
	exit  DisplayRequest
}

func NewDisplay(exit DisplayRequest, enterCandidates ...DisplayRequest) *Display {
	d := &Display{exit: exit}
	for _, candidate := range enterCandidates {
		if candidate != nil {
			d.enter = candidate
			break
		}
	}
	return d
}

func (d *Display) Enter(ctx context.Context) error {
	if d == nil || d.enter == nil {
		return nil
	}
	return d.enter(ctx)
}

func (d *Display) Exit(ctx context.Context) error {
	if d == nil || d.exit == nil {
		return nil
	}
	return d.exit(ctx)
}

// CompilationStore persists compilation-mode session spans. Open must return
// the generated row id; it is the sole handle used to close the span.
type CompilationStore interface {
	Open(ctx context.Context, sessionID uuid.UUID, enteredAt time.Time) (uuid.UUID, error)
	Close(ctx context.Context, id uuid.UUID, exitedAt time.Time) error
}

// FullscreenTracker toggles compilation mode and logs its spans. At most one
// span is open per tracker; if the open write fails the close step is simply
// skipped (at-most-once, no reconciliation). Not safe for concurrent use;
// the owning Session serializes access.
type FullscreenTracker struct {
	sessionID uuid.UUID
	display   *Display
	store     CompilationStore
	logger    logger.ILogger

	active        bool
	compilationID uuid.UUID

	now func() time.Time
}

func NewFullscreenTracker(sessionID uuid.UUID, display *Display, store CompilationStore, log logger.ILogger) *FullscreenTracker {
	return &FullscreenTracker{
		sessionID: sessionID,
		display:   display,
		store:     store,
		logger:    log,
		now:       time.Now,
	}
}

func (t *FullscreenTracker) Active() bool {
	return t.active
}

// Enter issues the display request and opens a compilation span, retaining
// its id. Persistence failures are logged and swallowed; the span is then
// never closed.
func (t *FullscreenTracker) Enter(ctx context.Context) error {
	if t.active {
		return nil
	}
	if err := t.display.Enter(ctx); err != nil {
		return err
	}
	t.active = true

	if t.store != nil && t.compilationID == uuid.Nil {
		id, err := t.store.Open(ctx, t.sessionID, t.now())
		if err != nil {
			t.logger.Error("FullscreenTracker", "Failed to open compilation session", map[string]interface{}{
				"session_id": t.sessionID,
				"error":      err.Error(),
			})
			return nil
		}
		t.compilationID = id
	}
	return nil
}

// Exit issues the exit request and closes the retained span, if one was
// successfully opened.
func (t *FullscreenTracker) Exit(ctx context.Context) error {
	if !t.active {
		return nil
	}
	if err := t.display.Exit(ctx); err != nil {
		return err
	}
	t.active = false

	if t.store != nil && t.compilationID != uuid.Nil {
		if err := t.store.Close(ctx, t.compilationID, t.now()); err != nil {
			t.logger.Error("FullscreenTracker", "Failed to close compilation session", map[string]interface{}{
				"session_id":     t.sessionID,
				"compilation_id": t.compilationID,
				"error":          err.Error(),
			})
		}
		t.compilationID = uuid.Nil
	}
	return nil
}

// SyncState applies an external fullscreen-change notification. The platform
// owns the real state; the tracker only mirrors it.
func (t *FullscreenTracker) SyncState(active bool) {
	t.active = active
}
