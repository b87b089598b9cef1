package playback

import "errors"

// Position identifies one of the three fixed display slots.
type Position int

const (
	Left   Position = 0
	Center Position = 1
	Right  Position = 2

	slotCount = 3
)

var (
	ErrCenterSlotFixed = errors.New("center slot cannot be deactivated")
	ErrInvalidSlot     = errors.New("invalid slot position")
)

// Slot is one display position. VideoIndex is only meaningful while Active
// and while a result set exists; it is always read modulo the result count.
type Slot struct {
	Active     bool `json:"is_active"`
	VideoIndex int  `json:"video_index"`
}

// Navigator owns the three-slot layout and the slot→result-index mapping.
// It is not safe for concurrent use; the owning Session serializes access.
type Navigator struct {
	slots [slotCount]Slot
}

// NewNavigator returns the default layout: only the center slot active.
func NewNavigator() *Navigator {
	n := &Navigator{}
	n.slots[Center].Active = true
	return n
}

func (p Position) valid() bool {
	return p >= Left && p <= Right
}

// ParsePosition maps the API's slot names onto positions.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "left":
		return Left, nil
	case "center":
		return Center, nil
	case "right":
		return Right, nil
	default:
		return 0, ErrInvalidSlot
	}
}

// Slots returns a copy of the current layout.
func (n *Navigator) Slots() [slotCount]Slot {
	return n.slots
}

func (n *Navigator) IsActive(pos Position) bool {
	return pos.valid() && n.slots[pos].Active
}

// Activate turns a side slot on. Activating the center slot is a no-op since
// it is always active.
func (n *Navigator) Activate(pos Position) error {
	if !pos.valid() {
		return ErrInvalidSlot
	}
	n.slots[pos].Active = true
	return nil
}

// Deactivate turns a side slot off and resets its index so re-adding starts
// fresh. The center slot rejects this unconditionally.
func (n *Navigator) Deactivate(pos Position) error {
	if !pos.valid() {
		return ErrInvalidSlot
	}
	if pos == Center {
		return ErrCenterSlotFixed
	}
	n.slots[pos].Active = false
	n.slots[pos].VideoIndex = 0
	return nil
}

// Next moves a slot forward one result with wrap-around and returns the
// pre-transition index for event tagging. ok is false when the move was a
// no-op: empty result set, inactive slot, or invalid position.
func (n *Navigator) Next(pos Position, count int) (prev int, ok bool) {
	if !pos.valid() || count <= 0 || !n.slots[pos].Active {
		return 0, false
	}
	prev = n.slots[pos].VideoIndex % count
	n.slots[pos].VideoIndex = (prev + 1) % count
	return prev, true
}

// Previous moves a slot back one result with wrap-around, mirroring Next.
func (n *Navigator) Previous(pos Position, count int) (prev int, ok bool) {
	if !pos.valid() || count <= 0 || !n.slots[pos].Active {
		return 0, false
	}
	prev = n.slots[pos].VideoIndex % count
	n.slots[pos].VideoIndex = (prev - 1 + count) % count
	return prev, true
}

// ResetAll zeroes every slot's index for a fresh result set. Activity is
// preserved, except the center slot which is forced active.
func (n *Navigator) ResetAll() {
	for i := range n.slots {
		n.slots[i].VideoIndex = 0
	}
	n.slots[Center].Active = true
}

// AdvanceActive moves every active slot forward one result. This is the
// auto-advance tick path; it records no per-slot interaction events.
func (n *Navigator) AdvanceActive(count int) {
	if count <= 0 {
		return
	}
	for i := range n.slots {
		if n.slots[i].Active {
			n.slots[i].VideoIndex = (n.slots[i].VideoIndex%count + 1) % count
		}
	}
}
