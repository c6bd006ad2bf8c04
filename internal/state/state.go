// Package state publishes read-only snapshots of the UI state to readers
// outside the control loop, such as the HTTP API.
package state

import (
	"sync"

	"github.com/rook-computer/lcdui/internal/ui"
)

// Snapshot is a copy of the UI state taken after a tick.
type Snapshot struct {
	CurrentFrame   int    `json:"currentFrame"`
	FrameCount     int    `json:"frameCount"`
	FrameState     string `json:"frameState"`
	Ticks          int    `json:"ticks"`
	Direction      int    `json:"direction"`
	Manual         bool   `json:"manual"`
	Target         int    `json:"target"`
	IndicatorDrawn bool   `json:"indicatorDrawn"`
	Loading        bool   `json:"loading"`
	Updates        uint64 `json:"updates"`
}

type Store struct {
	mu    sync.RWMutex
	state Snapshot
}

func NewStore() *Store {
	return &Store{state: Snapshot{FrameState: "fixed", Direction: 1, Target: -1, IndicatorDrawn: true}}
}

func (store *Store) Snapshot() Snapshot {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

// Publish replaces the snapshot and bumps the update counter.
func (store *Store) Publish(snap Snapshot) {
	store.mu.Lock()
	snap.Updates = store.state.Updates + 1
	snap.Loading = store.state.Loading
	store.state = snap
	store.mu.Unlock()
}

func (store *Store) SetLoading(loading bool) {
	store.mu.Lock()
	store.state.Loading = loading
	store.mu.Unlock()
}

// Capture copies the published fields out of u. It must be called from the
// goroutine that drives u.
func Capture(u *ui.UI) Snapshot {
	st := u.State()
	snap := Snapshot{
		CurrentFrame:   st.CurrentFrame(),
		FrameCount:     u.FrameCount(),
		FrameState:     st.FrameState().String(),
		Ticks:          st.TicksSinceStateSwitch(),
		Direction:      st.TransitionDirection(),
		Manual:         st.ManualControl(),
		Target:         -1,
		IndicatorDrawn: st.IndicatorDrawn(),
	}
	if t, ok := st.Transition(); ok {
		snap.Target = t.Target
	}
	return snap
}
