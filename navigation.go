package deskview

import (
	"fmt"
	"time"
)

// NavEvent is an input to the viewpoint state machine.
type NavEvent int

const (
	// NavStart is the "start" action after the boot screen.
	NavStart NavEvent = iota
	// NavFocus is a click (or hover enter) on the screen surface.
	NavFocus
	// NavBack is a click on the background.
	NavBack
	// NavAutoFocus fires once the start delay has elapsed.
	NavAutoFocus
)

func (e NavEvent) String() string {
	switch e {
	case NavStart:
		return "start"
	case NavFocus:
		return "focus"
	case NavBack:
		return "back"
	case NavAutoFocus:
		return "auto-focus"
	}
	return fmt.Sprintf("NavEvent(%d)", int(e))
}

type navKey struct {
	mode  ViewpointMode
	event NavEvent
}

// navTable is the whole back/forward policy. Pairs missing from the table
// leave the mode unchanged.
var navTable = map[navKey]ViewpointMode{
	{ModeIdle, NavStart}:   ModeDesk,
	{ModeDesk, NavStart}:   ModeDesk,
	{ModeScreen, NavStart}: ModeDesk,

	{ModeIdle, NavFocus}: ModeScreen,
	{ModeDesk, NavFocus}: ModeScreen,

	{ModeScreen, NavBack}: ModeDesk,
	{ModeDesk, NavBack}:   ModeIdle,
	{ModeIdle, NavBack}:   ModeDesk,

	{ModeDesk, NavAutoFocus}: ModeScreen,
}

// NextMode looks up the transition table.
func NextMode(current ViewpointMode, ev NavEvent) ViewpointMode {
	if next, ok := navTable[navKey{current, ev}]; ok {
		return next
	}
	return current
}

// Navigator is the embedding application's viewpoint state. It owns the
// current mode and the delayed focus that follows the start action.
type Navigator struct {
	mode       ViewpointMode
	focusDelay time.Duration
	pending    time.Duration
	armed      bool

	// OnChange is called with the old and new mode after every change.
	OnChange func(from, to ViewpointMode)
}

func NewNavigator(initial ViewpointMode, focusDelay time.Duration) *Navigator {
	return &Navigator{mode: initial, focusDelay: focusDelay}
}

func (n *Navigator) Mode() ViewpointMode { return n.mode }

// SetFocusDelay changes the start delay. A pending auto focus keeps the
// delay it was armed with.
func (n *Navigator) SetFocusDelay(d time.Duration) { n.focusDelay = d }

// DesktopVisible reports whether the desktop overlay belongs on screen.
func (n *Navigator) DesktopVisible() bool { return n.mode == FocusedMode }

// Fire applies ev and reports whether the mode changed.
func (n *Navigator) Fire(ev NavEvent) (ViewpointMode, bool) {
	// any other event cancels a pending auto focus
	n.armed = ev == NavStart
	if n.armed {
		n.pending = n.focusDelay
	}

	next := NextMode(n.mode, ev)
	if next == n.mode {
		return n.mode, false
	}
	prev := n.mode
	n.mode = next
	if n.OnChange != nil {
		n.OnChange(prev, next)
	}
	return next, true
}

// Advance runs the start delay timer.
func (n *Navigator) Advance(dt time.Duration) {
	if !n.armed {
		return
	}
	n.pending -= dt
	if n.pending <= 0 {
		n.Fire(NavAutoFocus)
	}
}

// AutoFocusPending reports whether the start delay is still running.
func (n *Navigator) AutoFocusPending() bool { return n.armed }
