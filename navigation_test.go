package deskview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextMode(t *testing.T) {
	testCases := []struct {
		from ViewpointMode
		ev   NavEvent
		want ViewpointMode
	}{
		{ModeIdle, NavStart, ModeDesk},
		{ModeScreen, NavStart, ModeDesk},
		{ModeIdle, NavFocus, ModeScreen},
		{ModeDesk, NavFocus, ModeScreen},
		{ModeScreen, NavFocus, ModeScreen},
		{ModeScreen, NavBack, ModeDesk},
		{ModeDesk, NavBack, ModeIdle},
		{ModeIdle, NavBack, ModeDesk},
		{ModeDesk, NavAutoFocus, ModeScreen},
		{ModeIdle, NavAutoFocus, ModeIdle},
	}
	for _, tc := range testCases {
		t.Run(tc.from.String()+"/"+tc.ev.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, NextMode(tc.from, tc.ev))
		})
	}
}

func TestNavigatorStartThenAutoFocus(t *testing.T) {
	n := NewNavigator(ModeIdle, 2*time.Second)
	var changes [][2]ViewpointMode
	n.OnChange = func(from, to ViewpointMode) {
		changes = append(changes, [2]ViewpointMode{from, to})
	}

	mode, changed := n.Fire(NavStart)
	assert.True(t, changed)
	assert.Equal(t, ModeDesk, mode)
	assert.True(t, n.AutoFocusPending())
	assert.False(t, n.DesktopVisible())

	n.Advance(1500 * time.Millisecond)
	assert.Equal(t, ModeDesk, n.Mode())

	n.Advance(500 * time.Millisecond)
	assert.Equal(t, ModeScreen, n.Mode())
	assert.False(t, n.AutoFocusPending())
	assert.True(t, n.DesktopVisible())

	assert.Equal(t, [][2]ViewpointMode{{ModeIdle, ModeDesk}, {ModeDesk, ModeScreen}}, changes)
}

func TestNavigatorBackCancelsAutoFocus(t *testing.T) {
	n := NewNavigator(ModeIdle, 2*time.Second)
	n.Fire(NavStart)
	n.Advance(time.Second)

	n.Fire(NavBack)
	assert.Equal(t, ModeIdle, n.Mode())
	assert.False(t, n.AutoFocusPending())

	n.Advance(5 * time.Second)
	assert.Equal(t, ModeIdle, n.Mode())
}

func TestNavigatorBackStack(t *testing.T) {
	n := NewNavigator(ModeScreen, 0)
	calls := 0
	n.OnChange = func(_, _ ViewpointMode) { calls++ }

	n.Fire(NavBack)
	assert.Equal(t, ModeDesk, n.Mode())
	n.Fire(NavBack)
	assert.Equal(t, ModeIdle, n.Mode())
	n.Fire(NavBack)
	assert.Equal(t, ModeDesk, n.Mode())

	_, changed := n.Fire(NavAutoFocus)
	assert.True(t, changed)
	_, changed = n.Fire(NavFocus)
	assert.False(t, changed, "already focused")
	assert.Equal(t, 4, calls)
}
