package deskview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingHandler struct {
	moves, clicks int
	sizes         [][2]int
	onClick       func()
}

func (r *recordingHandler) PointerMoved(x, y float64) { r.moves++ }

func (r *recordingHandler) PointerClicked(x, y float64) {
	r.clicks++
	if r.onClick != nil {
		r.onClick()
	}
}

func (r *recordingHandler) Resized(w, h int) { r.sizes = append(r.sizes, [2]int{w, h}) }

func TestInputBusDispatch(t *testing.T) {
	bus := NewInputBus()
	a, b := &recordingHandler{}, &recordingHandler{}
	bus.Attach(a)
	detachB := bus.Attach(b)
	assert.Equal(t, 2, bus.Len())

	bus.PointerMoved(1, 2)
	bus.PointerClicked(1, 2)
	bus.Resized(640, 480)

	detachB()
	detachB()
	bus.PointerClicked(3, 4)

	assert.Equal(t, 1, bus.Len())
	assert.Equal(t, 2, a.clicks)
	assert.Equal(t, 1, b.clicks)
	assert.Equal(t, 1, b.moves)
	assert.Equal(t, [][2]int{{640, 480}}, a.sizes)
}

func TestInputBusHandlerMayDetachItself(t *testing.T) {
	bus := NewInputBus()
	h := &recordingHandler{}
	other := &recordingHandler{}
	var detach func()
	h.onClick = func() { detach() }
	detach = bus.Attach(h)
	bus.Attach(other)

	bus.PointerClicked(0, 0)
	bus.PointerClicked(0, 0)

	assert.Equal(t, 1, h.clicks)
	assert.Equal(t, 2, other.clicks)
}
