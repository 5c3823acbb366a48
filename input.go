package deskview

// InputHandler receives pointer and viewport events on the frame thread.
// Coordinates are pixels with the origin at the top left.
type InputHandler interface {
	PointerMoved(x, y float64)
	PointerClicked(x, y float64)
	Resized(width, height int)
}

// InputSource delivers events to attached handlers until detached.
type InputSource interface {
	Attach(h InputHandler) (detach func())
}

// InputBus is an InputSource fed by the host's per-frame input polling.
type InputBus struct {
	handlers []*busEntry
}

type busEntry struct {
	h InputHandler
}

func NewInputBus() *InputBus {
	return &InputBus{}
}

func (b *InputBus) Attach(h InputHandler) func() {
	e := &busEntry{h: h}
	b.handlers = append(b.handlers, e)
	return func() {
		for i, x := range b.handlers {
			if x == e {
				b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Len is the number of attached handlers.
func (b *InputBus) Len() int { return len(b.handlers) }

// each iterates over a snapshot so a handler may detach itself.
func (b *InputBus) each(fn func(InputHandler)) {
	hs := append([]*busEntry(nil), b.handlers...)
	for _, e := range hs {
		fn(e.h)
	}
}

func (b *InputBus) PointerMoved(x, y float64) {
	b.each(func(h InputHandler) { h.PointerMoved(x, y) })
}

func (b *InputBus) PointerClicked(x, y float64) {
	b.each(func(h InputHandler) { h.PointerClicked(x, y) })
}

func (b *InputBus) Resized(width, height int) {
	b.each(func(h InputHandler) { h.Resized(width, height) })
}
