package deskview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameQueueRunsOncePerRequest(t *testing.T) {
	q := NewFrameQueue()
	var got []time.Duration
	q.RequestFrame(func(now time.Duration) { got = append(got, now) })

	assert.Equal(t, 1, q.Pending())
	assert.Equal(t, 1, q.Step(16*time.Millisecond))
	assert.Equal(t, 0, q.Step(32*time.Millisecond))
	assert.Equal(t, []time.Duration{16 * time.Millisecond}, got)
}

func TestFrameQueueRequestDuringStepWaits(t *testing.T) {
	q := NewFrameQueue()
	count := 0
	var loop FrameFunc
	loop = func(time.Duration) {
		count++
		q.RequestFrame(loop)
	}
	q.RequestFrame(loop)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 1, q.Step(time.Duration(i)))
	}
	assert.Equal(t, 3, count)
	assert.Equal(t, 1, q.Pending())
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	id := q.RequestFrame(func(time.Duration) { ran = true })
	q.CancelFrame(id)
	q.CancelFrame(id)
	q.CancelFrame(12345)

	assert.Equal(t, 0, q.Step(0))
	assert.False(t, ran)
}

func TestFrameQueueCancelDueFrameDuringStep(t *testing.T) {
	q := NewFrameQueue()
	ranSecond := false
	var second FrameID
	q.RequestFrame(func(time.Duration) { q.CancelFrame(second) })
	second = q.RequestFrame(func(time.Duration) { ranSecond = true })

	assert.Equal(t, 1, q.Step(0))
	assert.False(t, ranSecond)
}
