package session

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"focustimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicker_DeliversUntilStopped(t *testing.T) {
	ticker := NewTicker(5*time.Millisecond, nil)
	var ticks atomic.Int32

	ticker.Start(func() { ticks.Add(1) })
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	ticker.Stop()
	assert.False(t, ticker.Running())
	stopped := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, ticks.Load(), stopped+1)
}

func TestTicker_StartTwiceKeepsOneLoop(t *testing.T) {
	var mu sync.Mutex
	var queued []func()
	ticker := NewTicker(5*time.Millisecond, func(run func()) {
		mu.Lock()
		queued = append(queued, run)
		mu.Unlock()
	})
	var ticks int

	ticker.Start(func() { ticks++ })
	ticker.Start(func() { ticks += 100 })
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(queued) >= 2
	}, time.Second, time.Millisecond)

	mu.Lock()
	pending := append([]func(){}, queued[:2]...)
	mu.Unlock()
	for _, run := range pending {
		run()
	}
	ticker.Stop()

	assert.Equal(t, 2, ticks)
}

func TestTicker_DiscardsTicksPostedBeforeStop(t *testing.T) {
	var mu sync.Mutex
	var queued []func()
	ticker := NewTicker(5*time.Millisecond, func(run func()) {
		mu.Lock()
		queued = append(queued, run)
		mu.Unlock()
	})
	var ticks atomic.Int32

	ticker.Start(func() { ticks.Add(1) })
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(queued) > 0
	}, time.Second, time.Millisecond)

	mu.Lock()
	first := queued[0]
	mu.Unlock()
	first()
	assert.Equal(t, int32(1), ticks.Load())

	ticker.Stop()
	ticker.Start(func() { ticks.Add(1) })
	first()
	ticker.Stop()

	assert.Equal(t, int32(1), ticks.Load())
}

func TestTicker_DrivesEngineToCompletion(t *testing.T) {
	engine := New(model.SessionConfig{FocusMinutes: 1})
	ticks := make(chan func(), 128)
	engine.SetScheduler(NewTicker(time.Millisecond, func(run func()) { ticks <- run }))
	completed := 0
	engine.Subscribe(func(event Event) {
		if event.Type == EventSessionCompleted {
			completed++
		}
	})

	engine.Start()
	deadline := time.After(5 * time.Second)
	for engine.State() == StateRunning {
		select {
		case run := <-ticks:
			run()
		case <-deadline:
			t.Fatalf("timed out with %s remaining", engine.Remaining())
		}
	}

	assert.Equal(t, StateCompleted, engine.State())
	assert.Equal(t, 1, completed)
}
