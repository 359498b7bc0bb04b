package session

import (
	"sync"
	"time"
)

// Ticker is a TickScheduler backed by time.Ticker.
//
// Each tick is passed to post, which decides where it runs. Ticks posted
// before a Stop are discarded when they finally execute.
type Ticker struct {
	mu         sync.Mutex
	interval   time.Duration
	post       func(func())
	stopCh     chan struct{}
	running    bool
	generation uint64
}

// NewTicker creates a stopped ticker. A nil post runs ticks on the ticker goroutine.
func NewTicker(interval time.Duration, post func(func())) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	if post == nil {
		post = func(run func()) { run() }
	}
	return &Ticker{
		interval: interval,
		post:     post,
	}
}

// Start launches the ticking loop. It is a no-op while already running.
func (ticker *Ticker) Start(tick func()) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if ticker.running {
		return
	}
	ticker.running = true
	ticker.generation++
	ticker.stopCh = make(chan struct{})

	go ticker.run(ticker.stopCh, ticker.generation, tick)
}

// Stop terminates the ticking loop.
func (ticker *Ticker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if !ticker.running {
		return
	}
	close(ticker.stopCh)
	ticker.running = false
	ticker.generation++
}

// Running reports whether ticks are being delivered.
func (ticker *Ticker) Running() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.running
}

func (ticker *Ticker) run(stopCh <-chan struct{}, generation uint64, tick func()) {
	timeTicker := time.NewTicker(ticker.interval)
	defer timeTicker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-timeTicker.C:
			ticker.post(func() {
				if ticker.current(generation) {
					tick()
				}
			})
		}
	}
}

func (ticker *Ticker) current(generation uint64) bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.running && ticker.generation == generation
}
