package core

import (
	"sync"
	"time"

	"github.com/hamidzr/movebox/model"
)

const defaultFrameInterval = time.Second / 60

// Mover is an element whose horizontal position can be read and set.
type Mover interface {
	X() float32
	MoveX(x float32)
}

// TickerAnimator drives moves from a time.Ticker, one goroutine per move.
// It is used where no host animation scheduler exists, e.g. the terminal.
type TickerAnimator struct {
	element Mover
	curve   func(float32) float32
	frame   time.Duration
}

// NewTickerAnimator returns an animator for element. A nil curve means linear,
// a non-positive frame means 60 frames per second.
func NewTickerAnimator(element Mover, curve func(float32) float32, frame time.Duration) *TickerAnimator {
	if curve == nil {
		curve = func(t float32) float32 { return t }
	}
	if frame <= 0 {
		frame = defaultFrameInterval
	}
	return &TickerAnimator{element: element, curve: curve, frame: frame}
}

// Start calls OnStart synchronously, then animates on a background goroutine.
func (a *TickerAnimator) Start(req model.AnimationRequest) model.Subscription {
	sub := &tickerSubscription{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	from := a.element.X()
	if req.OnStart != nil {
		req.OnStart()
	}
	go a.run(sub, from, req)
	return sub
}

func (a *TickerAnimator) run(sub *tickerSubscription, from float32, req model.AnimationRequest) {
	defer close(sub.done)
	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()
	started := time.Now()
	for {
		select {
		case <-sub.stop:
			return
		case now := <-ticker.C:
			// a stop that raced with this tick wins
			select {
			case <-sub.stop:
				return
			default:
			}
			progress := float32(1)
			if req.Duration > 0 {
				progress = model.Clamp(float32(now.Sub(started))/float32(req.Duration), 0, 1)
			}
			a.element.MoveX(model.Lerp(from, req.TargetX, a.curve(progress)))
			if req.OnProgress != nil {
				req.OnProgress()
			}
			if progress >= 1 {
				if req.OnComplete != nil {
					req.OnComplete()
				}
				return
			}
		}
	}
}

type tickerSubscription struct {
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func (s *tickerSubscription) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *tickerSubscription) Done() <-chan struct{} {
	return s.done
}
