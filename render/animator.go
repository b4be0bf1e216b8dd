package render

import (
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"github.com/hamidzr/movebox/model"
)

// Animator moves a canvas object horizontally with fyne's animation runner.
type Animator struct {
	object fyne.CanvasObject
	curve  fyne.AnimationCurve
}

// NewAnimator returns an animator for object using curve for easing.
func NewAnimator(object fyne.CanvasObject, curve fyne.AnimationCurve) *Animator {
	if curve == nil {
		curve = fyne.AnimationEaseInOut
	}
	return &Animator{object: object, curve: curve}
}

// Start begins a move from the object's current X to req.TargetX.
func (a *Animator) Start(req model.AnimationRequest) model.Subscription {
	from := a.object.Position().X
	move := &animatedMove{done: make(chan struct{})}
	move.animation = fyne.NewAnimation(req.Duration, func(progress float32) {
		if move.stopped.Load() {
			return
		}
		a.object.Move(fyne.NewPos(model.Lerp(from, req.TargetX, progress), a.object.Position().Y))
		if req.OnProgress != nil {
			req.OnProgress()
		}
		if progress >= 1 {
			move.finish(req.OnComplete)
		}
	})
	move.animation.Curve = a.curve

	if req.OnStart != nil {
		req.OnStart()
	}
	move.animation.Start()
	return move
}

type animatedMove struct {
	animation *fyne.Animation
	stopped   atomic.Bool
	once      sync.Once
	done      chan struct{}
}

func (m *animatedMove) finish(onComplete func()) {
	m.once.Do(func() {
		if onComplete != nil {
			onComplete()
		}
		close(m.done)
	})
}

func (m *animatedMove) Stop() {
	if m.stopped.Swap(true) {
		return
	}
	m.animation.Stop()
	m.once.Do(func() { close(m.done) })
}

func (m *animatedMove) Done() <-chan struct{} {
	return m.done
}
