package core

import (
	"sync"
	"time"

	fcore "github.com/frostbyte73/core"
	"github.com/hamidzr/movebox/model"
	"github.com/sirupsen/logrus"
)

// PositionToggle sends the box to the far edge of its container on every
// trigger, alternating right and left.
type PositionToggle struct {
	// triggerMu serializes Trigger so a restart never races its own Start.
	triggerMu sync.Mutex
	mu        sync.Mutex
	ready     fcore.Fuse

	provider GeometryProvider
	geometry model.Geometry
	state    model.ToggleState

	duration time.Duration
	policy   model.OverlapPolicy
	animator Animator
	display  Display

	generation uint64
	// running holds every move that has not completed or been stopped. The
	// subscription is nil until the animator has returned it.
	running map[uint64]model.Subscription
	log     *logrus.Entry
}

// NewPositionToggle creates a toggle in the AtLeft state. The display starts out stationary.
func NewPositionToggle(cfg *model.Config, animator Animator, display Display) (*PositionToggle, error) {
	policy, err := cfg.OverlapPolicy()
	if err != nil {
		return nil, err
	}
	p := &PositionToggle{
		state:    model.AtLeft,
		duration: cfg.Duration(),
		policy:   policy,
		animator: animator,
		display:  display,
		running:  make(map[uint64]model.Subscription),
		log:      logrus.WithField("component", "toggle"),
	}
	display.SetStatus(model.StatusStationary)
	return p, nil
}

// Initialize captures geometry and fills the coordinate and width readouts.
// Only the first call has any effect; it reports whether this call captured.
func (p *PositionToggle) Initialize(provider GeometryProvider) bool {
	p.mu.Lock()
	if p.ready.IsBroken() {
		p.mu.Unlock()
		return false
	}
	left, right := provider.ContainerPadding()
	g := model.NewGeometry(provider.ContainerWidth(), provider.ElementWidth(), provider.ElementX(), left, right)
	p.provider = provider
	p.geometry = g
	p.ready.Break()
	p.mu.Unlock()

	p.log.WithFields(logrus.Fields{
		"element_width": g.ElementWidth,
		"element_x":     g.ElementX,
		"max_x":         g.MaxTranslationX,
	}).Info("captured box geometry")
	p.display.SetCoordinate(model.FormatPx(g.ElementX))
	p.display.SetWidth(model.FormatPx(g.ElementWidth))
	return true
}

// Trigger starts one move toward the opposite edge and flips the state right away.
func (p *PositionToggle) Trigger() (model.AnimationRequest, error) {
	p.triggerMu.Lock()
	defer p.triggerMu.Unlock()

	p.mu.Lock()
	if !p.ready.IsBroken() {
		p.mu.Unlock()
		p.log.Warn("trigger before geometry was captured")
		return model.AnimationRequest{}, model.ErrNotReady
	}
	if p.policy == model.OverlapIgnore && len(p.running) > 0 {
		p.mu.Unlock()
		p.log.Debug("ignoring trigger while a move is in flight")
		return model.AnimationRequest{}, model.ErrAnimationInFlight
	}

	var previous []model.Subscription
	if p.policy == model.OverlapRestart {
		previous = p.takeRunning()
	}
	p.generation++
	gen := p.generation
	p.running[gen] = nil
	req := model.AnimationRequest{
		Duration:       p.duration,
		TargetX:        p.geometry.TargetFor(p.state),
		AnimationHooks: p.hooks(gen),
	}
	p.log.WithFields(logrus.Fields{
		"from":     p.state,
		"target_x": req.TargetX,
		"move":     gen,
	}).Debug("starting move")
	p.state = p.state.Flip()
	p.mu.Unlock()

	for _, sub := range previous {
		sub.Stop()
	}
	sub := p.animator.Start(req)

	p.mu.Lock()
	// a synchronous animator may already have completed the move
	if _, ok := p.running[gen]; ok {
		p.running[gen] = sub
	}
	p.mu.Unlock()
	return req, nil
}

// stale reports whether hooks of move gen should be dropped. Racing moves
// always report, matching a host that never cancels.
func (p *PositionToggle) stale(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.policy != model.OverlapRace && gen != p.generation
}

func (p *PositionToggle) hooks(gen uint64) model.AnimationHooks {
	return model.AnimationHooks{
		OnStart: func() {
			if p.stale(gen) {
				return
			}
			p.display.SetStatus(model.StatusMoving)
		},
		OnProgress: func() {
			if p.stale(gen) {
				return
			}
			p.mu.Lock()
			provider := p.provider
			p.mu.Unlock()
			p.display.SetCoordinate(model.FormatPx(provider.ElementX()))
		},
		OnComplete: func() {
			if !p.stale(gen) {
				p.display.SetStatus(model.StatusStationary)
				p.log.WithField("move", gen).Debug("move complete")
			}
			p.mu.Lock()
			delete(p.running, gen)
			p.mu.Unlock()
		},
	}
}

// State returns the edge the next trigger moves away from.
func (p *PositionToggle) State() model.ToggleState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Geometry returns the captured snapshot and whether capture has happened.
func (p *PositionToggle) Geometry() (model.Geometry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.geometry, p.ready.IsBroken()
}

// Ready is closed once geometry has been captured.
func (p *PositionToggle) Ready() <-chan struct{} {
	return p.ready.Watch()
}

// Moving reports whether any move is still in flight.
func (p *PositionToggle) Moving() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.running) > 0
}

// takeRunning empties running and returns the subscriptions to stop.
// Callers hold mu.
func (p *PositionToggle) takeRunning() []model.Subscription {
	subs := make([]model.Subscription, 0, len(p.running))
	for gen, sub := range p.running {
		if sub != nil {
			subs = append(subs, sub)
		}
		delete(p.running, gen)
	}
	return subs
}

// Close stops every move still in flight.
func (p *PositionToggle) Close() {
	p.triggerMu.Lock()
	defer p.triggerMu.Unlock()

	p.mu.Lock()
	subs := p.takeRunning()
	p.mu.Unlock()
	for _, sub := range subs {
		sub.Stop()
	}
}
