package model

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDuration is how long one move takes unless configured otherwise.
const DefaultDuration = 1000 * time.Millisecond

const (
	StatusMoving     = "MOVING"
	StatusStationary = "STATIONARY"
)

// ToggleState records which edge the box was last sent to.
type ToggleState bool

const (
	AtLeft  ToggleState = false
	AtRight ToggleState = true
)

func (s ToggleState) String() string {
	if s == AtRight {
		return "right"
	}
	return "left"
}

// Flip returns the opposite edge.
func (s ToggleState) Flip() ToggleState {
	return !s
}

// Geometry is captured once after the first layout pass and never updated.
type Geometry struct {
	ElementWidth    float32
	ElementX        float32
	LeftPadding     float32
	RightPadding    float32
	MaxTranslationX float32
}

// NewGeometry computes the right-edge target for a box inside a padded container.
func NewGeometry(containerWidth, elementWidth, elementX, leftPadding, rightPadding float32) Geometry {
	return Geometry{
		ElementWidth:    elementWidth,
		ElementX:        elementX,
		LeftPadding:     leftPadding,
		RightPadding:    rightPadding,
		MaxTranslationX: containerWidth - elementWidth - rightPadding,
	}
}

// TargetFor returns where the box goes when triggered from state s.
func (g Geometry) TargetFor(s ToggleState) float32 {
	if s == AtLeft {
		return g.MaxTranslationX
	}
	return g.LeftPadding
}

// AnimationHooks are invoked by an animator over the life of one move.
// OnComplete is not called for a move that was stopped early.
type AnimationHooks struct {
	OnStart    func()
	OnProgress func()
	OnComplete func()
}

// Subscription is a handle on one running move.
type Subscription interface {
	// Stop ends the move early. OnComplete is not called for a stopped move.
	Stop()
	// Done is closed once the move completed or was stopped.
	Done() <-chan struct{}
}

// AnimationRequest is created fresh for every trigger.
type AnimationRequest struct {
	Duration time.Duration
	TargetX  float32
	AnimationHooks
}

// OverlapPolicy decides what a trigger does while a move is still in flight.
type OverlapPolicy string

const (
	// OverlapRestart stops the running move and starts a new one from the current position.
	OverlapRestart OverlapPolicy = "restart"
	// OverlapIgnore rejects triggers until the running move completes.
	OverlapIgnore OverlapPolicy = "ignore"
	// OverlapRace lets moves run concurrently, no cancellation.
	OverlapRace OverlapPolicy = "race"
)

// OverlapPolicies lists the accepted policy names.
var OverlapPolicies = []OverlapPolicy{OverlapRestart, OverlapIgnore, OverlapRace}

// ParseOverlapPolicy converts a config value into an OverlapPolicy.
func ParseOverlapPolicy(name string) (OverlapPolicy, error) {
	normalized := OverlapPolicy(strings.ToLower(strings.TrimSpace(name)))
	for _, p := range OverlapPolicies {
		if p == normalized {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of restart, ignore, race)", ErrInvalidOverlapPolicy, name)
}
