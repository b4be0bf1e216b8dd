package core

import "github.com/hamidzr/movebox/model"

// GeometryProvider reports the box and its container once layout is known.
// ElementX must return the live on-screen position so progress readouts follow the box.
type GeometryProvider interface {
	ContainerWidth() float32
	ContainerPadding() (left, right float32)
	ElementWidth() float32
	ElementX() float32
}

// Display receives the three text readouts.
type Display interface {
	SetCoordinate(text string)
	SetWidth(text string)
	SetStatus(text string)
}

// Animator moves the box to req.TargetX over req.Duration starting from
// wherever the box is when Start is called.
type Animator interface {
	Start(req model.AnimationRequest) model.Subscription
}
