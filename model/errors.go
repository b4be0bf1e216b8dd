package model

import "errors"

var (
	// ErrNotReady is returned when a move is triggered before geometry was captured.
	ErrNotReady = errors.New("geometry has not been captured yet")
	// ErrAnimationInFlight is returned under OverlapIgnore while a move is running.
	ErrAnimationInFlight = errors.New("a move is already in flight")
	// ErrInvalidOverlapPolicy wraps parse failures of the overlap setting.
	ErrInvalidOverlapPolicy = errors.New("invalid overlap policy")
	// ErrUnknownEasing wraps lookups of an easing name with no matching curve.
	ErrUnknownEasing = errors.New("unknown easing")
)
