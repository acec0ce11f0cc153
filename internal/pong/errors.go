package pong

import "errors"

// Errors returned by constructors and validating setters. They are always
// precondition violations by the caller, never transient conditions.
var (
	ErrInvalidDimension = errors.New("pong: dimension must be a positive integer")
	ErrOutOfBounds      = errors.New("pong: position is outside screen boundaries")
	ErrSpeedOutOfRange  = errors.New("pong: paddle speed out of range")
	ErrUnknownAction    = errors.New("pong: unknown action")
	ErrKeyInUse         = errors.New("pong: key already bound")
)
