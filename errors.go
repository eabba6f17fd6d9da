package tilekit

import "errors"

var (
	// ErrNotFound is returned when a named animation or sprite sheet does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when an animation name is added twice.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrMalformedAnimationSpec is returned when an animation description
	// has mismatched frame/duration arrays or negative values.
	ErrMalformedAnimationSpec = errors.New("malformed animation spec")

	// ErrUnsupportedTileID is returned when a probe hits a tile id that has
	// no registered BlockResolver.
	ErrUnsupportedTileID = errors.New("unsupported tile id")
)
