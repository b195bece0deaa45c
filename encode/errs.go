package encode

import "errors"

var (
	ErrUninitialized = errors.New("uninitialized value")
	ErrRootScalar    = errors.New("root is a scalar")
)
