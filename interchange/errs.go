package interchange

import (
	"errors"
	"fmt"
)

var (
	ErrInterchange      = errors.New("interchange")
	ErrRootScalar       = fmt.Errorf("%w: root must be an object or an array", ErrInterchange)
	ErrUnsupportedValue = fmt.Errorf("%w: unsupported value", ErrInterchange)
	ErrBadNumber        = fmt.Errorf("%w: bad number", ErrInterchange)
	ErrInvalidJSON      = fmt.Errorf("%w: invalid json", ErrInterchange)
	ErrInvalidYAML      = fmt.Errorf("%w: invalid yaml", ErrInterchange)
	ErrInvalidTOML      = fmt.Errorf("%w: invalid toml", ErrInterchange)
	ErrPatch            = fmt.Errorf("%w: patch", ErrInterchange)
	ErrUninitialized    = fmt.Errorf("%w: uninitialized value", ErrInterchange)
)
