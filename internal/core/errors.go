package core

import "errors"

// ErrInvalidArgument reports a violated precondition: a negative counter, a
// non-positive dimension or an out-of-bounds write.
var ErrInvalidArgument = errors.New("invalid argument")
