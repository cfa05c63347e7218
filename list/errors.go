package list

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a missing handle, a zero-sized buffer, a
	// nil output slot or an index that cannot resolve.
	ErrInvalidArgument = errors.New(`list: invalid argument`)
	// ErrOutOfMemory reports an allocation failure for a node or payload
	// buffer.
	ErrOutOfMemory = errors.New(`list: out of memory`)
	// ErrIO reports a failed underlying line read or end of input.
	ErrIO = errors.New(`list: io failure`)
	// ErrNotImplemented reports a tag-dispatched operation invoked for a
	// tag without behavior.
	ErrNotImplemented = errors.New(`list: not implemented`)
	// ErrPositionNotFound reports an insert index beyond the current
	// length. It is an ErrInvalidArgument under errors.Is.
	ErrPositionNotFound = fmt.Errorf(`%w: position not found`, ErrInvalidArgument)
)
