package errors

import (
	"github.com/pingcap/errors"
)

// errors used by the containers
var (
	ErrInvalidArgument        = errors.Normalize("invalid argument: %s", errors.RFCCodeText("CONTAINERS:ErrInvalidArgument"))
	ErrNullInput              = errors.Normalize("%s is nil", errors.RFCCodeText("CONTAINERS:ErrNullInput"))
	ErrEmptyContainer         = errors.Normalize("%s is empty", errors.RFCCodeText("CONTAINERS:ErrEmptyContainer"))
	ErrIndexOutOfRange        = errors.Normalize("index %d is out of range [0, %d)", errors.RFCCodeText("CONTAINERS:ErrIndexOutOfRange"))
	ErrInsufficientCapacity   = errors.Normalize("destination has %d free slots, %d required", errors.RFCCodeText("CONTAINERS:ErrInsufficientCapacity"))
	ErrConcurrentModification = errors.Normalize("collection has been changed during iteration", errors.RFCCodeText("CONTAINERS:ErrConcurrentModification"))

	// config related errors
	ErrConfigDecodeFile  = errors.Normalize("decode config file failed", errors.RFCCodeText("CONTAINERS:ErrConfigDecodeFile"))
	ErrConfigUnknownItem = errors.Normalize("unknown config items: %s", errors.RFCCodeText("CONTAINERS:ErrConfigUnknownItem"))
	ErrConfigInvalidFlag = errors.Normalize("'%s' is an invalid flag", errors.RFCCodeText("CONTAINERS:ErrConfigInvalidFlag"))

	// command line related errors
	ErrUnknownSetOperation = errors.Normalize("unknown set operation %s", errors.RFCCodeText("CONTAINERS:ErrUnknownSetOperation"))
)

// Wrap wraps err with rfcError, keeping err as the cause. The result
// carries err's message, so rfcError.Equal no longer matches it, use Is
// to classify it.
func Wrap(rfcError *errors.Error, err error, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return rfcError.Wrap(err).GenWithStackByArgs(args...)
}

// Is reports whether rfcError appears anywhere in err's cause chain.
func Is(err error, rfcError *errors.Error) bool {
	if err == nil {
		return false
	}
	return errors.Find(err, func(e error) bool {
		inErr, ok := e.(*errors.Error)
		return ok && inErr.ID() == rfcError.ID()
	}) != nil
}
