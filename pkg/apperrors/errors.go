package apperrors

import (
	"github.com/pkg/errors"
)

// Sentinel errors for the pipeline's failure taxonomy. Wrap them with
// errors.Wrapf so callers can classify with errors.Is while keeping the
// originating message intact.
var (
	ErrNotFound           = errors.New("requested resource not found")
	ErrPreconditionFailed = errors.New("operation precondition not met")
	ErrInvalidInput       = errors.New("invalid input")
)

func NotFoundf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func PreconditionFailedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrPreconditionFailed, format, args...)
}

func InvalidInputf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}
