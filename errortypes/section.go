package errortypes

import "fmt"

// ErrUndefinedSection extends the error interface to add the name of the
// section that failed to resolve.  It is the one fatal error a render
// produces: entering a section whose name is not declared anywhere in the
// data tree aborts the render, while a present-but-falsey value merely
// renders the section zero times.
type ErrUndefinedSection interface {
	error
	Name() string
}

// NewErrUndefinedSectionf creates an error conforming to the
// ErrUndefinedSection interface.
func NewErrUndefinedSectionf(name string, format string, args ...interface{}) error {
	return &errUndefinedSection{
		error: fmt.Errorf(format, args...),
		name:  name,
	}
}

// IsErrUndefinedSection identifies whether or not the root cause of the
// provided error is of the ErrUndefinedSection type.
// Wrapped errors are unwrapped via the Cause() function.
func IsErrUndefinedSection(err error) bool {
	if err == nil {
		return false
	}
	err = rootCause(err)

	_, isUndefinedSection := err.(ErrUndefinedSection)
	return isUndefinedSection
}

// ToErrUndefinedSection converts the input error to an ErrUndefinedSection
// if possible, or nil if not.  If IsErrUndefinedSection returns true, this
// will not return nil.
func ToErrUndefinedSection(err error) ErrUndefinedSection {
	if err == nil {
		return nil
	}
	err = rootCause(err)
	if out, isUndefinedSection := err.(ErrUndefinedSection); isUndefinedSection {
		return out
	}
	return nil
}

func rootCause(err error) error {
	type causer interface {
		Cause() error
	}

	for {
		if e, ok := err.(causer); ok {
			err = e.Cause()
		} else {
			return err
		}
	}
}

type errUndefinedSection struct {
	error
	name string
}

func (e *errUndefinedSection) Name() string { return e.name }
