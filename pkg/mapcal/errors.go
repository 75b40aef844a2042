package mapcal

import (
	"errors"
	"fmt"

	"github.com/beetlebugorg/mapcal/internal/calib"
)

// ErrBadCalibration reports malformed input: a continuation line with no
// line before it. The whole run stops when it is returned.
var ErrBadCalibration = calib.ErrBadCalibration

// ErrOpenInput reports that the calibration file could not be opened.
var ErrOpenInput = errors.New("could not open input")

// OpenError wraps the failure to open a calibration file.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("Could not open file %s", e.Path)
}

// Unwrap returns the underlying os error.
func (e *OpenError) Unwrap() error { return e.Err }

// Is matches ErrOpenInput.
func (e *OpenError) Is(target error) bool { return target == ErrOpenInput }

// WriteError reports a failure to write an output header.
type WriteError struct {
	Chart string
	Path  string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("chart %s: write %s: %v", e.Chart, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error { return e.Err }
