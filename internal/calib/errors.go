package calib

import (
	"errors"
	"fmt"
)

// ErrBadCalibration is the root of every fatal input error. Callers print
// its text and stop the whole run.
var ErrBadCalibration = errors.New("Bad Calibration File")

// ErrNoLineToAppend is returned by Buffer.AppendLine on an empty buffer.
var ErrNoLineToAppend = errors.New("no line to append to")

// MalformedError indicates a continuation line with nothing to continue.
type MalformedError struct {
	Line int    // 1-based line number in the input stream
	Text string // the offending line, trimmed
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v: line %d: %v (%q)", ErrBadCalibration, e.Line, e.Err, e.Text)
}

// Unwrap exposes the underlying buffer error.
func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Is reports every MalformedError as ErrBadCalibration.
func (e *MalformedError) Is(target error) bool {
	return target == ErrBadCalibration
}

// ErrInvalidCoordinate indicates coordinate out of valid bounds
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be ±90, lon must be ±180)",
		e.Lat, e.Lon)
}

// ErrUnknownCharset indicates an input charset name with no decoder.
type ErrUnknownCharset struct {
	Name string
}

func (e *ErrUnknownCharset) Error() string {
	return fmt.Sprintf("unknown input charset: %q", e.Name)
}
