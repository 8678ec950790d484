// Package errors provides sentinel errors and custom error types for the buildway application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrYearOutOfRange indicates that a timestamp year cannot be encoded into a version
	ErrYearOutOfRange = errors.New("timestamp year out of range")

	// ErrSegmentLimit indicates that a branch name split into more segments than allowed
	ErrSegmentLimit = errors.New("segment limit exceeded")

	// ErrForbiddenSegment indicates that a branch segment matches a reserved name
	ErrForbiddenSegment = errors.New("forbidden segment")

	// ErrNoSegments indicates that an operation requiring segments received none
	ErrNoSegments = errors.New("no segments")
)

// YearOutOfRangeError represents an error when a timestamp year exceeds the encodable maximum
type YearOutOfRangeError struct {
	Year int
	Max  int
}

func (e *YearOutOfRangeError) Error() string {
	return fmt.Sprintf("timestamp year %d exceeds the maximum encodable year %d", e.Year, e.Max)
}

// Is returns true if the target error is ErrYearOutOfRange
func (e *YearOutOfRangeError) Is(target error) bool {
	return target == ErrYearOutOfRange
}

// NewYearOutOfRangeError creates a new YearOutOfRangeError
func NewYearOutOfRangeError(year, max int) *YearOutOfRangeError {
	return &YearOutOfRangeError{Year: year, Max: max}
}

// SegmentLimitError represents an error when a branch name has too many segments
type SegmentLimitError struct {
	Input string
	Count int
	Max   int
}

func (e *SegmentLimitError) Error() string {
	return fmt.Sprintf("branch name %q splits into %d segments, more than the allowed %d", e.Input, e.Count, e.Max)
}

// Is returns true if the target error is ErrSegmentLimit
func (e *SegmentLimitError) Is(target error) bool {
	return target == ErrSegmentLimit
}

// NewSegmentLimitError creates a new SegmentLimitError
func NewSegmentLimitError(input string, count, max int) *SegmentLimitError {
	return &SegmentLimitError{Input: input, Count: count, Max: max}
}

// ForbiddenSegmentError represents an error when a branch segment matches a reserved name
type ForbiddenSegmentError struct {
	Segment string
}

func (e *ForbiddenSegmentError) Error() string {
	return fmt.Sprintf("branch segment %q is a reserved name and cannot be used", e.Segment)
}

// Is returns true if the target error is ErrForbiddenSegment
func (e *ForbiddenSegmentError) Is(target error) bool {
	return target == ErrForbiddenSegment
}

// NewForbiddenSegmentError creates a new ForbiddenSegmentError
func NewForbiddenSegmentError(segment string) *ForbiddenSegmentError {
	return &ForbiddenSegmentError{Segment: segment}
}

// NoSegmentsError represents an error when channel translation receives an empty segment list
type NoSegmentsError struct{}

func (e *NoSegmentsError) Error() string {
	return "channel translation requires at least one branch segment"
}

// Is returns true if the target error is ErrNoSegments
func (e *NoSegmentsError) Is(target error) bool {
	return target == ErrNoSegments
}

// NewNoSegmentsError creates a new NoSegmentsError
func NewNoSegmentsError() *NoSegmentsError {
	return &NoSegmentsError{}
}

// ToolCommandError represents an error from an external tool invocation
type ToolCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *ToolCommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *ToolCommandError) Unwrap() error {
	return e.Err
}

// NewToolCommandError creates a new ToolCommandError
func NewToolCommandError(command string, args []string, stdout, stderr string, err error) *ToolCommandError {
	return &ToolCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
