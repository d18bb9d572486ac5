// Package client provides shared error and polling primitives for the robot
// service clients.
package client

import (
	"errors"
	"fmt"
)

// Code classifies an error for programmatic handling.
type Code string

const (
	// Command submission rejections.
	CodeInvalidRequest Code = "invalid_request"
	CodeUnsupported    Code = "unsupported"
	CodeNoTimesync     Code = "no_timesync"
	CodeExpired        Code = "expired"
	CodeTooDistant     Code = "too_distant"
	CodeNotPoweredOn   Code = "not_powered_on"
	CodeBehaviorFault  Code = "behavior_fault"
	CodeDocked         Code = "docked"
	CodeUnknownFrame   Code = "unknown_frame"
	CodeNotCleared     Code = "fault_not_cleared"

	// Power command rejections.
	CodeShorePowerConnected Code = "shore_power_connected"
	CodeBatteryMissing      Code = "battery_missing"
	CodeCommandInProgress   Code = "command_in_progress"
	CodeEstopped            Code = "estopped"
	CodeFaulted             Code = "faulted"
	CodeOverridden          Code = "overridden"
	CodeInternalServer      Code = "internal_server"

	// Local failures.
	CodeUnsetStatus            Code = "unset_status"
	CodeTimesyncNotEstablished Code = "timesync_not_established"
	CodeKeeperStopped          Code = "keeper_stopped"
	CodeNotCombinable          Code = "not_combinable"
	CodeEmptyCommand           Code = "empty_command"
	CodeTrajectoryMismatch     Code = "trajectory_mismatch"
	CodeCommandFailed          Code = "command_failed"
	CodeCommandTimedOut        Code = "command_timed_out"
)

// Error is a coded client error. Errors with the same code match under
// errors.Is regardless of message.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New builds an error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds an error with the given code and formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an error with the given code wrapping a cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf reports the code of err, or the empty code when err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
