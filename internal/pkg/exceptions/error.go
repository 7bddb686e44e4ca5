package exceptions

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode     int        `json:"-"`
	Code           string     `json:"code"`
	ClientMessage  string     `json:"message"`
	Details        any        `json:"details,omitempty"`
	DevMessage     string     `json:"dev_message,omitempty"`
	Locations      []Location `json:"locations,omitempty"`
	UpstreamStatus int        `json:"-"`
	Err            error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.DevMessage)
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s: %s (%s:%d %s)", e.Code, e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the caller of the constructor that invoked it.
func BuildNewCustomError(err error, statusCode int, code, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Code:          code,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(3)},
		Err:           err,
	}
}

// WithDetails attaches a details payload rendered in the error envelope.
func (e *CustomError) WithDetails(details any) *CustomError {
	e.Details = details
	return e
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			Line:         0,
			FunctionName: "unknown",
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}

func AsCustomError(err error) (*CustomError, bool) {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr, true
	}
	return nil, false
}

// CodeOf returns the machine readable code of err, or INTERNAL_ERROR.
func CodeOf(err error) string {
	if customErr, ok := AsCustomError(err); ok {
		return customErr.Code
	}
	return constvars.ErrCodeInternal
}

// IsUpstreamStatus reports whether err is an upstream API error carrying the given status.
func IsUpstreamStatus(err error, status int) bool {
	customErr, ok := AsCustomError(err)
	if !ok {
		return false
	}
	return customErr.Code == constvars.ErrCodeAPIError && customErr.UpstreamStatus == status
}

// IsUpstreamFailure reports whether err originated from calling the upstream system.
func IsUpstreamFailure(err error) bool {
	switch CodeOf(err) {
	case constvars.ErrCodeAPIError, constvars.ErrCodeServiceUnavailable:
		return true
	}
	return false
}
