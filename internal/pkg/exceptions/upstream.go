package exceptions

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"fmt"
)

var (
	// ErrUpstreamAPI is returned when the upstream answered with a non-2xx status.
	// The inbound response is rendered as 502; UpstreamStatus keeps the received code.
	ErrUpstreamAPI = func(method, path string, upstreamStatus int, message string, body any) *CustomError {
		if message == "" {
			message = constvars.ErrClientExternalAPIError
		}
		customErr := BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrCodeAPIError, message, fmt.Sprintf(constvars.ErrDevUpstreamNonSuccess, method, path, upstreamStatus))
		customErr.UpstreamStatus = upstreamStatus
		customErr.Details = body
		return customErr
	}
	ErrUpstreamUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrCodeServiceUnavailable, constvars.ErrClientExternalServiceUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrUpstreamInternal = func(err error, devMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, devMessage)
	}
	ErrUpstreamDecode = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUpstreamDecode, path))
	}
	ErrUpstreamToken = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrCodeServiceUnavailable, constvars.ErrClientExternalServiceUnavailable, constvars.ErrDevUpstreamTokenRefresh)
	}
	ErrMappingMissingID = func(resource string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMappingMissingID, resource))
	}
)
