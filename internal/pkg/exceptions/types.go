package exceptions

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"fmt"
	"strings"
)

var (
	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed).
			WithDetails(map[string]any{"errors": FormatAllValidationErrors(err)})
	}
	ErrInvalidStatus = func(state string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeInvalidStatus, fmt.Sprintf(constvars.ErrClientInvalidStatus, state), fmt.Sprintf(constvars.ErrDevUnknownState, state))
	}
	ErrInvalidID = func(err error, resource, id string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeInvalidID, fmt.Sprintf(constvars.ErrClientInvalidID, resource, id), constvars.ErrDevInvalidInput)
	}
	ErrInvalidPage = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeInvalidPage, constvars.ErrClientInvalidPage, constvars.ErrDevInvalidPaginationParams)
	}
	ErrInvalidPageSize = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeInvalidPageSize, constvars.ErrClientInvalidPageSize, constvars.ErrDevInvalidPaginationParams)
	}
	ErrMissingParams = func(params ...string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeMissingParams, fmt.Sprintf(constvars.ErrClientMissingParams, strings.Join(params, ", ")), constvars.ErrDevMissingRequiredParams).
			WithDetails(map[string]any{"required": params})
	}
	ErrSearchCriteriaRequired = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeMissingParams, constvars.ErrClientSearchCriteriaRequired, constvars.ErrDevSearchCriteriaRequired)
	}
	ErrInvalidTimeOfDay = func(value string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidTimeOfDay, value))
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeInvalidBody, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Lookup
	ErrNotFound = func(resource, id string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrCodeNotFound, fmt.Sprintf(constvars.ErrClientResourceNotFound, resource), fmt.Sprintf(constvars.ErrDevResourceNotFound, resource, id))
	}
	ErrRouteNotFound = func(method, path string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrCodeNotFound, fmt.Sprintf(constvars.ErrClientRouteNotFound, method, path), constvars.ErrDevRouteNotFound)
	}

	// Server
	ErrTooManyRequests = func(key string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrCodeRateLimited, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevRateLimitExceeded, key))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrCodeTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPanicRecovered)
	}
)
