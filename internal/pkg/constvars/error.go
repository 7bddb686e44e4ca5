package constvars

// Validation messages, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"numeric":  "must be numeric",
	"cpf":      "must be a valid CPF",
	"br_phone": "must have 10 or 11 digits",
	"hhmm":     "must be a time in HH:MM format",
	"date":     "must be a date in YYYY-MM-DD format",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Machine readable error codes rendered in the error envelope
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodeInvalidID          = "INVALID_ID"
	ErrCodeInvalidPage        = "INVALID_PAGE"
	ErrCodeInvalidPageSize    = "INVALID_PAGE_SIZE"
	ErrCodeMissingParams      = "MISSING_PARAMS"
	ErrCodeInvalidBody        = "INVALID_BODY"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeAPIError           = "API_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeTimeout            = "TIMEOUT"
	ErrCodeRateLimited        = "RATE_LIMITED"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientExternalAPIError              = "External API error"
	ErrClientExternalServiceUnavailable    = "External service is unavailable"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientRouteNotFound                 = "Route %s %s not found"
	ErrClientMissingParams                 = "Missing required parameters: %s"
	ErrClientInvalidStatus                 = "Invalid appointment state: %s"
	ErrClientInvalidID                     = "Invalid %s id: %s"
	ErrClientInvalidPage                   = "Page must be greater than 0"
	ErrClientInvalidPageSize               = "Page size must be between 1 and 100"
	ErrClientSearchCriteriaRequired        = "At least one search parameter is required: cpf, telefone, email or search"
	ErrClientTooManyRequests               = "Too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput            = "invalid input"
	ErrDevValidationFailed        = "validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON"
	ErrDevCannotMarshalJSON       = "cannot marshal JSON"
	ErrDevCreateHTTPRequest       = "failed to create HTTP request"
	ErrDevSendHTTPRequest         = "failed to send HTTP request"
	ErrDevUpstreamNonSuccess      = "upstream %s %s responded with status %d"
	ErrDevUpstreamDecode          = "failed to decode upstream response from %s"
	ErrDevUpstreamTokenRefresh    = "failed to obtain upstream access token"
	ErrDevServerDeadlineExceeded  = "server deadline exceeded"
	ErrDevUnknownState            = "unknown canonical state %q"
	ErrDevMappingMissingID        = "%s record has no identifier"
	ErrDevInvalidTimeOfDay        = "invalid time of day %q"
	ErrDevResourceNotFound        = "%s %s not found"
	ErrDevPanicRecovered          = "panic recovered while serving request"
	ErrDevPublishEvent            = "failed to publish event to queue %s"
	ErrDevUpstreamNotConfigured   = "upstream base url is not configured"
	ErrDevMissingRequiredParams   = "missing required parameters"
	ErrDevSearchCriteriaRequired  = "client search without criteria"
	ErrDevRouteNotFound           = "route not found"
	ErrDevInvalidPaginationParams = "invalid pagination parameters"
	ErrDevRateLimitExceeded       = "rate limit exceeded for %s"
)
