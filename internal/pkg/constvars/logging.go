package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingUpstreamPathKey   = "upstream_path"
	LoggingUpstreamStatusKey = "upstream_status"
	LoggingResourceKey       = "resource"
	LoggingRecordsKey        = "records"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorKey          = "error"
)
