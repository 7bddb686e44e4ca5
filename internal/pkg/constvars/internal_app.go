package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLNB_SVC_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	DefaultPage          = 1
	DefaultPageSize      = 20
	MaxPageSize          = 100
	DefaultSlotDuration  = 30
	ClientSearchMaxItems = 50
)

const (
	UpstreamAuthModeBasic  = "basic"
	UpstreamAuthModeBearer = "bearer"
)
