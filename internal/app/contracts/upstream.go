package contracts

import (
	"context"
	"net/url"
)

// UpstreamClient performs authenticated calls against the clinic management
// system and returns the raw JSON body of 2xx responses.
type UpstreamClient interface {
	Call(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error)
}

type TokenProvider interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}
