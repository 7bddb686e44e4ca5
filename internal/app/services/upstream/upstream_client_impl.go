package upstream

import (
	"bytes"
	"clinic-bridge-service/internal/app/config"
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/fieldmap"
	"clinic-bridge-service/internal/pkg/metrics"
	"clinic-bridge-service/internal/pkg/utils"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxLoggedBodyLength = 512

type upstreamClient struct {
	BaseUrl    string
	AuthMode   string
	Username   string
	APIVersion string
	HTTPClient *http.Client
	Tokens     contracts.TokenProvider
	Log        *zap.Logger
	Metrics    *metrics.UpstreamMetrics
}

func NewUpstreamClient(
	upstreamConfig config.Upstream,
	tokens contracts.TokenProvider,
	logger *zap.Logger,
	upstreamMetrics *metrics.UpstreamMetrics,
) contracts.UpstreamClient {
	timeout := time.Duration(upstreamConfig.TimeoutInMillis) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &upstreamClient{
		BaseUrl:    strings.TrimSuffix(upstreamConfig.BaseUrl, "/"),
		AuthMode:   upstreamConfig.AuthMode,
		Username:   upstreamConfig.Username,
		APIVersion: upstreamConfig.APIVersion,
		HTTPClient: &http.Client{Timeout: timeout},
		Tokens:     tokens,
		Log:        logger,
		Metrics:    upstreamMetrics,
	}
}

// Call sends one request and, when the upstream answers 401, invalidates the
// credential and sends it exactly once more.
func (c *upstreamClient) Call(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("upstreamClient.Call called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingUpstreamPathKey, path),
	)

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			c.Log.Error("upstreamClient.Call error marshaling body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrUpstreamInternal(err, constvars.ErrDevCannotMarshalJSON)
		}
	}

	responseBody, statusCode, err := c.send(ctx, method, path, query, payload)
	if err != nil {
		return nil, err
	}

	if statusCode == http.StatusUnauthorized {
		c.Log.Warn("upstreamClient.Call received 401, refreshing credential and replaying once",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamPathKey, path),
		)
		c.Tokens.Invalidate()
		responseBody, statusCode, err = c.send(ctx, method, path, query, payload)
		if err != nil {
			return nil, err
		}
	}

	if statusCode < 200 || statusCode >= 300 {
		c.Log.Error("upstreamClient.Call non-success status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamPathKey, path),
			zap.Int(constvars.LoggingUpstreamStatusKey, statusCode),
			zap.String("body", truncate(responseBody, maxLoggedBodyLength)),
		)
		return nil, buildAPIError(method, path, statusCode, responseBody)
	}

	c.Log.Info("upstreamClient.Call succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamPathKey, path),
		zap.Int(constvars.LoggingUpstreamStatusKey, statusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(responseBody)),
	)
	return responseBody, nil
}

func (c *upstreamClient) send(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, int, error) {
	token, err := c.Tokens.Token(ctx)
	if err != nil {
		return nil, 0, err
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), bodyReader)
	if err != nil {
		return nil, 0, exceptions.ErrUpstreamInternal(err, constvars.ErrDevCreateHTTPRequest)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if c.APIVersion != "" {
		req.Header.Set(constvars.HeaderXAPIVersion, c.APIVersion)
	}
	if authorization := c.authorizationHeader(token); authorization != "" {
		req.Header.Set(constvars.HeaderAuthorization, authorization)
	}
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Metrics.ObserveCall(path, "unavailable", time.Since(start).Seconds())
		c.Log.Error("upstreamClient.send transport failure",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUpstreamPathKey, path),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrUpstreamUnavailable(err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Metrics.ObserveCall(path, "unavailable", time.Since(start).Seconds())
		return nil, 0, exceptions.ErrUpstreamUnavailable(err)
	}

	c.Metrics.ObserveCall(path, outcomeOf(resp.StatusCode), time.Since(start).Seconds())
	return responseBody, resp.StatusCode, nil
}

func (c *upstreamClient) buildURL(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target := c.BaseUrl + path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}

func (c *upstreamClient) authorizationHeader(token string) string {
	if token == "" {
		return ""
	}
	if c.AuthMode == constvars.UpstreamAuthModeBearer {
		return "Bearer " + token
	}
	credentials := base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + token))
	return "Basic " + credentials
}

// buildAPIError keeps the upstream message and body so callers see why the
// upstream refused the request.
func buildAPIError(method, path string, statusCode int, responseBody []byte) error {
	var details interface{}
	message := ""
	if len(bytes.TrimSpace(responseBody)) > 0 {
		var decoded interface{}
		if err := json.Unmarshal(responseBody, &decoded); err == nil {
			details = decoded
			if record, ok := decoded.(map[string]interface{}); ok {
				message = fieldmap.Record(record).String("message", "mensagem")
			}
		} else {
			details = truncate(responseBody, maxLoggedBodyLength)
		}
	}
	return exceptions.ErrUpstreamAPI(method, path, statusCode, message, details)
}

func outcomeOf(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "success"
	case statusCode == http.StatusUnauthorized:
		return "unauthorized"
	case statusCode >= 400 && statusCode < 500:
		return "client_error"
	default:
		return "server_error"
	}
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
