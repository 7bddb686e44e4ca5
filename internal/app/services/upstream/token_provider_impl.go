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
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// tokenExpirySkew renews a token slightly before the upstream rejects it.
const tokenExpirySkew = 30 * time.Second

type staticTokenProvider struct {
	token string
}

func NewStaticTokenProvider(token string) contracts.TokenProvider {
	return &staticTokenProvider{token: token}
}

func (p *staticTokenProvider) Token(ctx context.Context) (string, error) {
	return p.token, nil
}

func (p *staticTokenProvider) Invalidate() {}

type loginTokenProvider struct {
	LoginUrl   string
	Login      string
	Password   string
	APIVersion string
	DefaultTTL time.Duration
	HTTPClient *http.Client
	Log        *zap.Logger
	Metrics    *metrics.UpstreamMetrics
	Now        func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

// NewLoginTokenProvider exchanges login and password for an access token and
// keeps it until it expires. Concurrent callers may refresh at the same time;
// the lock only protects the cached pair.
func NewLoginTokenProvider(upstreamConfig config.Upstream, logger *zap.Logger, upstreamMetrics *metrics.UpstreamMetrics) contracts.TokenProvider {
	timeout := time.Duration(upstreamConfig.TimeoutInMillis) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &loginTokenProvider{
		LoginUrl:   strings.TrimSuffix(upstreamConfig.BaseUrl, "/") + upstreamConfig.LoginPath,
		Login:      upstreamConfig.Login,
		Password:   upstreamConfig.Password,
		APIVersion: upstreamConfig.APIVersion,
		DefaultTTL: time.Duration(upstreamConfig.TokenTTLInMinutes) * time.Minute,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
		Metrics:    upstreamMetrics,
		Now:        time.Now,
	}
}

func (p *loginTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.RLock()
	token, expiresAt := p.token, p.expiresAt
	p.mu.RUnlock()

	if token != "" && p.Now().Before(expiresAt) {
		return token, nil
	}

	token, expiresAt, err := p.authenticate(ctx)
	if err != nil {
		p.Metrics.ObserveTokenRefresh(false)
		return "", err
	}
	p.Metrics.ObserveTokenRefresh(true)

	p.mu.Lock()
	p.token, p.expiresAt = token, expiresAt
	p.mu.Unlock()
	return token, nil
}

func (p *loginTokenProvider) Invalidate() {
	p.mu.Lock()
	p.token, p.expiresAt = "", time.Time{}
	p.mu.Unlock()
}

func (p *loginTokenProvider) authenticate(ctx context.Context) (string, time.Time, error) {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("loginTokenProvider.authenticate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := json.Marshal(map[string]string{
		"login":    p.Login,
		"password": p.Password,
	})
	if err != nil {
		return "", time.Time{}, exceptions.ErrUpstreamToken(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, p.LoginUrl, bytes.NewReader(payload))
	if err != nil {
		return "", time.Time{}, exceptions.ErrUpstreamToken(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if p.APIVersion != "" {
		req.Header.Set(constvars.HeaderXAPIVersion, p.APIVersion)
	}

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return "", time.Time{}, exceptions.ErrUpstreamToken(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", time.Time{}, exceptions.ErrUpstreamToken(err)
	}
	if resp.StatusCode != constvars.StatusOK {
		p.Log.Error("loginTokenProvider.authenticate rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		)
		return "", time.Time{}, exceptions.ErrUpstreamToken(fmt.Errorf("login responded with status %d", resp.StatusCode))
	}

	token, err := extractToken(body)
	if err != nil {
		return "", time.Time{}, exceptions.ErrUpstreamToken(err)
	}

	expiresAt := p.expiryOf(token)
	p.Log.Info("loginTokenProvider.authenticate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time("expires_at", expiresAt),
	)
	return token, expiresAt, nil
}

// expiryOf prefers the exp claim of JWT tokens and otherwise applies the configured TTL.
func (p *loginTokenProvider) expiryOf(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0).Add(-tokenExpirySkew)
		}
	}
	return p.Now().Add(p.DefaultTTL)
}

func extractToken(body []byte) (string, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, `"`) {
		var token string
		if err := json.Unmarshal(body, &token); err != nil {
			return "", err
		}
		return token, nil
	}

	record, err := fieldmap.DecodeRecord(body)
	if err != nil {
		return "", err
	}
	token := record.String("token", "access_token", "accessToken")
	if token == "" {
		return "", fmt.Errorf("login response carries no token")
	}
	return token, nil
}

// NewTokenProvider picks the static token when configured, otherwise the login exchange.
func NewTokenProvider(upstreamConfig config.Upstream, logger *zap.Logger, upstreamMetrics *metrics.UpstreamMetrics) contracts.TokenProvider {
	if upstreamConfig.StaticToken != "" {
		return NewStaticTokenProvider(upstreamConfig.StaticToken)
	}
	if upstreamConfig.Login != "" {
		return NewLoginTokenProvider(upstreamConfig, logger, upstreamMetrics)
	}
	logger.Warn("No upstream credential configured, requests will be sent without Authorization")
	return NewStaticTokenProvider("")
}
