package middlewares

import (
	"clinic-bridge-service/internal/app/config"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access log line per request.
func (m *Middlewares) RequestLogger(appConfig config.App, log *logrus.Logger) func(next http.Handler) http.Handler {
	tz, err := time.LoadLocation(appConfig.Timezone)
	if err != nil {
		log.Warnf("Invalid time zone %q, falling back to UTC: %v", appConfig.Timezone, err)
		tz = time.UTC
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				constvars.LoggingRequestIDKey:  utils.GetRequestID(r.Context()),
				constvars.LoggingRemoteAddrKey: r.RemoteAddr,
				constvars.LoggingMethodKey:     r.Method,
				constvars.LoggingEndpointKey:   r.RequestURI,
				constvars.LoggingStatusCodeKey: rec.statusCode,
				constvars.LoggingDurationKey:   time.Since(start).String(),
			}).Info(time.Now().In(tz).Format(time.RFC850))
		})
	}
}
