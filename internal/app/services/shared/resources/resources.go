// Package resources holds the fetch, map and filter steps shared by every
// resource usecase.
package resources

import (
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/fieldmap"
	"clinic-bridge-service/internal/pkg/metrics"
	"clinic-bridge-service/internal/pkg/utils"
	"context"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Fetch calls the upstream and decodes its payload into records.
func Fetch(ctx context.Context, client contracts.UpstreamClient, method, path string, query url.Values, body interface{}) ([]fieldmap.Record, error) {
	raw, err := client.Call(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	records, err := fieldmap.DecodeRecords(raw)
	if err != nil {
		return nil, exceptions.ErrUpstreamDecode(err, path)
	}
	return records, nil
}

// MapRecords maps each record, dropping and logging the ones that fail.
func MapRecords[T any](
	ctx context.Context,
	log *zap.Logger,
	upstreamMetrics *metrics.UpstreamMetrics,
	resource string,
	records []fieldmap.Record,
	mapper func(fieldmap.Record) (T, error),
) []T {
	mapped := make([]T, 0, len(records))
	for _, record := range records {
		item, err := mapper(record)
		if err != nil {
			upstreamMetrics.ObserveDroppedRecord(resource)
			log.Warn("resources.MapRecords dropped record",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingResourceKey, resource),
				zap.Error(err),
			)
			continue
		}
		mapped = append(mapped, item)
	}
	return mapped
}

// LogDegradedList records a list call that is answered empty because the upstream failed.
func LogDegradedList(ctx context.Context, log *zap.Logger, resource string, err error) {
	log.Warn("upstream failure while listing, answering with an empty result",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.Error(err),
	)
}

// ParseID converts a path identifier to the integer the upstream expects.
func ParseID(resource, id string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return 0, exceptions.ErrInvalidID(err, resource, id)
	}
	return value, nil
}

// OptionalID is ParseID for filters: an empty value yields nil.
func OptionalID(resource, id string) (*int, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	value, err := ParseID(resource, id)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// IsEmptyOrMissing reports whether a by-id lookup should answer "not found".
func IsEmptyOrMissing(err error) bool {
	return exceptions.IsUpstreamStatus(err, constvars.StatusNotFound)
}

// First returns a pointer to the first item, or nil for an empty slice.
func First[T any](items []T) *T {
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}
