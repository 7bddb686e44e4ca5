package utils

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/responses"
	"clinic-bridge-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildMetadata() responses.Metadata {
	return responses.Metadata{
		Timestamp: Timestamp(),
		Version:   GetEnvString("APP_VERSION", "v1"),
	}
}

// BuildJSONResponse writes body as-is, for routes that answer with bare arrays or objects.
func BuildJSONResponse(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func BuildSuccessResponse(w http.ResponseWriter, code int, data interface{}) {
	BuildJSONResponse(w, code, responses.ResponseDTO{
		Success:  true,
		Data:     data,
		Metadata: BuildMetadata(),
	})
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, pagination *responses.Pagination, data interface{}) {
	BuildJSONResponse(w, code, responses.ResponseDTO{
		Success:    true,
		Data:       data,
		Pagination: pagination,
		Metadata:   BuildMetadata(),
	})
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	detail := responses.ErrorDetail{
		Code:    constvars.ErrCodeInternal,
		Message: constvars.ErrClientSomethingWrongWithApplication,
	}

	customErr, isCustom := exceptions.AsCustomError(err)
	if isCustom {
		code = customErr.StatusCode
		detail.Code = customErr.Code
		detail.Message = customErr.ClientMessage
		detail.Details = customErr.Details
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String("code", customErr.Code),
				zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
				zap.Any("location", location),
			)
		}
	} else {
		log.Error(err.Error())
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if isCustom && appEnvironment != constvars.AppEnvProduction {
		detail.DevMessage = customErr.DevMessage
		detail.Locations = customErr.Locations
	}

	BuildJSONResponse(w, code, responses.ErrorResponseDTO{
		Success:  false,
		Error:    detail,
		Metadata: BuildMetadata(),
	})
}
