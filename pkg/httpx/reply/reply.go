package reply

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"nadlan_radar/pkg/contextx"
	"nadlan_radar/pkg/errcodes"
	"nadlan_radar/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// CodedError is implemented by domain errors carrying a stable error code.
type CodedError interface {
	error
	ErrorCode() errcodes.ErrorCode
	Description() string
}

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	code := errcodes.InternalServerError
	message := "internal server error"

	var coded CodedError
	if errors.As(err, &coded) {
		code = coded.ErrorCode()
		message = coded.Description()
	}

	response := errorResponse{
		Code:      code.String(),
		Message:   message,
		SupportID: supportID(ctx),
	}

	JSON(ctx, w, statusFromCode(code), response)
}

func statusFromCode(code errcodes.ErrorCode) int {
	switch code {
	case errcodes.ValidationError, errcodes.EmptyInput, errcodes.InvalidSourceURL:
		return http.StatusBadRequest
	case errcodes.NotFound, errcodes.ListingNotFound, errcodes.BenchmarkMissing:
		return http.StatusNotFound
	case errcodes.Forbidden:
		return http.StatusForbidden
	case errcodes.FetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
