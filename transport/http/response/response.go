package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"venuebook/shared/constant"
	"venuebook/shared/failure"
	"venuebook/shared/logger"
)

const (
	HeaderTotalCount = "X-Total-Count"
	HeaderTotalPage  = "X-Total-Page"

	messageInternalError = "internal server error"
)

type Message struct {
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends payload as the whole response body
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithTotal sets the listing headers before the body is written.
func WithTotal(writer http.ResponseWriter, total, totalPage int) {
	writer.Header().Set(HeaderTotalCount, strconv.Itoa(total))
	writer.Header().Set(HeaderTotalPage, strconv.Itoa(totalPage))
}

// WithError sends a failure.Failure body. Client errors keep their message; anything
// without a Failure in its chain is reported as a bare 500.
func WithError(writer http.ResponseWriter, err error) {
	var fail *failure.Failure
	if errors.As(err, &fail) && fail.Code < http.StatusInternalServerError {
		response(writer, fail.Code, fail)

		return
	}

	logger.ErrorWithStack(err)

	response(writer, http.StatusInternalServerError, failure.Failure{
		Code:    http.StatusInternalServerError,
		Message: messageInternalError,
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
