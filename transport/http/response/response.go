package response

import (
	"encoding/json"
	"net/http"
	"safar/shared/constant"
	"safar/shared/failure"
	"safar/shared/logger"
)

// Envelope is the uniform response body: every endpoint answers with
// {success, message, data}, data being null when there is nothing to return.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// WithMessage sends a successful response carrying only a message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: true, Message: message})
}

// WithJSON sends a successful response containing a JSON payload.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Envelope{Success: true, Message: "OK", Data: jsonPayload})
}

// WithError sends a failed response; the status code is taken from the
// failure kind carried by err, defaulting to 500.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	response(writer, code, Envelope{Success: false, Message: err.Error()})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Envelope{Success: false, Message: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Envelope{Success: false, Message: constant.ResponseErrorPrepareShutdown})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Envelope{Success: false, Message: constant.ResponseErrorUnhealthy})
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(body)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
