package response

import (
	"bytes"
	"countdown/shared/constant"
	"countdown/shared/failure"
	"countdown/shared/logger"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg})
}

// WithHTML renders the template into a buffer first so a failing template
// produces an error response instead of a truncated page.
func WithHTML(writer http.ResponseWriter, code int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logger.ErrorWithStack(err)
		WithError(writer, failure.InternalError(fmt.Errorf("failed to render page: %w", err)))

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if _, err := buf.WriteTo(writer); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithEventStream prepares the writer for server-sent events.
func WithEventStream(writer http.ResponseWriter) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeEventStream)
	writer.Header().Set(constant.RequestHeaderCacheControl, "no-cache")
	writer.Header().Set(constant.RequestHeaderConnection, "keep-alive")
	writer.WriteHeader(http.StatusOK)
}

// WithEvent writes one server-sent event carrying the JSON payload.
func WithEvent(writer io.Writer, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err = fmt.Fprintf(writer, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	if flusher, ok := writer.(http.Flusher); ok {
		flusher.Flush()
	}

	return nil
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

func response(writer http.ResponseWriter, code int, payload interface{}) {
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
