package middleware

import (
	"countdown/config"
	"countdown/infras/otel"
	"countdown/shared/constant"
	"countdown/shared/failure"
	"countdown/transport/http/response"
	"crypto/subtle"
	"net/http"
)

// Auth guards the endpoints that change the running countdown.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey requires the X-API-Key header to match the configured key. Without a
// configured key every guarded request is refused.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		scope.SetAttribute("middleware.type", "api_key")

		if m.cfg.App.APIKey == constant.Empty {
			err := failure.Unavailable("reconfiguration is disabled")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == constant.Empty {
			response.WithError(writer, failure.MissingAPIKey)

			scope.TraceError(failure.MissingAPIKey)
			scope.End()

			return
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.App.APIKey)) != 1 {
			response.WithError(writer, failure.InvalidAPIKey)

			scope.TraceError(failure.InvalidAPIKey)
			scope.End()

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
