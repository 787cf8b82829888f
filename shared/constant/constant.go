package constant

import (
	"time"
)

const (
	TargetTimezone = "America/Mexico_City"
	HostTimezone   = "Local"
	DefaultLocale  = "es_MX"
)

const (
	TickInterval = time.Second

	MillisPerSecond = int64(1000)
	MillisPerMinute = 60 * MillisPerSecond
	MillisPerHour   = 60 * MillisPerMinute
	MillisPerDay    = 24 * MillisPerHour
)

const (
	DefaultCountdownTitle = "Countdown"
	DefaultCivilTime      = "00:00:00"
)

const (
	CivilDateLayout     = "2006-01-02"
	CivilTimeLayout     = "15:04:05"
	CivilDateTimeLayout = CivilDateLayout + "T" + CivilTimeLayout
	DateFormat          = time.RFC3339
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
	OtelEventScopeName   = "event"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderCacheControl       = "Cache-Control"
	RequestHeaderConnection         = "Connection"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON        = "application/json"
	ContentTypeHTML        = "text/html; charset=utf-8"
	ContentTypeEventStream = "text/event-stream"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	Empty = ""
)
