package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/google/uuid"
	middleware "github.com/oapi-codegen/nethttp-middleware"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const requestIdHeader = "X-Request-Id"

var tracer = otel.Tracer("github.com/International-Combat-Archery-Alliance/activity-signup/api")

type middlewareFunc func(next http.Handler) http.Handler

func useMiddlewares(h http.Handler, middlewares ...middlewareFunc) http.Handler {
	s := h

	for _, mw := range middlewares {
		s = mw(s)
	}

	return s
}

func (a *API) requestIdMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestId := uuid.New()
			w.Header().Set(requestIdHeader, requestId.String())

			ctx := ctxWithRequestId(r.Context(), requestId)
			ctx = ctxWithLogger(ctx, a.logger.With(slog.String("request-id", requestId.String())))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// loggingMiddleware must run inside requestIdMiddleware so the access log carries the request id.
func (a *API) loggingMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			loggingRW := newLoggingResponseWriter(w)

			// process the request
			next.ServeHTTP(loggingRW, r)

			getLoggerFromCtx(r.Context(), a.logger).InfoContext(r.Context(),
				"Access log",
				slog.String("latency", formatDuration(time.Since(start))),
				slog.Int64("request-content-length", r.ContentLength),
				slog.Int("resp-body-size", loggingRW.responseSize),
				slog.String("host", r.Host),
				slog.String("method", r.Method),
				slog.Int("status-code", loggingRW.statusCode),
				slog.String("path", r.URL.Path),
			)
		})
	}
}

func (a *API) openapiValidateMiddleware(swagger *openapi3.T) middlewareFunc {
	return middleware.OapiRequestValidatorWithOptions(swagger, &middleware.Options{
		ErrorHandlerWithOpts: func(ctx context.Context, err error, w http.ResponseWriter, r *http.Request, opts middleware.ErrorHandlerOpts) {
			var e Error

			var requestErr *openapi3filter.RequestError
			if errors.As(err, &requestErr) {
				e = Error{
					Detail: err.Error(),
					Code:   InputValidationError,
				}
			} else if opts.StatusCode == http.StatusNotFound {
				e = Error{
					Detail: "Route not found",
					Code:   NotFound,
				}
			} else {
				e = Error{
					Detail: err.Error(),
					Code:   InternalError,
				}
			}
			jsonBody, err := json.Marshal(&e)
			if err != nil {
				a.logger.Error("failed to marshal input validation error resp", "error", err)
				jsonBody = []byte(`{"detail": "input is invalid", "code": "InputValidationError"}`)
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(opts.StatusCode)
			w.Write(jsonBody)
		},
	})
}

func (a *API) corsMiddleware(allowedOrigins []string) middlewareFunc {
	var serverCors *cors.Cors

	switch a.env {
	case PROD:
		serverCors = cors.New(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
			MaxAge:         300,
		})
	default:
		serverCors = cors.AllowAll()
	}

	return serverCors.Handler
}

// tracingMiddleware opens one span per API operation.
func tracingMiddleware() StrictMiddlewareFunc {
	return func(f StrictHandlerFunc, operationID string) StrictHandlerFunc {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error) {
			ctx, span := tracer.Start(ctx, operationID,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.path", r.URL.Path),
				),
			)
			defer span.End()

			if requestId, ok := getRequestIdFromCtx(ctx); ok {
				span.SetAttributes(attribute.String("api.request_id", requestId.String()))
			}

			return f(ctx, w, r, request)
		}
	}
}

// formatDuration formats a duration to one decimal point.
func formatDuration(d time.Duration) string {
	div := time.Duration(10)
	switch {
	case d > time.Second:
		d = d.Round(time.Second / div)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond / div)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond / div)
	case d > time.Nanosecond:
		d = d.Round(time.Nanosecond / div)
	}
	return d.String()
}
