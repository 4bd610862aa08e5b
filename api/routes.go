package api

import (
	"net/http"

	"github.com/International-Combat-Archery-Alliance/activity-signup/web"
	"github.com/getkin/kin-openapi/openapi3"
)

type HandlerOptions struct {
	// AllowedOrigins is only consulted in PROD, LOCAL allows every origin.
	AllowedOrigins []string
	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler http.Handler
}

// Handler builds the full HTTP surface: the validated activity API, the landing page
// assets, the root redirect and the operational endpoints.
func (a *API) Handler(swagger *openapi3.T, opts HandlerOptions) http.Handler {
	apiMux := http.NewServeMux()
	HandlerFromMux(NewStrictHandler(a, []StrictMiddlewareFunc{tracingMiddleware()}), apiMux)
	validated := a.openapiValidateMiddleware(swagger)(apiMux)

	r := http.NewServeMux()
	r.Handle("/activities", validated)
	r.Handle("/activities/", validated)
	r.Handle("/static/", web.StaticHandler())
	r.HandleFunc("GET /{$}", web.RedirectToIndex)
	r.HandleFunc("GET /healthz", healthz)
	if opts.MetricsHandler != nil {
		r.Handle("GET /metrics", opts.MetricsHandler)
	}

	return useMiddlewares(r,
		a.loggingMiddleware(),
		a.requestIdMiddleware(),
		a.corsMiddleware(opts.AllowedOrigins),
	)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
