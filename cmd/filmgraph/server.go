package main

import (
	"net/http"
	"strings"

	"filmgraph/internal/app/films"
	"filmgraph/internal/app/genres"
	"filmgraph/internal/app/ratings"
	"filmgraph/internal/app/users"
	"filmgraph/internal/httpapi"
	"filmgraph/internal/middleware"
	"filmgraph/internal/store"
	"filmgraph/internal/validate"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	check := validate.NewChecker(dataStore)

	filmSvc := films.New(dataStore, check)
	userSvc := users.New(dataStore, check)
	genreSvc := genres.New(dataStore)
	ratingSvc := ratings.New(dataStore)

	handler := httpapi.New(filmSvc, userSvc, genreSvc, ratingSvc).Routes()

	chain := []func(http.Handler) http.Handler{
		middleware.Recovery(),
		middleware.RequestLogging(),
	}
	var wrapped http.Handler = withCORS(cfg.AllowedOrigins, handler)
	for i := len(chain) - 1; i >= 0; i-- {
		wrapped = chain[i](wrapped)
	}
	return wrapped
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization, X-Request-ID")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
