// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered through
// [chi.Mux.MethodNotAllowed]. It answers 404 instead of chi's 405, so a
// caller probing with the wrong method cannot tell that the path exists.
//
// Routes are matched by exact pattern against [http.Request.URL.Path];
// parameterised segments are not expanded. If the method turns out to be
// registered after all, the request goes through the router as usual.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		routes := router.Routes()
		i := slices.IndexFunc(routes, func(route chi.Route) bool {
			return route.Pattern == r.URL.Path
		})

		if i < 0 || routes[i].Handlers[r.Method] == nil {
			logger.FromRequest(r).Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("method is not served on this path")
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
