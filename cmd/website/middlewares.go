package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/sessions"
	"github.com/adampresley/scoutgallery/pkg/models"
)

func newAdminMiddleware(sessionService sessions.Session[*models.Admin], excludedPaths []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				err          error
				sessionAdmin *models.Admin
			)

			path := r.URL.Path

			/*
			 * If this path is excluded, keep going.
			 */
			for _, excludedPath := range excludedPaths {
				if strings.HasPrefix(path, excludedPath) {
					next.ServeHTTP(w, r)
					return
				}
			}

			if sessionAdmin, err = sessionService.Get(r); err != nil || sessionAdmin == nil {
				redirectToLogin(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), "admin", sessionAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

/*
htmx swaps the body of a redirect into the target element, so partial
requests are told to navigate instead.
*/
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	if httphelpers.IsHtmx(r) {
		w.Header().Set("HX-Redirect", "/admin/login")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
