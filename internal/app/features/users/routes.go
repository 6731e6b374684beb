// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the users endpoints, mounted under
// /api/users.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Get("/{username}", h.HandleGet)
	r.Delete("/", h.HandleDelete)

	return r
}
