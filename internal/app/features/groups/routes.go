// internal/app/features/groups/routes.go
package groups

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the groups endpoints, mounted under
// /api/groups.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)
	r.Get("/{name}", h.HandleView)
	r.Patch("/{name}/{action}", h.HandleMutateMembers)
	r.Delete("/", h.HandleDelete)

	return r
}
