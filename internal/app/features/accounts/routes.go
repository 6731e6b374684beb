// internal/app/features/accounts/routes.go
package accounts

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for registration, login and logout. It is
// mounted under /api.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/admin", h.HandleRegisterAdmin)
	r.Post("/login", h.HandleLogin)
	r.Get("/logout", h.HandleLogout)

	return r
}
