package rest

import "net/http"

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Auth      *AuthHandler
	Users     *UserHandler
	Languages *LanguageHandler
	Words     *WordHandler
	Health    *HealthHandler
}

// NewRouter builds the HTTP route table. Authentication is enforced by
// the service layer via the request context; the router itself does
// not gate any route.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	mux.HandleFunc("POST /v1/auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /v1/auth/login", deps.Auth.Login)
	mux.HandleFunc("POST /v1/auth/refresh", deps.Auth.Refresh)
	mux.HandleFunc("POST /v1/auth/logout", deps.Auth.Logout)

	mux.HandleFunc("GET /v1/users/me", deps.Users.GetProfile)
	mux.HandleFunc("PUT /v1/users/me", deps.Users.UpdateProfile)

	mux.HandleFunc("POST /v1/languages", deps.Languages.Create)
	mux.HandleFunc("GET /v1/languages", deps.Languages.List)
	mux.HandleFunc("GET /v1/languages/{id}", deps.Languages.Get)
	mux.HandleFunc("PUT /v1/languages/{id}", deps.Languages.Update)
	mux.HandleFunc("DELETE /v1/languages/{id}", deps.Languages.Delete)

	mux.HandleFunc("POST /v1/languages/{id}/words", deps.Words.Create)
	mux.HandleFunc("GET /v1/languages/{id}/words", deps.Words.List)
	mux.HandleFunc("POST /v1/languages/{id}/validate", deps.Words.Validate)
	mux.HandleFunc("POST /v1/languages/{id}/transliterate", deps.Words.Transliterate)

	mux.HandleFunc("GET /v1/words/{id}", deps.Words.Get)
	mux.HandleFunc("PUT /v1/words/{id}", deps.Words.Update)
	mux.HandleFunc("DELETE /v1/words/{id}", deps.Words.Delete)

	return mux
}
