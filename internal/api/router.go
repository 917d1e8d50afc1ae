package api

import "net/http"

// RegisterRoutes mounts every /api route on mux behind bearer-token auth.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	authed := RequireAuth(h.verifier)
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, authed(fn))
	}

	// Practice sets
	handle("GET /api/practice-sets/{practiceSetID}", h.getPracticeSet)

	// Practice sessions
	handle("POST /api/practice-sessions", h.createSession)
	handle("GET /api/practice-sessions/recent", h.recentSessions)
	handle("POST /api/practice-sessions/{sessionID}/answers", h.addAnswer)
	handle("POST /api/practice-sessions/{sessionID}/complete", h.completeSession)
	handle("POST /api/practice-sessions/{sessionID}/explain", h.explainAnswer)
}
