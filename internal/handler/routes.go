package handlers

import (
	"net/http"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Routes registers the public and authenticated API on router. authenticate
// guards everything except register, login and the root pages; limit applies
// to the /api/auth subtree.
//
// Each path is registered once and dispatched on method, so an unsupported
// method on a known path answers 405 with an Allow header.
func (h *Handlers) Routes(router *mux.Router, authenticate, limit mux.MiddlewareFunc) {
	router.Handle("/", ghandlers.MethodHandler{
		http.MethodGet: http.HandlerFunc(HomeHandler),
	})
	router.Handle("/health", ghandlers.MethodHandler{
		http.MethodGet: http.HandlerFunc(h.HealthHandler),
	})

	authRouter := router.PathPrefix("/api/auth").Subrouter()
	authRouter.Use(limit)
	authRouter.Handle("/register", ghandlers.MethodHandler{
		http.MethodPost: http.HandlerFunc(h.Register),
	})
	authRouter.Handle("/login", ghandlers.MethodHandler{
		http.MethodPost: http.HandlerFunc(h.Login),
	})
	authRouter.Handle("/me", ghandlers.MethodHandler{
		http.MethodGet: authenticate(http.HandlerFunc(h.Me)),
	})
	authRouter.Handle("/upload-photo", ghandlers.MethodHandler{
		http.MethodPost: authenticate(http.HandlerFunc(h.UploadPhoto)),
	})

	api := router.PathPrefix("/api").Subrouter()
	api.Use(authenticate)

	api.Handle("/users", ghandlers.MethodHandler{
		http.MethodGet: http.HandlerFunc(h.ListUsers),
	})

	api.Handle("/incidents", ghandlers.MethodHandler{
		http.MethodPost: http.HandlerFunc(h.CreateIncident),
		http.MethodGet:  http.HandlerFunc(h.ListIncidents),
	})
	api.Handle("/incidents/{id}", ghandlers.MethodHandler{
		http.MethodGet: http.HandlerFunc(h.GetIncident),
	})
	api.Handle("/incidents/{id}/status", ghandlers.MethodHandler{
		http.MethodPut: http.HandlerFunc(h.UpdateIncidentStatus),
	})

	api.Handle("/missing", ghandlers.MethodHandler{
		http.MethodPost: http.HandlerFunc(h.ReportMissingPerson),
		http.MethodGet:  http.HandlerFunc(h.ListMissingPersons),
	})
	api.Handle("/missing/{id}", ghandlers.MethodHandler{
		http.MethodGet: http.HandlerFunc(h.GetMissingPerson),
	})
	api.Handle("/missing/{id}/status", ghandlers.MethodHandler{
		http.MethodPut: http.HandlerFunc(h.UpdateMissingPersonStatus),
	})

	api.Handle("/community", ghandlers.MethodHandler{
		http.MethodPost: http.HandlerFunc(h.CreatePost),
		http.MethodGet:  http.HandlerFunc(h.ListPosts),
	})
	// feed before {id}
	api.Handle("/community/feed", ghandlers.MethodHandler{
		http.MethodGet: http.HandlerFunc(h.Feed),
	})
	api.Handle("/community/{id}", ghandlers.MethodHandler{
		http.MethodGet:    http.HandlerFunc(h.GetPost),
		http.MethodDelete: http.HandlerFunc(h.DeletePost),
	})

	markSafe := ghandlers.MethodHandler{
		http.MethodPost: http.HandlerFunc(h.MarkSafe),
	}
	api.Handle("/sos", ghandlers.MethodHandler{
		http.MethodPost: http.HandlerFunc(h.CreateSOS),
		http.MethodGet:  http.HandlerFunc(h.ListActiveSOS),
	})
	api.Handle("/sos/nearby", ghandlers.MethodHandler{
		http.MethodGet: http.HandlerFunc(h.NearbySOS),
	})
	api.Handle("/sos/safe", markSafe)
	api.Handle("/sos/{id}/status", ghandlers.MethodHandler{
		http.MethodPut: http.HandlerFunc(h.UpdateSOSStatus),
	})
	api.Handle("/safe", markSafe)
}
