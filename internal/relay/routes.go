// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package relay

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/session-foundation/configsync/models"
)

// Init wires the relay's routes. Token issuance is the only
// unauthenticated endpoint; everything else requires a bearer token whose
// subject names the owner namespace being touched.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/relay/token", h.issueToken)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/relay/messages/{namespace}", h.storeMessage)
		r.Get("/api/relay/messages", h.retrieveMessages)
		r.Post("/api/relay/messages/delete", h.deleteMessages)
		r.Get("/api/relay/notify", h.notify)
	})

	return router
}

// namespaceFromRequest resolves the {namespace} URL segment to a document
// type. Both the numeric form ("2") and the label form ("contacts") are
// accepted.
func namespaceFromRequest(r *http.Request) (models.DocumentType, bool) {
	raw := chi.URLParam(r, "namespace")

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		typ := models.DocumentType(n)
		return typ, typ.Valid()
	}

	return models.ParseDocumentType(raw)
}

// sinceFromRequest parses the optional "since" query parameter (Unix
// seconds); absent means everything.
func sinceFromRequest(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
