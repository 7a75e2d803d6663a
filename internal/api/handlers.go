package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/princeofgodman/figma-jobeee/internal/http/response"
)

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "ok",
	}, s.logger)
}

// handleSeed populates the catalog with the sample dataset. Seeding is
// idempotent, so repeated calls (or racing first-time clients) succeed
// without duplicating data.
func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	seeded, err := s.catalog.Seed(ctx)
	if err != nil {
		s.logger.Error("Failed to seed catalog", "error", err)
		// Seed reports failure in its own envelope, unlike the other routes.
		response.JSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to seed database",
		}, s.logger)
		return
	}

	message := "Database seeded successfully"
	if !seeded {
		message = "Database already seeded"
	}

	response.Success(w, map[string]any{
		"success": true,
		"message": message,
	}, s.logger)
}

// handleListStories returns all stories with their authors attached.
func (s *Server) handleListStories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stories, err := s.catalog.ListStories(ctx)
	if err != nil {
		s.logger.Error("Failed to list stories", "error", err)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, stories, s.logger)
}

// handleListFeed returns the combined thread and quiz feed, newest first.
func (s *Server) handleListFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := s.catalog.ListFeed(ctx)
	if err != nil {
		s.logger.Error("Failed to list feed", "error", err)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, items, s.logger)
}

// handleGetThread returns a single thread with its company and comments.
func (s *Server) handleGetThread(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if id == "" {
		response.BadRequest(w, "Thread ID is required", s.logger)
		return
	}

	thread, err := s.catalog.GetThread(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, thread, s.logger)
}

// handleListAclonas returns the right-panel content with companies attached.
func (s *Server) handleListAclonas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	aclonas, err := s.catalog.ListAclonas(ctx)
	if err != nil {
		s.logger.Error("Failed to list aclonas", "error", err)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, aclonas, s.logger)
}

// handleCreateComment refuses server-side comment writes. Comments live in
// the client-local overlay store.
func (s *Server) handleCreateComment(w http.ResponseWriter, _ *http.Request) {
	response.Forbidden(w, "Comments are stored locally only. Use the local overlay store on the client.", s.logger)
}

// handleLikeThread refuses server-side like writes. Likes live in the
// client-local overlay store.
func (s *Server) handleLikeThread(w http.ResponseWriter, _ *http.Request) {
	response.Forbidden(w, "Likes are stored locally only. Use the local overlay store on the client.", s.logger)
}
