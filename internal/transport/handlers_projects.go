package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/atelierdoces/backoffice/internal/domain/activity"
	"github.com/atelierdoces/backoffice/internal/domain/project"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := project.ListOptions{
		CustomerID: q.Get("customer_id"),
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		opts.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil {
		opts.Offset = offset
	}
	for _, st := range q["status"] {
		opts.Statuses = append(opts.Statuses, project.Status(st))
	}

	summaries, err := s.projects.List(r.Context(), opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": summaries})
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	proj, err := s.projects.Create(r.Context(), req.domain())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "project", proj.ID, activity.ActionCreated, s.actorID(r), "project "+proj.Name+" created")
	writeJSON(w, http.StatusCreated, proj)
}

// handleUpcomingProjects serves the "at a glance" dashboard: open
// projects bucketed into this week and next week relative to today.
func (s *Server) handleUpcomingProjects(w http.ResponseWriter, r *http.Request) {
	today := time.Now()
	if raw := r.URL.Query().Get("today"); raw != "" {
		d, err := project.DateOnly(raw)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		today = d
	}

	buckets, err := s.projects.Upcoming(r.Context(), today)
	if err != nil {
		s.logError(r, "upcoming projects failed", err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

func (s *Server) handleProjectBoard(w http.ResponseWriter, r *http.Request) {
	buckets, err := s.projects.Board(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.projects.Get(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var req updateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	proj, err := s.projects.Update(r.Context(), req.domain(chi.URLParam(r, "projectID")))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "project", proj.ID, activity.ActionUpdated, s.actorID(r), "project "+proj.Name+" updated")
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleTransitionProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status project.Status `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	proj, err := s.projects.Transition(r.Context(), chi.URLParam(r, "projectID"), req.Status)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "project", proj.ID, activity.ActionTransition, s.actorID(r), "status set to "+string(proj.Status))
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "projectID")
	if err := s.projects.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "project", id, activity.ActionDeleted, s.actorID(r), "project deleted")
	writeJSON(w, http.StatusOK, ActionResult{Success: true})
}
