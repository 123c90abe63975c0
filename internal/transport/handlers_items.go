package transport

import (
	"net/http"
	"strconv"

	"github.com/atelierdoces/backoffice/internal/domain/activity"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListCakes(w http.ResponseWriter, r *http.Request) {
	cakes, err := s.cakes.ListByProject(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cakes": cakes})
}

func (s *Server) handleCreateCake(w http.ResponseWriter, r *http.Request) {
	var req createCakeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ck, err := s.cakes.Create(r.Context(), req.domain(chi.URLParam(r, "projectID")))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "cake", ck.ID, activity.ActionCreated, s.actorID(r), "cake added to project")
	writeJSON(w, http.StatusCreated, ck)
}

func (s *Server) handleUpdateCake(w http.ResponseWriter, r *http.Request) {
	var req updateCakeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ck, err := s.cakes.Update(r.Context(), req.domain(chi.URLParam(r, "cakeID")))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "cake", ck.ID, activity.ActionUpdated, s.actorID(r), "cake updated")
	writeJSON(w, http.StatusOK, ck)
}

func (s *Server) handleDeleteCake(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cakeID")
	if err := s.cakes.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "cake", id, activity.ActionDeleted, s.actorID(r), "cake removed")
	writeJSON(w, http.StatusOK, ActionResult{Success: true})
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	payments, err := s.payments.ListByProject(r.Context(), projectID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	paid, err := s.payments.Balance(r.Context(), projectID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"payments":   payments,
		"paid_cents": paid,
	})
}

func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := s.payments.Create(r.Context(), req.domain(chi.URLParam(r, "projectID")))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "payment", p.ID, activity.ActionCreated, s.actorID(r), "payment recorded")
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleDeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "paymentID")
	if err := s.payments.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "payment", id, activity.ActionDeleted, s.actorID(r), "payment removed")
	writeJSON(w, http.StatusOK, ActionResult{Success: true})
}

func (s *Server) handleListActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := activity.ListOptions{
		EntityType: q.Get("entity_type"),
		EntityID:   q.Get("entity_id"),
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		opts.Limit = limit
	}

	entries, err := s.activity.List(r.Context(), opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"activity": entries})
}
