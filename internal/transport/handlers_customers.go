package transport

import (
	"net/http"
	"strconv"

	"github.com/atelierdoces/backoffice/internal/domain/activity"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	summaries, err := s.customers.List(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		s.logError(r, "listing customers failed", err)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"customers": summaries})
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cust, err := s.customers.Create(r.Context(), req.domain())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "customer", cust.ID, activity.ActionCreated, s.actorID(r), "customer "+cust.Name+" created")
	writeJSON(w, http.StatusCreated, cust)
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	cust, err := s.customers.Get(r.Context(), chi.URLParam(r, "customerID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cust)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req updateCustomerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cust, err := s.customers.Update(r.Context(), req.domain(chi.URLParam(r, "customerID")))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "customer", cust.ID, activity.ActionUpdated, s.actorID(r), "customer "+cust.Name+" updated")
	writeJSON(w, http.StatusOK, cust)
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "customerID")
	if err := s.customers.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	s.activity.Record(r.Context(), "customer", id, activity.ActionDeleted, s.actorID(r), "customer deleted")
	writeJSON(w, http.StatusOK, ActionResult{Success: true})
}
