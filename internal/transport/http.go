package transport

import (
	"log/slog"
	"net/http"

	"github.com/atelierdoces/backoffice/internal/domain/activity"
	"github.com/atelierdoces/backoffice/internal/domain/auth"
	"github.com/atelierdoces/backoffice/internal/domain/cake"
	"github.com/atelierdoces/backoffice/internal/domain/customer"
	"github.com/atelierdoces/backoffice/internal/domain/payment"
	"github.com/atelierdoces/backoffice/internal/domain/project"
	"github.com/go-chi/chi/v5"
)

// Services bundles the domain services the HTTP layer serves.
type Services struct {
	Customers *customer.Service
	Projects  *project.Service
	Cakes     *cake.Service
	Payments  *payment.Service
	Auth      *auth.Service
	Activity  *activity.Service
}

// Server wires HTTP handlers.
type Server struct {
	customers     *customer.Service
	projects      *project.Service
	cakes         *cake.Service
	payments      *payment.Service
	auth          *auth.Service
	activity      *activity.Service
	logger        *slog.Logger
	secureCookies bool
}

// NewServer creates the HTTP router with middleware and all routes.
func NewServer(svcs Services, logger *slog.Logger, secureCookies bool) *chi.Mux {
	s := &Server{
		customers:     svcs.Customers,
		projects:      svcs.Projects,
		cakes:         svcs.Cakes,
		payments:      svcs.Payments,
		auth:          svcs.Auth,
		activity:      svcs.Activity,
		logger:        logger,
		secureCookies: secureCookies,
	}

	r := chi.NewRouter()

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		// The refresh and sign-out routes run without the bearer guard:
		// the refresh call must never be authenticated with a stale
		// access token, and sign-out has to work for a dead session.
		r.Post("/auth/sign-in", s.handleSignIn)
		r.Get("/auth/refresh", s.handleRefresh)
		r.Get("/auth/sign-out", s.handleSignOut)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(s.auth))

			r.Get("/auth/me", s.handleMe)
			r.With(RequireRole(auth.RoleAdmin)).Post("/users", s.handleCreateUser)

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", s.handleListCustomers)
				r.Post("/", s.handleCreateCustomer)
				r.Get("/{customerID}", s.handleGetCustomer)
				r.Put("/{customerID}", s.handleUpdateCustomer)
				r.Delete("/{customerID}", s.handleDeleteCustomer)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", s.handleListProjects)
				r.Post("/", s.handleCreateProject)
				r.Get("/upcoming", s.handleUpcomingProjects)
				r.Get("/board", s.handleProjectBoard)
				r.Get("/{projectID}", s.handleGetProject)
				r.Put("/{projectID}", s.handleUpdateProject)
				r.Post("/{projectID}/status", s.handleTransitionProject)
				r.Delete("/{projectID}", s.handleDeleteProject)

				r.Route("/{projectID}/cakes", func(r chi.Router) {
					r.Get("/", s.handleListCakes)
					r.Post("/", s.handleCreateCake)
				})
				r.Route("/{projectID}/payments", func(r chi.Router) {
					r.Get("/", s.handleListPayments)
					r.Post("/", s.handleCreatePayment)
				})
			})

			r.Put("/cakes/{cakeID}", s.handleUpdateCake)
			r.Delete("/cakes/{cakeID}", s.handleDeleteCake)
			r.Delete("/payments/{paymentID}", s.handleDeletePayment)

			r.Get("/activity", s.handleListActivity)
			r.Get("/reports/schedule.xlsx", s.handleScheduleReport)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) logError(r *http.Request, msg string, err error) {
	if s.logger != nil {
		s.logger.Error(msg, "path", r.URL.Path, "error", err)
	}
}

func (s *Server) actorID(r *http.Request) string {
	if u, ok := UserFromContext(r.Context()); ok {
		return u.ID
	}
	return ""
}
