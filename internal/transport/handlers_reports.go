package transport

import (
	"net/http"
	"time"

	"github.com/atelierdoces/backoffice/internal/domain/project"
	"github.com/atelierdoces/backoffice/internal/export"
)

// handleScheduleReport streams the weekly schedule as an xlsx workbook.
func (s *Server) handleScheduleReport(w http.ResponseWriter, r *http.Request) {
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
		writeDomainError(w, err)
		return
	}

	f, err := export.ScheduleWorkbook(buckets)
	if err != nil {
		s.logError(r, "schedule workbook failed", err)
		writeActionError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.xlsx"`)
	if err := f.Write(w); err != nil {
		s.logError(r, "schedule workbook write failed", err)
	}
}
