package web

import (
	"log"
	"net/http"
	"time"

	"github.com/tkoide/supplywatch/internal/view"
)

// dashboardData is the template payload shared by the full page and the
// HTMX partial.
type dashboardData struct {
	View       view.ViewModel
	Configured bool
	Notice     string
	FetchedAt  time.Time
	Malformed  int
}

func (s *Server) dashboardData(r *http.Request, notice string) dashboardData {
	filter := r.FormValue("category")
	mode := view.ParseSortMode(r.FormValue("sort"))

	data := dashboardData{
		View:       s.service.View(filter, mode),
		Configured: s.service.Configured(),
		Notice:     notice,
	}
	if snap := s.service.Snapshot(); snap != nil {
		data.FetchedAt = snap.FetchedAt
		data.Malformed = snap.MalformedDates
	}
	return data
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var notice string
	if !s.service.Configured() {
		notice = "No sheet URL is configured. Set SHEET_URL to your published spreadsheet export."
	} else if s.service.Snapshot() == nil {
		// First page view loads the data; later views reuse the snapshot.
		if _, err := s.service.Refresh(r.Context()); err != nil {
			notice = "Failed to load inventory. Check the sheet URL and try refreshing."
			log.Printf("initial refresh error: %v", err)
		}
	}

	if err := s.renderPage(w, s.dashboardData(r, notice),
		"base.html", "pages/dashboard.html", "partials/dashboard_content.html",
	); err != nil {
		log.Printf("render page error: %v", err)
	}
}

// handleItems re-renders the item listing when the filter or sort selector
// changes. HTMX swaps the fragment in place; a plain GET falls back to the
// full page.
func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("HX-Request") != "true" {
		s.handleDashboard(w, r)
		return
	}
	if err := s.renderPartial(w, "partials/dashboard_content.html", s.dashboardData(r, "")); err != nil {
		log.Printf("render partial error: %v", err)
	}
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var notice string
	if _, err := s.service.Refresh(r.Context()); err != nil {
		// Previously loaded items stay on screen; only a notice is added.
		notice = "Refresh failed. Showing the last loaded inventory."
		log.Printf("refresh error: %v", err)
	}

	if r.Header.Get("HX-Request") == "true" {
		if err := s.renderPartial(w, "partials/dashboard_content.html", s.dashboardData(r, notice)); err != nil {
			log.Printf("render partial error: %v", err)
		}
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
