package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vitalis-app/vitalis-bookings/internal/catalog"
	"github.com/vitalis-app/vitalis-bookings/internal/http/response"
)

// ListBusinesses returns the catalog, optionally filtered by ?q=.
func (h *Handlers) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	results := catalog.Search(r.URL.Query().Get("q"))
	response.WriteJSON(w, http.StatusOK, map[string]any{
		"businesses": results,
		"count":      len(results),
	})
}

func (h *Handlers) GetBusiness(w http.ResponseWriter, r *http.Request) {
	business, ok := catalog.BusinessByID(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w, "Business not found")
		return
	}
	response.WriteJSON(w, http.StatusOK, business)
}

// GetSlots returns the bookable time slots for a business on a date,
// along with that day's opening hours. The slot grid is static; it is
// not filtered against existing bookings.
func (h *Handlers) GetSlots(w http.ResponseWriter, r *http.Request) {
	business, ok := catalog.BusinessByID(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w, "Business not found")
		return
	}

	date := r.URL.Query().Get("date")
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		response.BadRequest(w, "Invalid or missing date (expected YYYY-MM-DD)")
		return
	}

	hours := business.OpeningHours.ForDay(day.Weekday())
	slots := catalog.TimeSlots()
	if hours.Closed() {
		slots = []string{}
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{
		"date":  date,
		"hours": hours,
		"slots": slots,
	})
}
