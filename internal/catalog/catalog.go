// Package catalog holds the compiled-in marketplace listing: businesses
// with their services, providers, and weekly opening hours. Records are
// immutable; there is no runtime mutation path.
package catalog

import (
	"strings"
	"time"
)

type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"` // minutes
	Price       int    `json:"price"`
}

type Provider struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Rating    float64 `json:"rating"`
	OnChainID string  `json:"on_chain_id,omitempty"`
}

type Hours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Closed reports whether the business does not open at all that day.
func (h Hours) Closed() bool {
	return strings.EqualFold(h.Open, "Closed")
}

type WeekHours struct {
	Monday    Hours `json:"monday"`
	Tuesday   Hours `json:"tuesday"`
	Wednesday Hours `json:"wednesday"`
	Thursday  Hours `json:"thursday"`
	Friday    Hours `json:"friday"`
	Saturday  Hours `json:"saturday"`
	Sunday    Hours `json:"sunday"`
}

func (w WeekHours) ForDay(day time.Weekday) Hours {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

type Business struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Image        string     `json:"image"`
	Location     string     `json:"location"`
	Rating       float64    `json:"rating"`
	ReviewCount  int        `json:"review_count"`
	OnChainID    string     `json:"on_chain_id,omitempty"`
	Services     []Service  `json:"services"`
	Providers    []Provider `json:"providers"`
	OpeningHours WeekHours  `json:"opening_hours"`
}

// timeSlots is the fixed bookable grid. Availability is not computed
// against existing bookings; two clients can book the same slot.
var timeSlots = []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

// TimeSlots returns a copy of the static bookable time slots.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// ValidTimeSlot reports whether the given HH:MM value is on the grid.
func ValidTimeSlot(slot string) bool {
	for _, s := range timeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func All() []Business {
	return businesses
}

func BusinessByID(id string) (Business, bool) {
	for _, b := range businesses {
		if b.ID == id {
			return b, true
		}
	}
	return Business{}, false
}

func ServiceByID(businessID, serviceID string) (Service, bool) {
	b, ok := BusinessByID(businessID)
	if !ok {
		return Service{}, false
	}
	for _, s := range b.Services {
		if s.ID == serviceID {
			return s, true
		}
	}
	return Service{}, false
}

func ProviderByID(businessID, providerID string) (Provider, bool) {
	b, ok := BusinessByID(businessID)
	if !ok {
		return Provider{}, false
	}
	for _, p := range b.Providers {
		if p.ID == providerID {
			return p, true
		}
	}
	return Provider{}, false
}

// ResolveProvider picks the provider a booking should record: the explicit
// selection when given, else the first provider with an on-chain identity,
// else the first listed provider. The bool is false when the business has
// no providers at all.
func ResolveProvider(b Business, providerID string) (Provider, bool) {
	if providerID != "" {
		for _, p := range b.Providers {
			if p.ID == providerID {
				return p, true
			}
		}
	}
	for _, p := range b.Providers {
		if p.OnChainID != "" {
			return p, true
		}
	}
	if len(b.Providers) > 0 {
		return b.Providers[0], true
	}
	return Provider{}, false
}

// Search filters businesses by a case-insensitive query over name,
// category, description, location, and service names/descriptions.
// An empty query returns the full listing.
func Search(query string) []Business {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return All()
	}

	var out []Business
	for _, b := range businesses {
		if matches(b, q) {
			out = append(out, b)
		}
	}
	return out
}

func matches(b Business, q string) bool {
	if strings.Contains(strings.ToLower(b.Name), q) ||
		strings.Contains(strings.ToLower(b.Category), q) ||
		strings.Contains(strings.ToLower(b.Description), q) ||
		strings.Contains(strings.ToLower(b.Location), q) {
		return true
	}
	for _, s := range b.Services {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Description), q) {
			return true
		}
	}
	return false
}
