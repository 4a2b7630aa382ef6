package application

const (
	// DefaultPageLimit applies when the client sends no or garbage limit.
	DefaultPageLimit = 20
	// MaxPageLimit bounds how much a single request may fetch.
	MaxPageLimit = 100
)

// Page is a normalized 1-based pagination request.
type Page struct {
	Page  int
	Limit int
}

// NormalizePage clamps raw client input to safe values: page < 1 falls back
// to 1, limit outside (0, MaxPageLimit] falls back to the default or the cap.
// Malformed input must never crash a view query.
func NormalizePage(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return Page{Page: page, Limit: limit}
}

// Offset converts the 1-based page to a store offset.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}
