package model

import "math"

// PageRequest is a 1-based page request as received from callers.
type PageRequest struct {
	Page      int
	Size      int
	Ascending bool
}

// Page is a normalized, 0-based window over an ordered listing.
type Page struct {
	Offset    int
	Limit     int
	Ascending bool
}

// Paging limits per listing.
const (
	DefaultCardPageSize = 5
	MaxCardPageSize     = 15
	DefaultUserPageSize = 10
	MaxUserPageSize     = 50
)

// Normalize turns the request into a Page. A page below 1 becomes the first
// page, a size below 1 becomes defaultSize and a size above maxSize is clamped.
// A page too far out to address saturates at the largest representable offset.
func (r PageRequest) Normalize(defaultSize, maxSize int) Page {
	page := r.Page
	if page < 1 {
		page = 1
	}

	size := r.Size
	switch {
	case size < 1:
		size = defaultSize
	case size > maxSize:
		size = maxSize
	}

	skip := page - 1
	if skip > math.MaxInt/size {
		skip = math.MaxInt / size
	}

	return Page{
		Offset:    skip * size,
		Limit:     size,
		Ascending: r.Ascending,
	}
}
