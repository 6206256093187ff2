package domain

// SlideFilter contains sorting/pagination parameters for slide listings.
type SlideFilter struct {
	// SortBy determines the sort column: "title" or "created_at".
	// Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "ASC".
	SortOrder string

	// Limit is the maximum number of slides to return. Default: 100, max: 500.
	Limit int

	// Offset is the number of slides to skip.
	Offset int
}

const (
	defaultSlideLimit = 100
	maxSlideLimit     = 500

	SlideSortByTitle     = "title"
	SlideSortByCreatedAt = "created_at"

	SortOrderASC  = "ASC"
	SortOrderDESC = "DESC"
)

// Normalize applies defaults and clamps values. Unknown sort columns fall
// back to the default, which also keeps user input out of generated SQL.
func (f *SlideFilter) Normalize() {
	switch f.SortBy {
	case SlideSortByTitle, SlideSortByCreatedAt:
		// valid
	default:
		f.SortBy = SlideSortByCreatedAt
	}

	switch f.SortOrder {
	case SortOrderASC, SortOrderDESC:
		// valid
	default:
		f.SortOrder = SortOrderASC
	}

	if f.Limit <= 0 {
		f.Limit = defaultSlideLimit
	}
	if f.Limit > maxSlideLimit {
		f.Limit = maxSlideLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}
