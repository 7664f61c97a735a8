package models

// Sort keys accepted by the recipe listing.
const (
	SortPopular = "popular"
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortRating  = "rating"
	SortTime    = "time"
)

// Prep-time bucket sentinels accepted by the recipe listing.
const (
	PrepTimeQuick  = "0-15"
	PrepTimeMedium = "16-30"
	PrepTimeLong   = "31+"
)

// CategoryAll is the sentinel meaning "do not filter by category".
const CategoryAll = "All"

const (
	DefaultRecipePage  = 1
	DefaultRecipeLimit = 12
	MaxRecipeLimit     = 100
)

// RecipeFilter is the strongly-typed listing request. It is built once at
// the HTTP boundary, normalized, and then passed by value; all active
// filters are combined as a conjunction.
type RecipeFilter struct {
	Search     string
	Category   string
	Difficulty string
	PrepTime   string
	MinRating  float64
	// HasMinRating distinguishes "no rating filter" from "rating >= 0".
	HasMinRating bool
	Featured     bool
	Sort         string
	Page         int
	Limit        int
}

// Normalize coerces out-of-range paging values to their defaults and caps
// the window size. Unknown sort keys fall back to newest-first. Returns a
// copy; the receiver is never mutated.
func (f RecipeFilter) Normalize() RecipeFilter {
	if f.Page <= 0 {
		f.Page = DefaultRecipePage
	}
	if f.Limit <= 0 {
		f.Limit = DefaultRecipeLimit
	}
	if f.Limit > MaxRecipeLimit {
		f.Limit = MaxRecipeLimit
	}
	switch f.Sort {
	case SortPopular, SortNewest, SortOldest, SortRating, SortTime:
	default:
		f.Sort = SortNewest
	}
	return f
}

// Offset returns the zero-indexed skip for the normalized filter.
func (f RecipeFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Pagination is the listing metadata returned alongside a recipe window.
type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalRecipes int64 `json:"total_recipes"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
}

// NewPagination computes page metadata for a filtered total.
// An empty result set yields zero total pages rather than an error.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecipes: total,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}
