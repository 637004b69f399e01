package domain

// WordFilter defines parameters for searching and paginating a
// language's word list.
type WordFilter struct {
	// Search performs ILIKE '%...%' on the normalized word text.
	// nil or empty string means no text filter.
	Search *string

	// IsRoot filters root words (true) or derived words (false).
	IsRoot *bool

	// SortBy determines the sort column: "text", "created_at",
	// "updated_at". Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of words to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of words to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByText      = "text"
	sortByCreatedAt = "created_at"
	sortByUpdatedAt = "updated_at"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// Normalize applies defaults and clamps values.
func (f *WordFilter) Normalize() {
	switch f.SortBy {
	case sortByText, sortByCreatedAt, sortByUpdatedAt:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}
