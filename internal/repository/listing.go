package repository

// StatusAll is the sentinel that disables status filtering, matching what the
// dashboard sends for the "no filter" choice.
const StatusAll = "All"

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListQuery is the uniform paging/filter contract shared by the listing
// endpoints: 1-based page, page size, case-insensitive substring search over
// an entity-specific field set, and an optional status equality filter.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// Normalize applies defaults and clamps the page size. An unbounded limit is
// a resource-exhaustion hole, so anything above maxLimit is cut down.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	return q
}

// Offset is the row offset for the normalized query.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// FilterByStatus reports whether a status predicate should be applied.
func (q ListQuery) FilterByStatus() bool {
	return q.Status != "" && q.Status != StatusAll
}

// TotalPages computes ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
