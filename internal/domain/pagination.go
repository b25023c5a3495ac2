package domain

// Default page size applied when a caller passes zero or negative values.
const defaultPageSize = 20

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Limit returns the row limit for the query, falling back to the default
// page size when PageSize is unset.
func (p PaginationParams) Limit() int {
	if p.PageSize < 1 {
		return defaultPageSize
	}
	return p.PageSize
}

// Offset returns the row offset for the current page (0-based).
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}
