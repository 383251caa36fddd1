package shared

// Filter holds common list query options for repositories
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// Offset returns the row offset for the current page
func (f Filter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Limit returns the page size, defaulting to 20
func (f Filter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	return f.PageSize
}
