package filtering

import (
	"fjacquet/fintrack/internal/models"
)

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 10

// PageResult is one rendered page of the filtered list.
type PageResult struct {
	Items     []models.Transaction
	Page      int
	PageSize  int
	PageCount int
	Total     int
}

// HasNext reports whether a page follows this one.
func (r PageResult) HasNext() bool { return r.Page < r.PageCount }

// HasPrevious reports whether a page precedes this one.
func (r PageResult) HasPrevious() bool { return r.Page > 1 && r.PageCount > 0 }

// ListState holds the criteria and current page of a list view. Changing the
// criteria always returns the view to the first page.
type ListState struct {
	criteria Criteria
	page     int
	pageSize int
}

// NewListState starts on page 1 with DefaultCriteria. A non-positive page
// size falls back to DefaultPageSize.
func NewListState(pageSize int) *ListState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &ListState{criteria: DefaultCriteria(), page: 1, pageSize: pageSize}
}

// SetFilters replaces the criteria and resets the page to 1.
func (s *ListState) SetFilters(c Criteria) {
	s.criteria = c
	s.page = 1
}

// SetPage selects a page. Out of range pages render empty.
func (s *ListState) SetPage(page int) {
	s.page = page
}

func (s *ListState) Criteria() Criteria { return s.criteria }
func (s *ListState) Page() int          { return s.page }
func (s *ListState) PageSize() int      { return s.pageSize }

// Apply filters txs with the current criteria and slices the current page.
func (s *ListState) Apply(txs []models.Transaction) PageResult {
	filtered := ApplyFilters(txs, s.criteria)
	return PageResult{
		Items:     Paginate(filtered, s.pageSize, s.page),
		Page:      s.page,
		PageSize:  s.pageSize,
		PageCount: PageCount(len(filtered), s.pageSize),
		Total:     len(filtered),
	}
}
