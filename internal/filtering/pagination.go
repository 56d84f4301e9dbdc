package filtering

// Paginate returns page pageNumber (1-indexed) of items. Pages outside
// [1, PageCount] and non-positive page sizes yield an empty page.
func Paginate[T any](items []T, pageSize, pageNumber int) []T {
	if pageSize <= 0 || pageNumber < 1 {
		return []T{}
	}
	start := (pageNumber - 1) * pageSize
	if start >= len(items) || start < 0 {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageCount is ceil(total/pageSize), and 0 when there is nothing to show.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
