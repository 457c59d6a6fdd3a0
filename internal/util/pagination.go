package util

const DefaultPageSize = 10

func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = DefaultPageSize
	}
	from = (page - 1) * size
	return from, size
}

// Slice applies Calculate to an in-memory list.
func Slice[T any](items []T, page, size int) []T {
	from, limit := Calculate(page, size)
	if from >= len(items) {
		return []T{}
	}
	to := from + limit
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}
