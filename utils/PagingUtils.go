package utils

// PaginateList returns the [start, end) bounds of a zero-based page.
func PaginateList(listSize int, limit int, page int) (int, int) {
	if limit < 0 || page < 0 {
		return 0, 0
	}
	if limit == 0 {
		return 0, listSize
	}
	startIndex := page * limit
	if startIndex >= listSize {
		return 0, 0
	}
	endIndex := startIndex + limit
	if endIndex > listSize {
		endIndex = listSize
	}
	return startIndex, endIndex
}
