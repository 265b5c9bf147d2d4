package handler

import "strconv"

const (
	defaultPage = 0
	defaultSize = 10
	maxSize     = 10
)

// resolvePagination normalises raw page/size query values. Non-numeric or
// negative pages fall back to 0; sizes outside (0, maxSize] fall back to the
// default.
func resolvePagination(rawPage, rawSize string) (page, size int) {
	page = defaultPage
	if n, err := strconv.Atoi(rawPage); err == nil && n > 0 {
		page = n
	}

	size = defaultSize
	if n, err := strconv.Atoi(rawSize); err == nil && n > 0 && n <= maxSize {
		size = n
	}

	return page, size
}
