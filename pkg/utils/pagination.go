package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// PaginationParams represents limit/offset pagination parameters
type PaginationParams struct {
	Limit  int
	Offset int
}

// GetPaginationParams extracts limit and offset from the query string.
// Missing or unparsable values fall back to the defaults.
func GetPaginationParams(c echo.Context) PaginationParams {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		limit = DefaultLimit
	}
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	return Normalize(limit, offset)
}

func Normalize(limit, offset int) PaginationParams {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return PaginationParams{
		Limit:  limit,
		Offset: offset,
	}
}

// Window returns the [start, end) bounds of a page over n items.
func (p PaginationParams) Window(n int) (int, int) {
	if p.Offset >= n {
		return n, n
	}
	end := p.Offset + p.Limit
	if end > n {
		end = n
	}
	return p.Offset, end
}
