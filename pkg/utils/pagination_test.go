package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	cases := []struct {
		query string
		want  PaginationParams
	}{
		{"", PaginationParams{Limit: DefaultLimit, Offset: 0}},
		{"?limit=5&offset=10", PaginationParams{Limit: 5, Offset: 10}},
		{"?limit=500", PaginationParams{Limit: MaxLimit, Offset: 0}},
		{"?limit=abc&offset=-3", PaginationParams{Limit: DefaultLimit, Offset: 0}},
	}

	e := echo.New()
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/motion-graphics"+tc.query, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, tc.want, GetPaginationParams(c), tc.query)
	}
}

func TestWindow(t *testing.T) {
	start, end := Normalize(2, 1).Window(5)
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)

	start, end = Normalize(10, 3).Window(5)
	assert.Equal(t, 3, start)
	assert.Equal(t, 5, end)

	start, end = Normalize(10, 7).Window(5)
	assert.Equal(t, start, end)
}
