package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionstock/internal/infrastructure/ratelimit"
)

func TestRateLimit(t *testing.T) {
	e := echo.New()
	limiter := ratelimit.NewRateLimiter(0.01, 2)
	h := RateLimit(limiter, "upload")(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	serve := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))
		return rec
	}

	assert.Equal(t, http.StatusNoContent, serve("10.1.1.1:4000").Code)
	assert.Equal(t, http.StatusNoContent, serve("10.1.1.1:4001").Code)

	rec := serve("10.1.1.1:4002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"TOO_MANY_REQUESTS"`)

	assert.Equal(t, http.StatusNoContent, serve("10.2.2.2:4000").Code)
}
