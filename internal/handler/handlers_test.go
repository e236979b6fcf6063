package handler

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/repository"
)

// newTestContext builds an echo context for a GET request with optional
// path parameters, returning the recorder alongside it.
func newTestContext(target string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, target, nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    for k, v := range params {
        c.SetParamNames(k)
        c.SetParamValues(v)
    }
    return c, rec
}

// The validation paths below never reach the database, so the handlers
// are wired with nil-backed repositories.

func TestAdminAnalyticsRejectsBadLimit(t *testing.T) {
    h := NewAdminHandler(repository.NewAnalyticsRepo(nil))

    for _, limit := range []string{"0", "-1", "101", "ten"} {
        c, rec := newTestContext("/api/admin/analytics?limit="+limit, nil)
        require.NoError(t, h.Analytics(c))
        assert.Equal(t, http.StatusBadRequest, rec.Code, "limit %q", limit)
    }
}

func TestMovieShowsRejectsBadMovieID(t *testing.T) {
    h := NewMovieHandler(repository.NewMovieRepo(nil), repository.NewShowRepo(nil))

    for _, id := range []string{"abc", "0", "-3"} {
        c, rec := newTestContext("/api/movies/"+id+"/shows", map[string]string{"id": id})
        require.NoError(t, h.Shows(c))
        assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
    }
}
