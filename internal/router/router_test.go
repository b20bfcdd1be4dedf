package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/movieweb-dev/movieweb/db"
	"github.com/movieweb-dev/movieweb/internal/omdb"
	"github.com/movieweb-dev/movieweb/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

type fakeProvider struct {
	result *omdb.Result
	err    error
}

func (f *fakeProvider) Lookup(ctx context.Context, title string) (*omdb.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func strPtr(v string) *string { return &v }

func newTestRouter(t *testing.T, fake *fakeProvider) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.MigrateDatabase(conn))

	return router.NewRouter(conn, fake)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func createUser(t *testing.T, r *gin.Engine, name string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	user := body["user"].(map[string]any)

	return uint(user["id"].(float64))
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{})

	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{})

	w := doJSON(t, r, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Page not found", decodeBody(t, w)["error"])
}

func TestCreateAndListUsers(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{})

	id := createUser(t, r, "Alice")
	assert.NotZero(t, id)

	w := doJSON(t, r, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	users := decodeBody(t, w)["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].(map[string]any)["name"])
}

func TestCreateUserRejectsBlankName(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{})

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": "   "})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMoviesForUnknownUser(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{})

	w := doJSON(t, r, http.MethodGet, "/api/users/999/movies", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])
}

func TestAddMovieFlow(t *testing.T) {
	fake := &fakeProvider{result: &omdb.Result{
		Response: strPtr("True"),
		Title:    strPtr("Inception"),
		Year:     strPtr("2010"),
		Director: strPtr("Christopher Nolan"),
		Poster:   strPtr("http://img/inception.jpg"),
	}}
	r := newTestRouter(t, fake)

	id := createUser(t, r, "Alice")
	path := fmt.Sprintf("/api/users/%d/movies", id)

	w := doJSON(t, r, http.MethodPost, path, gin.H{"title": "Inception"})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Added Inception", body["message"])

	movie := body["movie"].(map[string]any)
	assert.Equal(t, "Inception", movie["name"])
	assert.Equal(t, "Christopher Nolan", movie["director"])
	assert.Equal(t, float64(2010), movie["year"])

	// Re-adding the same title is a conflict and leaves the list unchanged.
	w = doJSON(t, r, http.MethodPost, path, gin.H{"title": "Inception"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["movies"].([]any), 1)
}

func TestAddMovieProviderNotFound(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{err: omdb.ErrNotFound})

	id := createUser(t, r, "Alice")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/users/%d/movies", id), gin.H{"title": "No Such Film"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Movie not found in the movie database", decodeBody(t, w)["error"])
}

func TestAddMovieProviderUnreachable(t *testing.T) {
	r := newTestRouter(t, &fakeProvider{err: omdb.ErrUnreachable})

	id := createUser(t, r, "Alice")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/users/%d/movies", id), gin.H{"title": "Inception"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Movie database is unreachable", decodeBody(t, w)["error"])
}

func TestRenameAndDeleteMovie(t *testing.T) {
	fake := &fakeProvider{result: &omdb.Result{
		Response: strPtr("True"),
		Title:    strPtr("Seven"),
		Director: strPtr("David Fincher"),
	}}
	r := newTestRouter(t, fake)

	id := createUser(t, r, "Alice")
	base := fmt.Sprintf("/api/users/%d/movies", id)

	w := doJSON(t, r, http.MethodPost, base, gin.H{"title": "Seven"})
	require.Equal(t, http.StatusCreated, w.Code)

	movie := decodeBody(t, w)["movie"].(map[string]any)
	movieID := int(movie["id"].(float64))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("%s/%d", base, movieID), gin.H{"title": "Se7en"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("%s/%d", base, movieID+100), gin.H{"title": "Eight"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("%s/%d", base, movieID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting again reports not-found rather than failing loudly.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("%s/%d", base, movieID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
