package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"ton-dns-resolver/pkg/resolver"
)

type fakeResolver struct {
	address string
	err     error
	synced  bool
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (string, error) {
	return f.address, f.err
}

func (f *fakeResolver) Synced() bool {
	return f.synced
}

func setupRouter(f *fakeResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandlers(f).RegisterRoutes(router)
	return router
}

func TestResolveHandlerSuccess(t *testing.T) {
	router := setupRouter(&fakeResolver{address: "abcd.bag"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resolve/store.ton", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "store.ton", body["domain"])
	require.Equal(t, "abcd.bag", body["address"])
}

func TestResolveHandlerNotFound(t *testing.T) {
	router := setupRouter(&fakeResolver{err: resolver.ErrNoRecords})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resolve/ghost.ton", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestResolveHandlerResolutionFailure(t *testing.T) {
	for _, err := range []error{
		resolver.ErrDepthExceeded,
		resolver.ErrMalformedAddress,
		resolver.ErrUnsupportedRecord,
	} {
		router := setupRouter(&fakeResolver{err: err})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/resolve/x.ton", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadGateway, w.Code, "err: %v", err)
	}
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter(&fakeResolver{synced: false})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	router = setupRouter(&fakeResolver{synced: true})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
