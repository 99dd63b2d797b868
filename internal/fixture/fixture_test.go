package fixture

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turkosaurus/guia/internal/types"
)

var sample = []types.Attraction{
	{ID: "1", Name: "Beach", City: "João Pessoa", State: "PB"},
	{ID: "2", Name: "Fort", City: "Cabedelo", State: "PB"},
}

func TestRouter(t *testing.T) {
	h := NewRouter(sample, Options{})

	t.Run("list preserves order", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/attractions", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var got []types.Attraction
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "2", got[1].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/attractions/2", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Fort")
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/attractions/9", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouterFailStatus(t *testing.T) {
	h := NewRouter(sample, Options{FailStatus: http.StatusServiceUnavailable})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/attractions", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "health is not affected by FailStatus")
}
