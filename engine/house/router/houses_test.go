package houserouter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusdir/campusdir/engine/house"
	"github.com/campusdir/campusdir/engine/infra/server/appstate"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *appstate.State) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	state := appstate.NewState()
	r := gin.New()
	r.Use(appstate.StateMiddleware(state))
	Register(r)
	return r, state
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHouse(t *testing.T) {
	t.Run("Should create on the singular path", func(t *testing.T) {
		r, state := setupTestRouter(t)
		w := doJSON(r, http.MethodPost, "/house", gin.H{
			"address": gin.H{"city": "NYC"},
			"people":  []string{"ab1234"},
		})
		require.Equal(t, http.StatusCreated, w.Code)
		var rec house.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
		assert.NotEqual(t, uuid.Nil, rec.ID)
		assert.NotEqual(t, uuid.Nil, rec.Address.ID)
		assert.Equal(t, 1, state.Houses.Len())
	})
	t.Run("Should not serve create on the plural path", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodPost, "/houses", gin.H{"address": gin.H{"city": "NYC"}})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("Should accept residents that match no stored person", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodPost, "/house", gin.H{
			"address": gin.H{"city": "NYC"},
			"people":  []string{"nobody-home"},
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})
	t.Run("Should reject a duplicate identifier", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		id := uuid.New()
		w := doJSON(r, http.MethodPost, "/house", gin.H{"id": id, "address": gin.H{"city": "NYC"}})
		require.Equal(t, http.StatusCreated, w.Code)
		w = doJSON(r, http.MethodPost, "/house", gin.H{"id": id, "address": gin.H{"city": "Boston"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListHouses(t *testing.T) {
	t.Run("Should filter by resident UNI", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		doJSON(r, http.MethodPost, "/house", gin.H{
			"address": gin.H{"city": "NYC"},
			"people":  []string{"ab1234", "cd5678"},
		})
		doJSON(r, http.MethodPost, "/house", gin.H{
			"address": gin.H{"city": "Boston"},
			"people":  []string{"ef9012"},
		})
		w := doJSON(r, http.MethodGet, "/houses?person_uni=cd5678", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var records []house.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Equal(t, "NYC", *records[0].Address.City)
	})
}

func TestGetHouseByID(t *testing.T) {
	t.Run("Should return 404 for an unknown identifier", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodGet, fmt.Sprintf("/houses/%s", uuid.New()), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("Should return 404 for the zero identifier", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodGet, fmt.Sprintf("/houses/%s", uuid.Nil), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateHouse(t *testing.T) {
	t.Run("Should detach a resident by resending the remaining list", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodPost, "/house", gin.H{
			"address": gin.H{"city": "NYC"},
			"people":  []string{"ab1234", "cd5678"},
		})
		var created house.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		w = doJSON(r, http.MethodPatch, fmt.Sprintf("/houses/%s", created.ID),
			gin.H{"people": []string{"ab1234"}})
		require.Equal(t, http.StatusOK, w.Code)
		var updated house.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, []string{"ab1234"}, updated.People)
		assert.Equal(t, "NYC", *updated.Address.City)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

		// The stored record must reflect the detachment, not just the PATCH
		// response.
		w = doJSON(r, http.MethodGet, fmt.Sprintf("/houses/%s", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var stored house.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
		assert.Equal(t, []string{"ab1234"}, stored.People)
		assert.Equal(t, updated.UpdatedAt, stored.UpdatedAt)
	})
	t.Run("Should keep residents when the field is absent", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodPost, "/house", gin.H{
			"address": gin.H{"city": "NYC"},
			"people":  []string{"ab1234"},
		})
		var created house.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		w = doJSON(r, http.MethodPatch, fmt.Sprintf("/houses/%s", created.ID),
			gin.H{"phone": "555-0100"})
		require.Equal(t, http.StatusOK, w.Code)
		var updated house.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, []string{"ab1234"}, updated.People)
	})
	t.Run("Should return 404 for an unknown identifier", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodPatch, fmt.Sprintf("/houses/%s", uuid.New()),
			gin.H{"phone": "555-0100"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
