package organizationrouter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusdir/campusdir/engine/infra/server/appstate"
	"github.com/campusdir/campusdir/engine/organization"
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

func validPayload() gin.H {
	return gin.H{
		"org_name": "Registrar",
		"email":    "dean@example.edu",
		"address":  gin.H{"city": "NYC", "country": "US"},
	}
}

func TestCreateOrganization(t *testing.T) {
	t.Run("Should create on the singular path", func(t *testing.T) {
		r, state := setupTestRouter(t)
		w := doJSON(r, http.MethodPost, "/organization", validPayload())
		require.Equal(t, http.StatusCreated, w.Code)
		var rec organization.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
		assert.NotEqual(t, uuid.Nil, rec.ID)
		assert.NotEqual(t, uuid.Nil, rec.Address.ID)
		assert.Equal(t, 1, state.Organizations.Len())
	})
	t.Run("Should not serve create on the plural path", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodPost, "/organizations", validPayload())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("Should reject a missing or malformed email", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		payload := validPayload()
		payload["email"] = "not-an-email"
		w := doJSON(r, http.MethodPost, "/organization", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		delete(payload, "email")
		w = doJSON(r, http.MethodPost, "/organization", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("Should reject a duplicate identifier", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		payload := validPayload()
		payload["id"] = uuid.New()
		w := doJSON(r, http.MethodPost, "/organization", payload)
		require.Equal(t, http.StatusCreated, w.Code)
		w = doJSON(r, http.MethodPost, "/organization", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListOrganizations(t *testing.T) {
	t.Run("Should filter by the embedded address", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		doJSON(r, http.MethodPost, "/organization", validPayload())
		other := validPayload()
		other["org_name"] = "Library"
		other["address"] = gin.H{"city": "Boston", "country": "US"}
		doJSON(r, http.MethodPost, "/organization", other)
		w := doJSON(r, http.MethodGet, "/organizations?city=Boston", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var records []organization.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Equal(t, "Library", records[0].OrgName)
	})
}

func TestGetOrganizationByID(t *testing.T) {
	t.Run("Should return 404 for an unknown identifier", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodGet, fmt.Sprintf("/organizations/%s", uuid.New()), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("Should return 404 for the zero identifier", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodGet, fmt.Sprintf("/organizations/%s", uuid.Nil), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateOrganization(t *testing.T) {
	t.Run("Should merge supplied fields", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodPost, "/organization", validPayload())
		var created organization.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		w = doJSON(r, http.MethodPatch, fmt.Sprintf("/organizations/%s", created.ID),
			gin.H{"org_name": "Bursar"})
		require.Equal(t, http.StatusOK, w.Code)
		var updated organization.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "Bursar", updated.OrgName)
		assert.Equal(t, "dean@example.edu", updated.Email)
	})
	t.Run("Should reject a malformed email in the patch", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodPost, "/organization", validPayload())
		var created organization.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		w = doJSON(r, http.MethodPatch, fmt.Sprintf("/organizations/%s", created.ID),
			gin.H{"email": "nope"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("Should return 404 for an unknown identifier", func(t *testing.T) {
		r, _ := setupTestRouter(t)
		w := doJSON(r, http.MethodPatch, fmt.Sprintf("/organizations/%s", uuid.New()),
			gin.H{"org_name": "Bursar"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
