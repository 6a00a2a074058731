package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBuildsRequestAndDecodes(t *testing.T) {
	var gotPath, gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("apikey")
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]map[string]string{{"name": "Depot A"}})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", srv.Client())
	var rows []struct {
		Name string `json:"name"`
	}
	err := c.Select(context.Background(), "sites", SelectOpts{
		Columns: "id,name",
		Filters: map[string]string{"id": "eq.abc"},
		Order:   "name.asc",
		Limit:   10,
	}, &rows)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Depot A", rows[0].Name)

	assert.Equal(t, "/rest/v1/sites", gotPath)
	assert.Contains(t, gotQuery, "select=id%2Cname")
	assert.Contains(t, gotQuery, "id=eq.abc")
	assert.Contains(t, gotQuery, "order=name.asc")
	assert.Contains(t, gotQuery, "limit=10")
	assert.Equal(t, "test-key", gotKey)
}

func TestInsertWrapsRecordAndAcceptsCreated(t *testing.T) {
	var gotBody []map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, "k", srv.Client())
	err := c.Insert(context.Background(), "site_inspections", map[string]string{"status": "pass"})
	require.NoError(t, err)
	require.Len(t, gotBody, 1, "insert posts a single-record array")
	assert.Equal(t, "pass", gotBody[0]["status"])
}

func TestUpdateFiltersByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.row-1", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "k", srv.Client())
	err := c.Update(context.Background(), "site_inspections", "row-1", map[string]string{"status": "fail"})
	assert.NoError(t, err)
}

func TestErrorIncludesStatusAndSnippet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(srv.URL, "k", srv.Client())
	var rows []map[string]interface{}
	err := c.Select(context.Background(), "sites", SelectOpts{}, &rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supabase status 403")
	assert.Contains(t, err.Error(), "permission denied")
}
