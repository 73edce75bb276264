package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirco-cloud/tripsync/internal/service"
	"github.com/nirco-cloud/tripsync/models"
)

func TestListPlan_FiltersByUnlockedOwners(t *testing.T) {
	f := newHandlerFixture(t)
	f.plan.entries = []models.PlanEntry{
		{ID: "a", Owner: models.OwnerShared, Name: "Shared"},
		{ID: "b", Owner: "nir", Name: "Private"},
	}

	resp := f.do(t, http.MethodGet, "/api/plan/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []models.PlanEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)

	resp = f.do(t, http.MethodGet, "/api/plan/?owners=nir", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	assert.Len(t, entries, 2)
}

func TestCreateEntry_Success(t *testing.T) {
	f := newHandlerFixture(t)

	resp := f.do(t, http.MethodPost, "/api/plan/", `{"day":1,"name":"Shrine"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.PlanEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "generated-id", created.ID)
	require.NotNil(t, f.plan.created)
	assert.Equal(t, "Shrine", f.plan.created.Name)
}

func TestCreateEntry_BadRequests(t *testing.T) {
	f := newHandlerFixture(t)

	resp := f.do(t, http.MethodPost, "/api/plan/", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	f.plan.err = service.ErrInvalidEntry
	resp = f.do(t, http.MethodPost, "/api/plan/", `{"day":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateEntry_UsesPathID(t *testing.T) {
	f := newHandlerFixture(t)

	resp := f.do(t, http.MethodPut, "/api/plan/abc", `{"day":2,"name":"Castle"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.PlanEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "abc", updated.ID)
}

func TestDeleteEntry_NoContent(t *testing.T) {
	f := newHandlerFixture(t)

	resp := f.do(t, http.MethodDelete, "/api/plan/abc", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "abc", f.plan.deletedID)
}

func TestExportPlan_SetsDownloadHeaders(t *testing.T) {
	f := newHandlerFixture(t)

	resp := f.do(t, http.MethodGet, "/api/plan/export", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "trip-plan.json")
}

func TestImportPlan_ReportsCountAndRejections(t *testing.T) {
	f := newHandlerFixture(t)
	f.plan.imported = 3

	resp := f.do(t, http.MethodPost, "/api/plan/import", `[{"id":"a","day":1,"name":"x"}]`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 3, result["imported"])

	f.plan.err = service.ErrNoEntriesFound
	resp = f.do(t, http.MethodPost, "/api/plan/import", `[]`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetVersion(t *testing.T) {
	f := newHandlerFixture(t)

	resp := f.do(t, http.MethodGet, "/api/version", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
}

func TestTraceIDHeaderIsSet(t *testing.T) {
	f := newHandlerFixture(t)

	resp := f.do(t, http.MethodGet, "/api/version", "")
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}
