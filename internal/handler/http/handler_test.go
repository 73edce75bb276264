package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nirco-cloud/tripsync/internal/crypto"
	"github.com/nirco-cloud/tripsync/internal/logger"
	"github.com/nirco-cloud/tripsync/internal/service"
	"github.com/nirco-cloud/tripsync/models"
)

type stubPlanService struct {
	entries   []models.PlanEntry
	created   *models.PlanEntry
	deletedID string
	err       error
	imported  int
}

func (s *stubPlanService) Create(_ context.Context, entry models.PlanEntry) (models.PlanEntry, error) {
	if s.err != nil {
		return models.PlanEntry{}, s.err
	}
	entry.ID = "generated-id"
	s.created = &entry
	return entry, nil
}

func (s *stubPlanService) Update(_ context.Context, entry models.PlanEntry) (models.PlanEntry, error) {
	if s.err != nil {
		return models.PlanEntry{}, s.err
	}
	return entry, nil
}

func (s *stubPlanService) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.err
}

func (s *stubPlanService) List(context.Context) ([]models.PlanEntry, error) {
	return s.entries, s.err
}

func (s *stubPlanService) Export(context.Context) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte(`{"version":"2.0.0","entries":[]}`), nil
}

func (s *stubPlanService) Import(context.Context, []byte) (int, error) {
	return s.imported, s.err
}

type stubSyncService struct {
	entries []models.PlanEntry
	status  models.SyncStatus
	cfg     models.SyncConfig
	saved   *models.SyncConfig
	err     error
}

func (s *stubSyncService) SyncNow(context.Context) ([]models.PlanEntry, error) {
	return s.entries, s.err
}

func (s *stubSyncService) Status() models.SyncStatus { return s.status }

func (s *stubSyncService) GetConfig(context.Context) (models.SyncConfig, error) {
	return s.cfg, nil
}

func (s *stubSyncService) SetConfig(_ context.Context, cfg models.SyncConfig) error {
	s.saved = &cfg
	return nil
}

type stubLocationService struct {
	catalog  []models.Location
	imported int
	err      error
}

func (s *stubLocationService) ImportJSON(context.Context, []byte) (int, error) {
	return s.imported, s.err
}

func (s *stubLocationService) ImportFile(context.Context, string) (int, error) {
	return s.imported, s.err
}

func (s *stubLocationService) List(context.Context) ([]models.Location, error) {
	return s.catalog, s.err
}

type handlerFixture struct {
	plan      *stubPlanService
	sync      *stubSyncService
	locations *stubLocationService
	server    *httptest.Server
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	f := &handlerFixture{
		plan:      &stubPlanService{},
		sync:      &stubSyncService{},
		locations: &stubLocationService{},
	}

	services := &service.Services{
		Plan:      f.plan,
		Sync:      f.sync,
		Locations: f.locations,
		Status:    service.NewStatusTracker(time.Minute),
	}

	handler := NewHandler(services, crypto.NewPassphraseCipher(), "1.2.3", logger.Nop())
	f.server = httptest.NewServer(handler.Init())
	t.Cleanup(f.server.Close)

	return f
}

func (f *handlerFixture) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
