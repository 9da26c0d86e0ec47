package diag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trippy/models"
)

type stubStore struct {
	collections []string
	err         error
}

func (s *stubStore) Create(_ context.Context, _ models.SavedTrip) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubStore) List(_ context.Context, _ int64) ([]models.SavedTrip, error) {
	return nil, errors.New("not implemented")
}

func (s *stubStore) Get(_ context.Context, _ string) (models.SavedTrip, error) {
	return models.SavedTrip{}, errors.New("not implemented")
}

func (s *stubStore) Collections(_ context.Context) ([]string, error) {
	return s.collections, s.err
}

func runDiag(t *testing.T, h *Handler) map[string]any {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	h.TestBackend(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("diagnostics must answer 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestDiagWithoutStore(t *testing.T) {
	body := runDiag(t, NewHandler(nil))

	if body["backend"] != "✅ Running" {
		t.Errorf("backend = %v", body["backend"])
	}
	if body["database"] != "⚠️ Available but not initialized" {
		t.Errorf("database = %v", body["database"])
	}
	if body["connection_status"] != "Not Connected" {
		t.Errorf("connection_status = %v", body["connection_status"])
	}
	if body["redis"] != "❌ Not Configured" {
		t.Errorf("redis = %v", body["redis"])
	}
	if cols, ok := body["collections"].([]any); !ok || len(cols) != 0 {
		t.Errorf("collections = %v", body["collections"])
	}
}

func TestDiagWithWorkingStore(t *testing.T) {
	body := runDiag(t, NewHandler(&stubStore{collections: []string{"trips", "sessions"}}))

	if body["database"] != "✅ Connected & Working" {
		t.Errorf("database = %v", body["database"])
	}
	if body["connection_status"] != "Connected" {
		t.Errorf("connection_status = %v", body["connection_status"])
	}
	cols, ok := body["collections"].([]any)
	if !ok || len(cols) != 2 || cols[0] != "trips" {
		t.Errorf("collections = %v", body["collections"])
	}
}

func TestDiagCapsCollectionsAtTen(t *testing.T) {
	var names []string
	for i := 0; i < 15; i++ {
		names = append(names, fmt.Sprintf("col%d", i))
	}

	body := runDiag(t, NewHandler(&stubStore{collections: names}))

	cols, ok := body["collections"].([]any)
	if !ok || len(cols) != 10 {
		t.Fatalf("expected 10 collections, got %v", body["collections"])
	}
}

func TestDiagRendersProbeError(t *testing.T) {
	long := strings.Repeat("x", 80)
	body := runDiag(t, NewHandler(&stubStore{err: errors.New(long)}))

	got, _ := body["database"].(string)
	if !strings.HasPrefix(got, "⚠️ Connected but Error: ") {
		t.Fatalf("database = %q", got)
	}
	if !strings.HasSuffix(got, strings.Repeat("x", 50)) || strings.Contains(got, strings.Repeat("x", 51)) {
		t.Errorf("error not truncated to 50 chars: %q", got)
	}
	if body["connection_status"] != "Connected" {
		t.Errorf("connection_status = %v", body["connection_status"])
	}
}

func TestDiagEnvFlags(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "")

	body := runDiag(t, NewHandler(nil))

	if body["database_url"] != "✅ Set" {
		t.Errorf("database_url = %v", body["database_url"])
	}
	if body["database_name"] != "❌ Not Set" {
		t.Errorf("database_name = %v", body["database_name"])
	}
}
