package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"nestegg/internal/config"
	"nestegg/internal/events"
	"nestegg/internal/logger"
	"nestegg/internal/testutil"
	"nestegg/internal/validator"
)

const testAPIKey = "test-pipeline-key"

// testApp holds the full application stack for router tests.
type testApp struct {
	DB        *gorm.DB
	Router    *gin.Engine
	Publisher *events.MemoryPublisher
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                  "0",
		Env:                   "test",
		CORSOrigins:           []string{"*"},
		JobsAPIKeys:           []string{testAPIKey},
		RecalcPolicy:          "grow_only",
		SyncDefaultAllocation: "0",
	}
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	publisher := events.NewMemoryPublisher()
	cfg := testConfig()
	svc, err := NewServices(db, cfg, publisher)
	if err != nil {
		t.Fatalf("failed to build services: %v", err)
	}
	return &testApp{DB: db, Router: NewRouter(cfg, svc), Publisher: publisher}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// requestWithKey makes a job request authenticated with the pipeline API key.
func (app *testApp) requestWithKey(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// mustStatus fails the test unless rec has the expected status.
func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// object returns the nested object stored under key.
func object(t *testing.T, m map[string]interface{}, key string) map[string]interface{} {
	t.Helper()
	v, ok := m[key].(map[string]interface{})
	if !ok {
		t.Fatalf("expected object under %q, got %v", key, m[key])
	}
	return v
}

// registerUser registers a new user and returns the access token and user ID.
func (app *testApp) registerUser(t *testing.T, email, firstName, lastName string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":"password123","first_name":%q,"last_name":%q}`, email, firstName, lastName)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	mustStatus(t, rec, http.StatusCreated)
	result := parseJSON(t, rec)
	user := object(t, result, "user")
	return result["token"].(string), user["id"].(string)
}

// createCategory creates an expense category and returns its ID.
func (app *testApp) createCategory(t *testing.T, token, name string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/categories", fmt.Sprintf(`{"name":%q,"type":"expense"}`, name), token)
	mustStatus(t, rec, http.StatusCreated)
	return object(t, parseJSON(t, rec), "category")["id"].(string)
}
