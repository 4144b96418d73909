package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"nestegg/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func setupJobsRouter(keys ...string) *gin.Engine {
	r := gin.New()
	r.Use(JobsAuthMiddleware(keys))
	r.POST("/jobs/run", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"key_index": c.GetInt(JobKeyIndexKey)})
	})
	return r
}

func doJobRequest(r *gin.Engine, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/jobs/run", http.NoBody)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJobsAuthMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		keys          []string
		requestKey    string
		wantStatus    int
		wantErrorCode string
		wantKeyIndex  float64
	}{
		{name: "current_key", keys: []string{"new-key", "old-key"}, requestKey: "new-key", wantStatus: http.StatusOK},
		{name: "rotated_out_key_still_accepted", keys: []string{"new-key", "old-key"}, requestKey: "old-key", wantStatus: http.StatusOK, wantKeyIndex: 1},
		{name: "wrong_key", keys: []string{"new-key"}, requestKey: "nope", wantStatus: http.StatusUnauthorized, wantErrorCode: "INVALID_API_KEY"},
		{name: "missing_key", keys: []string{"new-key"}, wantStatus: http.StatusUnauthorized, wantErrorCode: "INVALID_API_KEY"},
		{name: "prefix_rejected", keys: []string{"new-key"}, requestKey: "new", wantStatus: http.StatusUnauthorized, wantErrorCode: "INVALID_API_KEY"},
		{name: "nothing_configured", keys: nil, requestKey: "any", wantStatus: http.StatusServiceUnavailable, wantErrorCode: "JOBS_NOT_CONFIGURED"},
		{name: "only_blank_keys", keys: []string{"", ""}, requestKey: "", wantStatus: http.StatusServiceUnavailable, wantErrorCode: "JOBS_NOT_CONFIGURED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJobRequest(setupJobsRouter(tt.keys...), tt.requestKey)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			body := parseBody(t, rec)
			if tt.wantErrorCode != "" {
				errObj, ok := body["error"].(map[string]interface{})
				if !ok {
					t.Fatal("expected error object in response")
				}
				if code, _ := errObj["code"].(string); code != tt.wantErrorCode {
					t.Errorf("error code = %q, want %q", code, tt.wantErrorCode)
				}
				return
			}
			if idx, _ := body["key_index"].(float64); idx != tt.wantKeyIndex {
				t.Errorf("key_index = %v, want %v", idx, tt.wantKeyIndex)
			}
		})
	}
}
