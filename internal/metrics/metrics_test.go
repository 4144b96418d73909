package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTwice(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/weekly-budgets/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(requestCount.WithLabelValues("204", "GET", "/weekly-budgets/:id"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/weekly-budgets/abc", http.NoBody))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(requestCount.WithLabelValues("204", "GET", "/weekly-budgets/:id")))
}

func TestObserveReconciliation(t *testing.T) {
	ok := testutil.ToFloat64(reconciliationRuns.WithLabelValues("sync", "ok"))
	failed := testutil.ToFloat64(reconciliationRuns.WithLabelValues("sync", "error"))
	changes := testutil.ToFloat64(reconciliationChanges.WithLabelValues("sync"))

	ObserveReconciliation("sync", 3, nil)
	ObserveReconciliation("sync", 0, errors.New("boom"))

	assert.Equal(t, ok+1, testutil.ToFloat64(reconciliationRuns.WithLabelValues("sync", "ok")))
	assert.Equal(t, failed+1, testutil.ToFloat64(reconciliationRuns.WithLabelValues("sync", "error")))
	assert.Equal(t, changes+3, testutil.ToFloat64(reconciliationChanges.WithLabelValues("sync")))
}
