package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/anylist-api/internal/infrastructure/metrics"
)

func TestObserveOperation_Cuenta(t *testing.T) {
	m := metrics.New()

	m.ObserveOperation("CreateItem", false, 10*time.Millisecond)
	m.ObserveOperation("CreateItem", false, 20*time.Millisecond)
	m.ObserveOperation("CreateItem", true, 5*time.Millisecond)
	m.ObserveOperation("", false, time.Millisecond)

	expected := `
# HELP anylist_graphql_operations_total Total de operaciones GraphQL por campo raíz y resultado
# TYPE anylist_graphql_operations_total counter
anylist_graphql_operations_total{operation="CreateItem",outcome="error"} 1
anylist_graphql_operations_total{operation="CreateItem",outcome="ok"} 2
anylist_graphql_operations_total{operation="anonymous",outcome="ok"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "anylist_graphql_operations_total")
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(m.Registry(), "anylist_graphql_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "un histograma por operación")
}

func TestObserveOperation_NilSeguro(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() { m.ObserveOperation("x", false, time.Second) })
}

func TestHandler_Expone(t *testing.T) {
	m := metrics.New()
	m.ObserveOperation("Items", false, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `anylist_graphql_operations_total{operation="Items",outcome="ok"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
