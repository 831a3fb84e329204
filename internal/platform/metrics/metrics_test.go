package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMapperRejected_Increments(t *testing.T) {
	before := testutil.ToFloat64(mapperRejected.WithLabelValues("status"))
	MapperRejected("status")
	MapperRejected("status")
	if got := testutil.ToFloat64(mapperRejected.WithLabelValues("status")); got != before+2 {
		t.Fatalf("mapper_rejected_total got %v want %v", got, before+2)
	}
}

func TestRESTResponse_LabelsByStatus(t *testing.T) {
	before := testutil.ToFloat64(restResponses.WithLabelValues("404"))
	RESTResponse(http.StatusNotFound)
	if got := testutil.ToFloat64(restResponses.WithLabelValues("404")); got != before+1 {
		t.Fatalf("rest_responses_total{status=404} got %v want %v", got, before+1)
	}
}

func TestHandler_ExposesCollectors(t *testing.T) {
	ObserveGraphQL("Post", "ok", 20*time.Millisecond)
	MapperRejected("poll")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"mastoshim_graphql_request_duration_seconds", "mastoshim_mapper_rejected_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in exposition", name)
		}
	}
}
