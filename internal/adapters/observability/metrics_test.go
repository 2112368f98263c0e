package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"hotel_simulation/internal/adapters/observability"
	"hotel_simulation/internal/domain"
)

var _ domain.Recorder = observability.Recorder{}

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveHTTP("/metrics", "GET", 200, 12*time.Millisecond)
	observability.NewRecorder().Interaction(domain.KindBar, domain.PhaseOriginal)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, name := range []string{"hotelsim_http_requests_total", "hotelsim_interactions_total"} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestRecorder_Counters(t *testing.T) {
	rec := observability.NewRecorder()

	created := testutil.ToFloat64(observability.ComponentsCreated.WithLabelValues("visitor"))
	rec.ComponentCreated(domain.KindVisitor)
	if got := testutil.ToFloat64(observability.ComponentsCreated.WithLabelValues("visitor")); got != created+1 {
		t.Fatalf("components_created_total{visitor} = %v, want %v", got, created+1)
	}

	paid := testutil.ToFloat64(observability.PaymentAmount.WithLabelValues("wallet"))
	n := testutil.ToFloat64(observability.Payments.WithLabelValues("wallet"))
	rec.Payment(domain.MethodWallet, 100)
	rec.Payment(domain.MethodWallet, 12.5)
	if got := testutil.ToFloat64(observability.PaymentAmount.WithLabelValues("wallet")); got != paid+112.5 {
		t.Fatalf("payment_amount_total{wallet} = %v, want %v", got, paid+112.5)
	}
	if got := testutil.ToFloat64(observability.Payments.WithLabelValues("wallet")); got != n+2 {
		t.Fatalf("payments_total{wallet} = %v, want %v", got, n+2)
	}

	days := testutil.ToFloat64(observability.DaysSimulated)
	rec.DaySimulated()
	if got := testutil.ToFloat64(observability.DaysSimulated); got != days+1 {
		t.Fatalf("days_simulated_total = %v, want %v", got, days+1)
	}
}
