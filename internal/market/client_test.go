package market

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const chartBody = `{"chart":{"result":[{"timestamp":[1700000000,1700000300,1700000600],
"indicators":{"quote":[{"close":[100.5,null,101.25]}]}}]}}`

func newChartServer(t *testing.T, body string, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_History_DropsNilCloses(t *testing.T) {
	t.Parallel()

	srv := newChartServer(t, chartBody, nil)
	c := NewClientWithBaseURL(srv.URL)

	points, err := c.History("AAPL", "5d", "5m")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2 (nil dropped)", len(points))
	}
	if points[0].Close != 100.5 || points[1].Close != 101.25 {
		t.Fatalf("unexpected closes: %+v", points)
	}
	if points[1].Time != 1700000600 {
		t.Fatalf("timestamp not aligned after nil drop: %d", points[1].Time)
	}
}

func TestClient_LatestClose(t *testing.T) {
	t.Parallel()

	srv := newChartServer(t, chartBody, nil)
	c := NewClientWithBaseURL(srv.URL)

	rate, err := c.LatestClose("USDKRW=X", "1d", "1m")
	if err != nil {
		t.Fatalf("latest close: %v", err)
	}
	if rate != 101.25 {
		t.Fatalf("rate = %v, want 101.25", rate)
	}
}

func TestClient_History_APIError(t *testing.T) {
	t.Parallel()

	srv := newChartServer(t, `{"chart":{"result":null,"error":{"code":"Not Found","description":"no data"}}}`, nil)
	c := NewClientWithBaseURL(srv.URL)

	if _, err := c.History("NOPE", "5d", "5m"); err == nil {
		t.Fatalf("expected error for chart api failure")
	}
}

func TestFXProvider_FallbackWhenUnreachable(t *testing.T) {
	t.Parallel()

	// 죽은 엔드포인트 → 폴백
	c := NewClientWithBaseURL("http://127.0.0.1:1")
	p := NewFXProvider(c, 1400.0, 5*time.Minute)

	rate, source := p.Rate()
	if rate != 1400.0 {
		t.Fatalf("rate = %v, want fallback 1400", rate)
	}
	if source != FXSourceFallback {
		t.Fatalf("source = %q, want fallback", source)
	}
}

func TestFXProvider_CachesWithinTTL(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := newChartServer(t, chartBody, &calls)
	p := NewFXProvider(NewClientWithBaseURL(srv.URL), 1400.0, 5*time.Minute)

	rate, source := p.Rate()
	if source != FXSourceLive || rate != 101.25 {
		t.Fatalf("first call: rate=%v source=%q", rate, source)
	}

	rate, source = p.Rate()
	if source != FXSourceCache || rate != 101.25 {
		t.Fatalf("second call: rate=%v source=%q", rate, source)
	}
	if calls.Load() != 1 {
		t.Fatalf("upstream calls = %d, want 1", calls.Load())
	}
}

func TestFXProvider_StaleCacheBeatsFallback(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := newChartServer(t, chartBody, &calls)
	p := NewFXProvider(NewClientWithBaseURL(srv.URL), 1400.0, time.Nanosecond)

	if rate, _ := p.Rate(); rate != 101.25 {
		t.Fatalf("seed rate = %v", rate)
	}

	srv.Close() // 업스트림 다운, TTL 은 이미 만료
	time.Sleep(time.Millisecond)

	rate, source := p.Rate()
	if rate != 101.25 || source != FXSourceCache {
		t.Fatalf("stale cache not used: rate=%v source=%q", rate, source)
	}
}
