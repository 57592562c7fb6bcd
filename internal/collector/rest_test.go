package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func restServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/bars", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		switch r.URL.Query().Get("symbol") {
		case "AAPL":
			// out of order on purpose; the fetcher must sort
			w.Write([]byte(`[
				{"timestamp": 1756252800, "open": 231, "high": 233, "low": 230, "close": 232, "volume": 1000},
				{"timestamp": 1756166400, "open": 229, "high": 231, "low": 228, "close": 230, "volume": 900}
			]`))
		case "EMPTY":
			w.Write([]byte(`[]`))
		default:
			http.Error(w, "unknown symbol", http.StatusNotFound)
		}
	})
	mux.HandleFunc("/api/v1/quote", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("symbol") {
		case "AAPL":
			w.Write([]byte(`{"symbol":"AAPL","name":"Apple Inc.","prev_close":230,"last_close":232,"volume":1000,"high":233,"low":228}`))
		case "HALTED":
			w.Write([]byte(`{"symbol":"HALTED","last_close":0}`))
		default:
			http.Error(w, "unknown symbol", http.StatusNotFound)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRESTFetchBars(t *testing.T) {
	srv := restServer(t)
	f := NewRESTFetcher(srv.URL, "secret", "")
	end := time.Now()

	bars, err := f.FetchBars(context.Background(), "AAPL", end.AddDate(0, 0, -5), end)
	if err != nil {
		t.Fatalf("fetch bars: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("bars = %d, want 2", len(bars))
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("bars not sorted chronologically")
	}
	if bars[1].Close != 232 {
		t.Errorf("last close = %v, want 232", bars[1].Close)
	}
}

func TestRESTFetchBars_Failures(t *testing.T) {
	srv := restServer(t)
	end := time.Now()
	start := end.AddDate(0, 0, -5)

	f := NewRESTFetcher(srv.URL, "secret", "")
	if _, err := f.FetchBars(context.Background(), "EMPTY", start, end); !errors.Is(err, ErrNoData) {
		t.Errorf("empty response: err = %v, want ErrNoData", err)
	}
	if _, err := f.FetchBars(context.Background(), "UNKNOWN", start, end); err == nil {
		t.Error("404 should surface as an error")
	}

	unauth := NewRESTFetcher(srv.URL, "wrong", "")
	if _, err := unauth.FetchBars(context.Background(), "AAPL", start, end); err == nil {
		t.Error("bad credentials should surface as an error")
	}
}

func TestRESTFetchQuote(t *testing.T) {
	srv := restServer(t)
	f := NewRESTFetcher(srv.URL, "secret", "")

	q, err := f.FetchQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("fetch quote: %v", err)
	}
	if q.Name != "Apple Inc." || q.PrevClose != 230 || q.LastClose != 232 {
		t.Errorf("quote = %+v", q)
	}

	if _, err := f.FetchQuote(context.Background(), "HALTED"); !errors.Is(err, ErrNoData) {
		t.Errorf("zero last close: err = %v, want ErrNoData", err)
	}
}
