package quote

import (
	"context"
	"math"
	"testing"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/model"

	"github.com/rs/zerolog"
)

func TestBuild_ChangeMath(t *testing.T) {
	snap, ok := Build("Apple", &model.Quote{
		Symbol:    "AAPL",
		PrevClose: 200,
		LastClose: 205,
		Volume:    5_000_000,
		High:      206,
		Low:       199,
	})
	if !ok {
		t.Fatal("expected a snapshot")
	}
	if snap.Change != 5 {
		t.Errorf("Change = %v, want 5", snap.Change)
	}
	if math.Abs(snap.ChangePct-2.5) > 1e-12 {
		t.Errorf("ChangePct = %v, want 2.5", snap.ChangePct)
	}
	if snap.Name != "Apple" {
		t.Errorf("Name = %q, want Apple", snap.Name)
	}
}

func TestBuild_Unavailable(t *testing.T) {
	if _, ok := Build("X", nil); ok {
		t.Error("nil quote should be unavailable")
	}
	if _, ok := Build("X", &model.Quote{Symbol: "X", LastClose: 10}); ok {
		t.Error("zero previous close should be unavailable")
	}
}

func TestBuild_NameFallback(t *testing.T) {
	snap, _ := Build("", &model.Quote{Symbol: "NVDA", Name: "NVIDIA Corp", PrevClose: 100, LastClose: 101})
	if snap.Name != "NVIDIA Corp" {
		t.Errorf("Name = %q, want the quote's name", snap.Name)
	}
	snap, _ = Build("", &model.Quote{Symbol: "NVDA", PrevClose: 100, LastClose: 101})
	if snap.Name != "NVDA" {
		t.Errorf("Name = %q, want the symbol", snap.Name)
	}
}

func TestSnapshot_FetchFailureIsAbsence(t *testing.T) {
	agg := NewAggregator(&collector.MockFetcher{Fail: map[string]bool{"NOPE": true}}, 0, zerolog.Nop())

	if _, ok := agg.Snapshot(context.Background(), "Nothing", "NOPE"); ok {
		t.Error("failed fetch should yield an absent snapshot, not a panic or error")
	}
	if snap, ok := agg.Snapshot(context.Background(), "Apple", "AAPL"); !ok || snap.Symbol != "AAPL" {
		t.Errorf("healthy fetch should yield a snapshot, got ok=%v snap=%+v", ok, snap)
	}
}
