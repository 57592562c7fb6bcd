package series

import (
	"context"
	"testing"
	"time"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/model"

	"github.com/rs/zerolog"
)

func bar(day int, close float64) model.OHLCV {
	return model.OHLCV{
		Time:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day),
		Open:   close,
		High:   close,
		Low:    close,
		Close:  close,
		Volume: 100,
	}
}

func TestNormalize_SortsAndDedupes(t *testing.T) {
	in := []model.OHLCV{
		bar(2, 102),
		bar(0, 100),
		bar(1, 101),
		bar(1, 999), // second observation of the same date is dropped
	}
	out := Normalize(in)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	for i, want := range []float64{100, 101, 102} {
		if out[i].Close != want {
			t.Errorf("out[%d].Close = %v, want %v", i, out[i].Close, want)
		}
		if i > 0 && !out[i-1].Time.Before(out[i].Time) {
			t.Errorf("dates not strictly increasing at %d", i)
		}
	}
}

func TestNormalize_DropsIncompleteBars(t *testing.T) {
	in := []model.OHLCV{
		{},                     // zero time
		{Time: bar(1, 0).Time}, // all-zero prices
		bar(1, 50),
	}
	out := Normalize(in)
	if len(out) != 1 || out[0].Close != 50 {
		t.Fatalf("out = %+v, want the single valid bar", out)
	}
}

func TestLoad_FailureIsAbsence(t *testing.T) {
	store := NewStore(&collector.MockFetcher{Fail: map[string]bool{"NOPE": true}}, 0, zerolog.Nop())
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if _, ok := store.Load(context.Background(), "NOPE", start, end); ok {
		t.Error("failed fetch should yield an absent series")
	}

	s, ok := store.Load(context.Background(), "AAPL", start, end)
	if !ok {
		t.Fatal("healthy fetch should yield a series")
	}
	if s.Symbol != "AAPL" || s.Len() == 0 {
		t.Errorf("series = %+v", s)
	}
	for i := 1; i < s.Len(); i++ {
		if !s.Bars[i-1].Time.Before(s.Bars[i].Time) {
			t.Fatalf("bars not strictly increasing at %d", i)
		}
	}
}

func TestLoad_EmptyAfterNormalizationIsAbsence(t *testing.T) {
	store := NewStore(&collector.MockFetcher{
		Bars: map[string][]model.OHLCV{"HOLLOW": {{}, {}}},
	}, 0, zerolog.Nop())

	if _, ok := store.Load(context.Background(), "HOLLOW", time.Now().AddDate(0, 0, -5), time.Now()); ok {
		t.Error("series with no valid bars should be absent")
	}
}
