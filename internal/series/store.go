// Package series loads and normalizes per-instrument price history.
//
// The store owns every Series for the duration of one report run. A fetch
// failure or empty result maps to an absent series; callers must treat
// absence as a normal state. Retries, if any, belong to the data source.
package series

import (
	"context"
	"sort"
	"time"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/model"

	"github.com/rs/zerolog"
)

// Store fetches raw bars through a collector.Fetcher and normalizes them
// into strictly date-ordered series.
type Store struct {
	fetcher collector.Fetcher
	timeout time.Duration
	log     zerolog.Logger
}

// NewStore creates a Store. The timeout bounds each fetch call; zero means
// one minute.
func NewStore(fetcher collector.Fetcher, timeout time.Duration, log zerolog.Logger) *Store {
	if timeout == 0 {
		timeout = time.Minute
	}
	return &Store{fetcher: fetcher, timeout: timeout, log: log.With().Str("component", "series").Logger()}
}

// Load fetches and normalizes bars for one instrument. The second return
// is false when the source failed, returned nothing, or nothing survived
// normalization.
func (s *Store) Load(ctx context.Context, symbol string, start, end time.Time) (model.Series, bool) {
	fctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	bars, err := s.fetcher.FetchBars(fctx, symbol, start, end)
	if err != nil {
		s.log.Warn().Str("symbol", symbol).Err(err).Msg("series absent")
		return model.Series{}, false
	}
	bars = Normalize(bars)
	if len(bars) == 0 {
		s.log.Warn().Str("symbol", symbol).Msg("series empty after normalization")
		return model.Series{}, false
	}
	return model.Series{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, true
}

// Normalize sorts bars chronologically, drops incomplete bars, and keeps
// the first bar of each calendar date so the result is strictly increasing.
func Normalize(bars []model.OHLCV) []model.OHLCV {
	out := make([]model.OHLCV, 0, len(bars))
	for _, b := range bars {
		if b.Time.IsZero() {
			continue
		}
		if b.Open == 0 && b.High == 0 && b.Low == 0 && b.Close == 0 {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })

	dedup := out[:0]
	var lastDay string
	for _, b := range out {
		day := b.Time.Format("2006-01-02")
		if day == lastDay {
			continue
		}
		dedup = append(dedup, b)
		lastDay = day
	}
	return dedup
}
