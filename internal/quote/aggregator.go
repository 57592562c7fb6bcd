// Package quote converts latest-quote summaries into canonical snapshots.
package quote

import (
	"context"
	"time"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/model"

	"github.com/rs/zerolog"
)

// Aggregator builds per-instrument snapshots from a data source. At least
// two observations are required; anything less is Unavailable, which
// callers carry forward rather than treating as an error.
type Aggregator struct {
	fetcher collector.Fetcher
	timeout time.Duration
	log     zerolog.Logger
}

// NewAggregator creates an Aggregator. The timeout bounds each quote
// fetch; zero means one minute.
func NewAggregator(fetcher collector.Fetcher, timeout time.Duration, log zerolog.Logger) *Aggregator {
	if timeout == 0 {
		timeout = time.Minute
	}
	return &Aggregator{fetcher: fetcher, timeout: timeout, log: log.With().Str("component", "quote").Logger()}
}

// Snapshot fetches the latest quote for one instrument and derives the
// daily change. The second return is false when the quote is unavailable.
func (a *Aggregator) Snapshot(ctx context.Context, name, symbol string) (model.Snapshot, bool) {
	fctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	q, err := a.fetcher.FetchQuote(fctx, symbol)
	if err != nil {
		a.log.Warn().Str("symbol", symbol).Err(err).Msg("quote unavailable")
		return model.Snapshot{}, false
	}
	return Build(name, q)
}

// Build converts a raw quote into a snapshot. It fails when the previous
// close is missing, since change and percent change are undefined then.
func Build(name string, q *model.Quote) (model.Snapshot, bool) {
	if q == nil || q.PrevClose == 0 {
		return model.Snapshot{}, false
	}
	if name == "" {
		name = q.Name
	}
	if name == "" {
		name = q.Symbol
	}
	change := q.LastClose - q.PrevClose
	return model.Snapshot{
		Symbol:    q.Symbol,
		Name:      name,
		Price:     q.LastClose,
		Change:    change,
		ChangePct: change / q.PrevClose * 100,
		Volume:    q.Volume,
		High:      q.High,
		Low:       q.Low,
	}, true
}
