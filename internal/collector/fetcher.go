package collector

import (
	"context"
	"errors"
	"time"

	"MarketBoard/internal/model"
)

// ErrNoData indicates the source returned an empty result. Callers treat
// it the same as any other fetch failure: the instrument is absent for
// this run.
var ErrNoData = errors.New("no data returned")

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchBars(ctx context.Context, symbol string, start, end time.Time) ([]model.OHLCV, error)
	FetchQuote(ctx context.Context, symbol string) (*model.Quote, error)
	Name() string
}
