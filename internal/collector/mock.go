package collector

import (
	"context"
	"time"

	"MarketBoard/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Symbols listed in Fail behave like a dead source.
type MockFetcher struct {
	Bars   map[string][]model.OHLCV
	Quotes map[string]*model.Quote
	Fail   map[string]bool
	Base   float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, symbol string, start, end time.Time) ([]model.OHLCV, error) {
	if m.Fail[symbol] {
		return nil, ErrNoData
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	days := int(end.Sub(start).Hours() / 24)
	return GenerateBars(m.base(), days, start), nil
}

func (m *MockFetcher) FetchQuote(_ context.Context, symbol string) (*model.Quote, error) {
	if m.Fail[symbol] {
		return nil, ErrNoData
	}
	if q, ok := m.Quotes[symbol]; ok {
		return q, nil
	}
	p := m.base()
	return &model.Quote{
		Symbol:    symbol,
		Name:      symbol,
		PrevClose: p,
		LastClose: p * 1.01,
		Volume:    1_000_000,
		High:      p * 1.02,
		Low:       p * 0.99,
	}, nil
}

func (m *MockFetcher) base() float64 {
	if m.Base > 0 {
		return m.Base
	}
	return 100
}

// GenerateBars produces a gently trending synthetic daily series.
func GenerateBars(basePrice float64, count int, start time.Time) []model.OHLCV {
	if count < 0 {
		count = 0
	}
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1_000_000,
		}
	}
	return bars
}
