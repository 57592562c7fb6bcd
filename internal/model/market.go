package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series holds normalized daily bars for one instrument over one window.
// Bars are strictly increasing in time once loaded through the series store
// and are not mutated afterwards.
type Series struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Len returns the number of bars.
func (s Series) Len() int { return len(s.Bars) }

// Dates returns the bar dates in order.
func (s Series) Dates() []time.Time {
	out := make([]time.Time, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Time
	}
	return out
}

// Closes returns the closing prices in order.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// Volumes returns the volumes in order.
func (s Series) Volumes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Volume
	}
	return out
}

// Quote is the raw latest-quote summary returned by a data source.
type Quote struct {
	Symbol    string
	Name      string
	PrevClose float64
	LastClose float64
	Volume    float64
	High      float64
	Low       float64
}
