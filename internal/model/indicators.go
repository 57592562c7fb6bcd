package model

import "math"

// IndicatorSet holds all derived indicator columns for one series.
// Every column is aligned with the source bars; entries that fall inside a
// leading warmup window are NaN. An IndicatorSet is never mutated after it
// is computed.
type IndicatorSet struct {
	MA20      []float64
	MA50      []float64
	EMA12     []float64
	EMA26     []float64
	MACD      []float64
	Signal    []float64
	Histogram []float64
	BBMid     []float64
	BBUpper   []float64
	BBLower   []float64
	RSI       []float64
	VolumeMA  []float64
}

// Defined reports whether an indicator value is present (not NaN).
func Defined(v float64) bool { return !math.IsNaN(v) }

// LastDefined returns the most recent defined value of a column.
func LastDefined(col []float64) (float64, bool) {
	for i := len(col) - 1; i >= 0; i-- {
		if Defined(col[i]) {
			return col[i], true
		}
	}
	return 0, false
}
