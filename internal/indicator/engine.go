// Package indicator computes the standard indicator set over a price
// series. All transforms are pure: short series yield all-absent columns,
// absent inputs yield absent outputs, and nothing here ever panics on
// degenerate data. Absent values are NaN.
package indicator

import (
	"math"

	"MarketBoard/internal/model"
)

const (
	maShortWindow  = 20
	maLongWindow   = 50
	emaFastSpan    = 12
	emaSlowSpan    = 26
	signalSpan     = 9
	bollingerWidth = 2.0
	rsiPeriod      = 14
	volumeWindow   = 20

	// rsiEpsilon keeps the loss denominator non-zero on loss-free windows.
	rsiEpsilon = 1e-6
)

// Compute derives the full indicator set from one series. The result is
// aligned with series.Bars and is never mutated afterwards.
func Compute(s model.Series) model.IndicatorSet {
	closes := s.Closes()

	set := model.IndicatorSet{
		MA20:     SMA(closes, maShortWindow),
		MA50:     SMA(closes, maLongWindow),
		EMA12:    EMA(closes, emaFastSpan),
		EMA26:    EMA(closes, emaSlowSpan),
		RSI:      RSI(closes, rsiPeriod),
		VolumeMA: SMA(s.Volumes(), volumeWindow),
	}

	set.MACD = subtract(set.EMA12, set.EMA26)
	set.Signal = EMA(set.MACD, signalSpan)
	set.Histogram = subtract(set.MACD, set.Signal)

	std := rollingStd(closes, maShortWindow)
	set.BBMid = set.MA20
	set.BBUpper = offset(set.BBMid, std, bollingerWidth)
	set.BBLower = offset(set.BBMid, std, -bollingerWidth)

	return set
}

func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// SMA computes a trailing simple moving average. Entries before the window
// fills are NaN; a series shorter than the window is entirely NaN.
func SMA(vals []float64, window int) []float64 {
	out := nans(len(vals))
	if window <= 0 || len(vals) < window {
		return out
	}
	sum := 0.0
	for i, v := range vals {
		sum += v
		if i >= window {
			sum -= vals[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// EMA computes an exponential moving average with alpha = 2/(span+1),
// seeded by the first defined input and defined from that point onward.
func EMA(vals []float64, span int) []float64 {
	out := nans(len(vals))
	if span <= 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	started := false
	var prev float64
	for i, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if !started {
			prev = v
			started = true
		} else {
			prev = alpha*v + (1-alpha)*prev
		}
		out[i] = prev
	}
	return out
}

// RSI computes the relative strength index from simple rolling means of
// gains and losses over the trailing period. This is deliberately the
// undamped rolling-mean variant, not Wilder smoothing. Entries before
// index `period` are NaN.
func RSI(vals []float64, period int) []float64 {
	out := nans(len(vals))
	if period <= 0 || len(vals) < period+1 {
		return out
	}
	var gainSum, lossSum float64
	for i := 1; i < len(vals); i++ {
		d := vals[i] - vals[i-1]
		if d > 0 {
			gainSum += d
		} else {
			lossSum -= d
		}
		if i > period {
			old := vals[i-period] - vals[i-period-1]
			if old > 0 {
				gainSum -= old
			} else {
				lossSum += old
			}
		}
		if i >= period {
			avgGain := gainSum / float64(period)
			avgLoss := lossSum / float64(period)
			out[i] = 100 - 100/(1+avgGain/(avgLoss+rsiEpsilon))
		}
	}
	return out
}

// rollingStd computes the trailing population standard deviation over the
// window, aligned with SMA of the same window.
func rollingStd(vals []float64, window int) []float64 {
	out := nans(len(vals))
	if window <= 0 || len(vals) < window {
		return out
	}
	for i := window - 1; i < len(vals); i++ {
		mean := 0.0
		for j := i - window + 1; j <= i; j++ {
			mean += vals[j]
		}
		mean /= float64(window)
		variance := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := vals[j] - mean
			variance += d * d
		}
		out[i] = math.Sqrt(variance / float64(window))
	}
	return out
}

func subtract(a, b []float64) []float64 {
	out := nans(len(a))
	for i := range a {
		out[i] = a[i] - b[i] // NaN propagates
	}
	return out
}

func offset(base, std []float64, mult float64) []float64 {
	out := nans(len(base))
	for i := range base {
		out[i] = base[i] + mult*std[i]
	}
	return out
}
