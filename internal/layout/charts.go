package layout

import "MarketBoard/internal/model"

// Chart builders translate a computed indicator set into the declarative
// chart payloads the renderer consumes. They assume the series is present;
// absence is handled one level up by Compose.

// PriceChart builds the broad-market panel: close with both moving
// averages and the Bollinger band behind them.
func PriceChart(s model.Series, ind model.IndicatorSet) *model.ChartData {
	return &model.ChartData{
		Dates: s.Dates(),
		Lines: []model.ChartLine{
			{Label: s.Symbol + " Close", Style: model.StyleSolid, Color: model.ColorPrimary, Values: s.Closes()},
			{Label: "MA20", Style: model.StyleDashed, Color: model.ColorAccent, Values: ind.MA20},
			{Label: "MA50", Style: model.StyleDashed, Color: model.ColorDown, Values: ind.MA50},
		},
		Band: &model.ChartBand{Label: "Bollinger", Color: model.ColorPrimary, Upper: ind.BBUpper, Lower: ind.BBLower},
	}
}

// RSIChart builds the oscillator panel with the 70/30 reference levels and
// a fixed 0-100 range.
func RSIChart(s model.Series, ind model.IndicatorSet) *model.ChartData {
	yr := [2]float64{0, 100}
	return &model.ChartData{
		Dates: s.Dates(),
		Lines: []model.ChartLine{
			{Label: "RSI", Style: model.StyleSolid, Color: model.ColorAccent, Values: ind.RSI},
		},
		Levels: []model.RefLevel{
			{Value: 70, Color: model.ColorDown},
			{Value: 30, Color: model.ColorUp},
		},
		YRange: &yr,
	}
}

// MACDChart builds the divergence panel: MACD and signal lines over the
// sign-colored histogram.
func MACDChart(s model.Series, ind model.IndicatorSet) *model.ChartData {
	return &model.ChartData{
		Dates: s.Dates(),
		Lines: []model.ChartLine{
			{Label: "MACD", Style: model.StyleSolid, Color: model.ColorPrimary, Values: ind.MACD},
			{Label: "Signal", Style: model.StyleDashed, Color: model.ColorDown, Values: ind.Signal},
		},
		Bars: &model.ChartBars{Label: "Histogram", Values: ind.Histogram},
	}
}

// TrendChart builds a short-window instrument panel. The close line and
// band take the up or down role depending on the period's direction.
func TrendChart(s model.Series, ind model.IndicatorSet) *model.ChartData {
	trend := model.ColorUp
	if n := s.Len(); n > 0 && s.Bars[n-1].Close < s.Bars[0].Close {
		trend = model.ColorDown
	}
	return &model.ChartData{
		Dates: s.Dates(),
		Lines: []model.ChartLine{
			{Label: s.Symbol, Style: model.StyleSolid, Color: trend, Values: s.Closes()},
			{Label: "MA20", Style: model.StyleDashed, Color: model.ColorAccent, Values: ind.MA20},
		},
		Band: &model.ChartBand{Label: "Bollinger", Color: trend, Upper: ind.BBUpper, Lower: ind.BBLower},
	}
}
