package model

import "time"

// PanelKind identifies what a panel draws.
type PanelKind string

const (
	PanelTimeSeries PanelKind = "timeseries"
	PanelScorecard  PanelKind = "scorecard"
	PanelRankedBar  PanelKind = "rankedbar"
)

// ColorRole is a palette role resolved to a concrete color by the renderer.
type ColorRole string

const (
	ColorUp      ColorRole = "up"
	ColorDown    ColorRole = "down"
	ColorPrimary ColorRole = "primary"
	ColorAccent  ColorRole = "accent"
	ColorMuted   ColorRole = "muted"
)

// LineStyle selects how a chart series is drawn.
type LineStyle string

const (
	StyleSolid  LineStyle = "solid"
	StyleDashed LineStyle = "dashed"
)

// GridRect is a rectangular cell range within the report grid.
type GridRect struct {
	Row     int `json:"row"`
	Col     int `json:"col"`
	RowSpan int `json:"row_span"`
	ColSpan int `json:"col_span"`
}

// Within reports whether the rect fits inside a rows x cols grid.
func (r GridRect) Within(rows, cols int) bool {
	return r.Row >= 0 && r.Col >= 0 && r.RowSpan > 0 && r.ColSpan > 0 &&
		r.Row+r.RowSpan <= rows && r.Col+r.ColSpan <= cols
}

// Overlaps reports whether two rects share any grid cell.
func (r GridRect) Overlaps(o GridRect) bool {
	return r.Row < o.Row+o.RowSpan && o.Row < r.Row+r.RowSpan &&
		r.Col < o.Col+o.ColSpan && o.Col < r.Col+r.ColSpan
}

// ChartLine is one plotted series with its display role.
type ChartLine struct {
	Label  string    `json:"label"`
	Style  LineStyle `json:"style"`
	Color  ColorRole `json:"color"`
	Values Column    `json:"values"`
}

// ChartBand is a filled region between two aligned columns.
type ChartBand struct {
	Label string    `json:"label"`
	Color ColorRole `json:"color"`
	Upper Column    `json:"upper"`
	Lower Column    `json:"lower"`
}

// ChartBars is an auxiliary bar series; the renderer colors each bar by
// its sign (non-negative up, negative down).
type ChartBars struct {
	Label  string `json:"label"`
	Values Column `json:"values"`
}

// RefLevel is a horizontal reference line.
type RefLevel struct {
	Value float64   `json:"value"`
	Color ColorRole `json:"color"`
}

// ChartData is the declarative payload of a time-series panel.
type ChartData struct {
	Dates  []time.Time `json:"dates"`
	Lines  []ChartLine `json:"lines"`
	Band   *ChartBand  `json:"band,omitempty"`
	Bars   *ChartBars  `json:"bars,omitempty"`
	Levels []RefLevel  `json:"levels,omitempty"`
	YRange *[2]float64 `json:"y_range,omitempty"`
}

// PanelSpec describes one panel for the external renderer. Exactly one of
// Chart/Score/Ranked is set according to Kind; a placeholder panel carries
// NoData and only its title.
type PanelSpec struct {
	ID     string       `json:"id"`
	Kind   PanelKind    `json:"kind"`
	Title  string       `json:"title"`
	Rect   GridRect     `json:"rect"`
	NoData bool         `json:"no_data"`
	Chart  *ChartData   `json:"chart,omitempty"`
	Score  *Snapshot    `json:"score,omitempty"`
	Ranked *RankedGroup `json:"ranked,omitempty"`
}

// Report is the full panel set handed to the renderer.
type Report struct {
	Title       string      `json:"title"`
	GeneratedAt time.Time   `json:"generated_at"`
	Rows        int         `json:"rows"`
	Cols        int         `json:"cols"`
	Panels      []PanelSpec `json:"panels"`
}
