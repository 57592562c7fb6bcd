package recorder

import "time"

// RunRecord summarizes one report generation.
type RunRecord struct {
	GeneratedAt time.Time
	DurationMS  int64
	PanelsTotal int
	PanelsEmpty int
	FetchFails  int
	OutputPath  string
}

// FetchEvent records the outcome of one series or quote fetch.
type FetchEvent struct {
	Symbol string
	Kind   string // "series" or "quote"
	OK     bool
	Bars   int
}

// PanelStatus records whether a panel rendered with data or degraded to a
// placeholder.
type PanelStatus struct {
	PanelID   string
	Kind      string
	Populated bool
}

// Recorder journals report runs for operational review. It never stores
// computed indicator history.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	RecordFetch(evt *FetchEvent) error
	RecordPanel(st *PanelStatus) error
	Close() error
}
