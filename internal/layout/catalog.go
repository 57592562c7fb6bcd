// Package layout binds the fixed panel catalog to available data.
//
// The catalog is declarative: every slot names its grid rectangle up
// front, and the whole set is validated for bounds and overlap once at
// startup instead of being computed per panel.
package layout

import (
	"fmt"

	"MarketBoard/internal/config"
	"MarketBoard/internal/model"
)

// Grid dimensions of the report.
const (
	GridRows = 5
	GridCols = 8
)

// Slot is one catalog entry: a panel identity, its kind, and where it
// lives in the grid. The data it binds to is resolved at compose time via
// the slot ID.
type Slot struct {
	ID    string
	Kind  model.PanelKind
	Title string
	Rect  model.GridRect
}

// Catalog is the complete, ordered slot set for one report layout.
type Catalog struct {
	Rows  int
	Cols  int
	Slots []Slot
}

// Validate checks that every slot fits the grid and no two slots share a
// cell. It runs once at startup; a failure here is a configuration bug.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Slots))
	for i, s := range c.Slots {
		if s.ID == "" {
			return fmt.Errorf("slot %d has no id", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate slot id %q", s.ID)
		}
		seen[s.ID] = true
		if !s.Rect.Within(c.Rows, c.Cols) {
			return fmt.Errorf("slot %q: rect %+v outside %dx%d grid", s.ID, s.Rect, c.Rows, c.Cols)
		}
		for _, o := range c.Slots[i+1:] {
			if s.Rect.Overlaps(o.Rect) {
				return fmt.Errorf("slots %q and %q overlap", s.ID, o.ID)
			}
		}
	}
	return nil
}

// SlotID builders keep catalog keys and compose-time bindings in sync.
func ScoreSlotID(group, symbol string) string { return group + ":" + symbol }
func MiniSlotID(symbol string) string         { return "mini:" + symbol }

// Default builds the standard 5x8 dashboard catalog from the configured
// instrument groups: a broad-market chart stack on the left, index and
// watchlist scorecards on the right, sector and watchlist rankings, and
// three short-window instrument charts.
func Default(cfg *config.Config) Catalog {
	c := Catalog{Rows: GridRows, Cols: GridCols}

	broadTitle := fmt.Sprintf("%s — 1 Year", cfg.Charts.Broad)
	c.add("broad", model.PanelTimeSeries, broadTitle, model.GridRect{Row: 0, Col: 0, RowSpan: 1, ColSpan: 3})
	c.add("broad_rsi", model.PanelTimeSeries, "RSI (14)", model.GridRect{Row: 1, Col: 0, RowSpan: 1, ColSpan: 3})
	c.add("broad_macd", model.PanelTimeSeries, "MACD", model.GridRect{Row: 2, Col: 0, RowSpan: 1, ColSpan: 3})

	for i, inst := range cfg.Groups.Indices {
		if i >= 4 {
			break
		}
		c.add(ScoreSlotID("index", inst.Symbol), model.PanelScorecard, inst.Name,
			model.GridRect{Row: 0, Col: 3 + i, RowSpan: 1, ColSpan: 1})
	}

	for i, inst := range cfg.Groups.Watchlist {
		if i >= 8 {
			break
		}
		rect := model.GridRect{Row: 1 + i/4, Col: 4 + i%4, RowSpan: 1, ColSpan: 1}
		c.add(ScoreSlotID("watch", inst.Symbol), model.PanelScorecard, inst.Name, rect)
	}

	c.add("sectors", model.PanelRankedBar,
		fmt.Sprintf("Sector Performance — %d Months (%%)", cfg.Windows.ShortDays/30),
		model.GridRect{Row: 3, Col: 0, RowSpan: 1, ColSpan: 4})

	for i, sym := range cfg.Charts.Minis {
		if i >= 2 {
			break
		}
		c.add(MiniSlotID(sym), model.PanelTimeSeries, fmt.Sprintf("%s — 3M", sym),
			model.GridRect{Row: 3, Col: 4 + i*2, RowSpan: 1, ColSpan: 2})
	}

	c.add("focus", model.PanelTimeSeries,
		fmt.Sprintf("%s — %d Months with Bollinger Bands", cfg.Charts.Focus, cfg.Windows.ShortDays/30),
		model.GridRect{Row: 4, Col: 0, RowSpan: 1, ColSpan: 4})

	c.add("movers", model.PanelRankedBar, "Watchlist Daily Change (%)",
		model.GridRect{Row: 4, Col: 4, RowSpan: 1, ColSpan: 4})

	return c
}

func (c *Catalog) add(id string, kind model.PanelKind, title string, rect model.GridRect) {
	c.Slots = append(c.Slots, Slot{ID: id, Kind: kind, Title: title, Rect: rect})
}
