package layout

import "MarketBoard/internal/model"

// Inputs carries the resolved data for one report run, keyed by slot ID.
// A missing key, nil payload, or empty ranking means the slot's dependency
// did not resolve.
type Inputs struct {
	Charts map[string]*model.ChartData
	Scores map[string]*model.Snapshot
	Ranked map[string]*model.RankedGroup
}

// Compose emits exactly one PanelSpec per catalog slot, in catalog order.
// A slot whose dependency is absent degrades to a placeholder panel that
// keeps its grid position and title; the grid is always fully populated no
// matter how much upstream data failed to load.
func (c Catalog) Compose(in Inputs) []model.PanelSpec {
	panels := make([]model.PanelSpec, 0, len(c.Slots))
	for _, slot := range c.Slots {
		p := model.PanelSpec{
			ID:    slot.ID,
			Kind:  slot.Kind,
			Title: slot.Title,
			Rect:  slot.Rect,
		}
		switch slot.Kind {
		case model.PanelTimeSeries:
			if chart := in.Charts[slot.ID]; chart != nil {
				p.Chart = chart
			} else {
				p.NoData = true
			}
		case model.PanelScorecard:
			if score := in.Scores[slot.ID]; score != nil {
				p.Score = score
			} else {
				p.NoData = true
			}
		case model.PanelRankedBar:
			if g := in.Ranked[slot.ID]; g != nil && !g.Empty() {
				p.Ranked = g
			} else {
				p.NoData = true
			}
		default:
			p.NoData = true
		}
		panels = append(panels, p)
	}
	return panels
}
