// Package rank produces sorted cross-sectional views for bar-chart panels.
package rank

import (
	"sort"

	"MarketBoard/internal/config"
	"MarketBoard/internal/model"
)

// build sorts entries ascending by value. The sort is stable: members with
// equal values keep their input order.
func build(metric string, entries []model.RankedEntry) model.RankedGroup {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Value < entries[j].Value })
	return model.RankedGroup{Metric: metric, Entries: entries}
}

func entry(label string, value float64) model.RankedEntry {
	return model.RankedEntry{Label: label, Value: value, Positive: value >= 0}
}

// ByChangePct ranks a group of instruments by their snapshot's daily
// percent change. Instruments without a snapshot are skipped; an
// all-unavailable group yields an empty ranking.
func ByChangePct(group []config.Instrument, snaps map[string]model.Snapshot) model.RankedGroup {
	entries := make([]model.RankedEntry, 0, len(group))
	for _, inst := range group {
		snap, ok := snaps[inst.Symbol]
		if !ok {
			continue
		}
		entries = append(entries, entry(inst.Name, snap.ChangePct))
	}
	return build("change_pct", entries)
}

// ByPeriodReturn ranks a group by percent return from the first to the
// last close of each instrument's series. Instruments whose series is
// absent or has fewer than two bars are skipped.
func ByPeriodReturn(group []config.Instrument, bySymbol map[string]model.Series) model.RankedGroup {
	entries := make([]model.RankedEntry, 0, len(group))
	for _, inst := range group {
		s, ok := bySymbol[inst.Symbol]
		if !ok || s.Len() < 2 {
			continue
		}
		first := s.Bars[0].Close
		last := s.Bars[s.Len()-1].Close
		if first == 0 {
			continue
		}
		entries = append(entries, entry(inst.Name, (last-first)/first*100))
	}
	return build("period_return", entries)
}

// Rerank sorts an existing group again. Ranking is idempotent: applying
// Rerank to an already ranked group reproduces the same order.
func Rerank(g model.RankedGroup) model.RankedGroup {
	entries := make([]model.RankedEntry, len(g.Entries))
	copy(entries, g.Entries)
	return build(g.Metric, entries)
}
