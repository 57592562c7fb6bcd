package model

// Snapshot is the canonical latest-quote record for one instrument,
// built from the two most recent closes. Availability is carried by the
// (Snapshot, bool) pair at the aggregator boundary; a missing snapshot is
// a normal state, not an error.
type Snapshot struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
	Volume    float64 `json:"volume"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
}

// RankedEntry is one labeled value in a cross-sectional ranking.
// Positive tags the sign for bar coloring (zero counts as positive).
type RankedEntry struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Positive bool    `json:"positive"`
}

// RankedGroup is an ascending, stably sorted cross-sectional view.
type RankedGroup struct {
	Metric  string        `json:"metric"`
	Entries []RankedEntry `json:"entries"`
}

// Empty reports whether the group has no rankable members.
func (g RankedGroup) Empty() bool { return len(g.Entries) == 0 }
