package render

import (
	"fmt"
	"strings"

	"MarketBoard/internal/model"

	"github.com/dustin/go-humanize"
)

// TextRenderer writes a monospace textual rendition of the report, one
// block per panel in catalog order.
type TextRenderer struct {
	Path string
}

func (r *TextRenderer) Name() string { return "text" }

func (r *TextRenderer) Render(rep *model.Report) error {
	out, closeFn, err := openTarget(r.Path)
	if err != nil {
		return err
	}
	defer closeFn()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s | %s\n", rep.Title, rep.GeneratedAt.Format("January 02, 2006  15:04")))
	b.WriteString(fmt.Sprintf("grid %dx%d, %d panels\n\n", rep.Rows, rep.Cols, len(rep.Panels)))

	for _, p := range rep.Panels {
		b.WriteString(fmt.Sprintf("[r%dc%d %dx%d] %s\n", p.Rect.Row, p.Rect.Col, p.Rect.RowSpan, p.Rect.ColSpan, p.Title))
		if p.NoData {
			b.WriteString("  no data\n\n")
			continue
		}
		switch p.Kind {
		case model.PanelScorecard:
			writeScorecard(&b, p.Score)
		case model.PanelTimeSeries:
			writeChartSummary(&b, p.Chart)
		case model.PanelRankedBar:
			writeRankedBars(&b, p.Ranked)
		}
		b.WriteString("\n")
	}

	if _, err := out.WriteString(b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeScorecard(b *strings.Builder, s *model.Snapshot) {
	arrow := "▲"
	if s.Change < 0 {
		arrow = "▼"
	}
	b.WriteString(fmt.Sprintf("  $%s  %s %.2f%% (%+.2f)\n",
		humanize.CommafWithDigits(s.Price, 2), arrow, abs(s.ChangePct), s.Change))
	b.WriteString(fmt.Sprintf("  vol %s  H %s  L %s\n",
		humanize.SIWithDigits(s.Volume, 1, ""),
		humanize.CommafWithDigits(s.High, 2),
		humanize.CommafWithDigits(s.Low, 2)))
}

func writeChartSummary(b *strings.Builder, c *model.ChartData) {
	parts := make([]string, 0, len(c.Lines)+2)
	for _, line := range c.Lines {
		if v, ok := model.LastDefined(line.Values); ok {
			parts = append(parts, fmt.Sprintf("%s %.2f", line.Label, v))
		}
	}
	if c.Band != nil {
		lo, okLo := model.LastDefined(c.Band.Lower)
		hi, okHi := model.LastDefined(c.Band.Upper)
		if okLo && okHi {
			parts = append(parts, fmt.Sprintf("%s %.2f..%.2f", c.Band.Label, lo, hi))
		}
	}
	if c.Bars != nil {
		if v, ok := model.LastDefined(c.Bars.Values); ok {
			parts = append(parts, fmt.Sprintf("%s %+.3f", c.Bars.Label, v))
		}
	}
	if len(parts) == 0 {
		b.WriteString("  (warming up)\n")
		return
	}
	b.WriteString("  " + strings.Join(parts, " | ") + "\n")
}

func writeRankedBars(b *strings.Builder, g *model.RankedGroup) {
	width := 0
	for _, e := range g.Entries {
		if len(e.Label) > width {
			width = len(e.Label)
		}
	}
	for _, e := range g.Entries {
		sign := "▲"
		if !e.Positive {
			sign = "▼"
		}
		b.WriteString(fmt.Sprintf("  %-*s %+7.2f%% %s\n", width, e.Label, e.Value, sign))
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
