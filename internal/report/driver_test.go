package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/config"
	"MarketBoard/internal/model"
	"MarketBoard/internal/recorder"

	"github.com/rs/zerolog"
)

// captureRenderer records the report instead of writing it anywhere.
type captureRenderer struct {
	rep  *model.Report
	fail bool
}

func (c *captureRenderer) Render(rep *model.Report) error {
	if c.fail {
		return errors.New("sink unavailable")
	}
	c.rep = rep
	return nil
}

func (c *captureRenderer) Name() string { return "capture" }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}
	return cfg
}

func newTestDriver(t *testing.T, cfg *config.Config, fetcher collector.Fetcher, r *captureRenderer) *Driver {
	t.Helper()
	d, err := NewDriver(cfg, fetcher, r, recorder.NewNoopRecorder(), zerolog.Nop())
	if err != nil {
		t.Fatalf("new driver: %v", err)
	}
	return d
}

func TestRun_HealthySourcePopulatesEveryPanel(t *testing.T) {
	cfg := testConfig(t)
	r := &captureRenderer{}
	d := newTestDriver(t, cfg, &collector.MockFetcher{}, r)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.rep == nil {
		t.Fatal("renderer never received a report")
	}
	if len(r.rep.Panels) != 20 {
		t.Fatalf("panel count = %d, want 20", len(r.rep.Panels))
	}
	for _, p := range r.rep.Panels {
		if p.NoData {
			t.Errorf("panel %q is a placeholder despite a healthy source", p.ID)
		}
	}
	if r.rep.Rows != 5 || r.rep.Cols != 8 {
		t.Errorf("grid = %dx%d, want 5x8", r.rep.Rows, r.rep.Cols)
	}
}

func TestRun_FailedFetchesDegradeToPlaceholders(t *testing.T) {
	cfg := testConfig(t)
	cfg.Groups.Watchlist = []config.Instrument{
		{Name: "Apple", Symbol: "AAPL"},
		{Name: "Nothing", Symbol: "NOPE"},
	}
	fetcher := &collector.MockFetcher{Fail: map[string]bool{"NOPE": true, cfg.Charts.Broad: true}}
	r := &captureRenderer{}
	d := newTestDriver(t, cfg, fetcher, r)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("fetch failures must not fail the run: %v", err)
	}

	byID := make(map[string]model.PanelSpec)
	for _, p := range r.rep.Panels {
		byID[p.ID] = p
	}

	for _, id := range []string{"broad", "broad_rsi", "broad_macd", "watch:NOPE"} {
		p, ok := byID[id]
		if !ok {
			t.Fatalf("panel %q missing from the grid", id)
		}
		if !p.NoData {
			t.Errorf("panel %q should be a placeholder", id)
		}
		if p.Title == "" {
			t.Errorf("placeholder %q lost its title", id)
		}
	}
	if p := byID["watch:AAPL"]; p.NoData {
		t.Error("unaffected panel watch:AAPL degraded")
	}
	if p := byID["focus"]; p.NoData {
		t.Error("unaffected panel focus degraded")
	}
}

func TestRun_AllSourcesDownStillRendersFullGrid(t *testing.T) {
	cfg := testConfig(t)
	fail := make(map[string]bool)
	for _, g := range [][]config.Instrument{cfg.Groups.Watchlist, cfg.Groups.Indices, cfg.Groups.Sectors} {
		for _, inst := range g {
			fail[inst.Symbol] = true
		}
	}
	fail[cfg.Charts.Broad] = true
	fail[cfg.Charts.Focus] = true
	for _, sym := range cfg.Charts.Minis {
		fail[sym] = true
	}

	r := &captureRenderer{}
	d := newTestDriver(t, cfg, &collector.MockFetcher{Fail: fail}, r)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("a dead source must not fail the run: %v", err)
	}
	if len(r.rep.Panels) != 20 {
		t.Fatalf("panel count = %d, want the full grid of 20", len(r.rep.Panels))
	}
	for _, p := range r.rep.Panels {
		if !p.NoData {
			t.Errorf("panel %q populated with no data source", p.ID)
		}
	}
}

func TestRun_RendererErrorIsFatal(t *testing.T) {
	cfg := testConfig(t)
	d := newTestDriver(t, cfg, &collector.MockFetcher{}, &captureRenderer{fail: true})

	err := d.Run(context.Background())
	if err == nil {
		t.Fatal("renderer failure must propagate")
	}
	if !strings.Contains(err.Error(), "render report") {
		t.Errorf("error = %v, want render wrapping", err)
	}
}
