// Package report orchestrates one dashboard generation run: fan out all
// fetches, wait, derive indicators and rankings, compose the panel grid,
// and hand it to the renderer.
package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/config"
	"MarketBoard/internal/indicator"
	"MarketBoard/internal/layout"
	"MarketBoard/internal/metrics"
	"MarketBoard/internal/model"
	"MarketBoard/internal/quote"
	"MarketBoard/internal/rank"
	"MarketBoard/internal/recorder"
	"MarketBoard/internal/render"
	"MarketBoard/internal/series"

	"github.com/rs/zerolog"
)

// fetchTimeout bounds every individual series or quote fetch so one slow
// instrument cannot stall the barrier.
const fetchTimeout = 45 * time.Second

// Driver runs the full pipeline for the configured instrument groups.
type Driver struct {
	cfg      *config.Config
	store    *series.Store
	quotes   *quote.Aggregator
	catalog  layout.Catalog
	renderer render.Renderer
	rec      recorder.Recorder
	log      zerolog.Logger
}

// NewDriver wires the pipeline and validates the panel catalog once.
func NewDriver(cfg *config.Config, fetcher collector.Fetcher, renderer render.Renderer, rec recorder.Recorder, log zerolog.Logger) (*Driver, error) {
	catalog := layout.Default(cfg)
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("panel catalog: %w", err)
	}
	return &Driver{
		cfg:      cfg,
		store:    series.NewStore(fetcher, fetchTimeout, log),
		quotes:   quote.NewAggregator(fetcher, fetchTimeout, log),
		catalog:  catalog,
		renderer: renderer,
		rec:      rec,
		log:      log.With().Str("component", "report").Logger(),
	}, nil
}

// Run generates one report. Every fetch or computation failure degrades
// the affected panels; only a renderer failure is returned as an error.
func (d *Driver) Run(ctx context.Context) error {
	start := time.Now()
	longStart := start.AddDate(0, 0, -d.cfg.Windows.LongDays)
	shortStart := start.AddDate(0, 0, -d.cfg.Windows.ShortDays)

	// Independent fetch jobs share no state beyond their own result slot.
	seriesJobs := map[string]time.Time{d.cfg.Charts.Broad: longStart}
	addShort := func(symbol string) {
		if _, ok := seriesJobs[symbol]; !ok {
			seriesJobs[symbol] = shortStart
		}
	}
	for _, sym := range d.cfg.Charts.Minis {
		addShort(sym)
	}
	addShort(d.cfg.Charts.Focus)
	for _, inst := range d.cfg.Groups.Sectors {
		addShort(inst.Symbol)
	}

	quoteJobs := make(map[string]string) // symbol -> display name
	for _, inst := range append(append([]config.Instrument{}, d.cfg.Groups.Watchlist...), d.cfg.Groups.Indices...) {
		if _, ok := quoteJobs[inst.Symbol]; !ok {
			quoteJobs[inst.Symbol] = inst.Name
		}
	}

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		bySymbol   = make(map[string]model.Series, len(seriesJobs))
		snaps      = make(map[string]model.Snapshot, len(quoteJobs))
		fetchFails int
	)

	for symbol, from := range seriesJobs {
		wg.Add(1)
		go func(symbol string, from time.Time) {
			defer wg.Done()
			s, ok := d.store.Load(ctx, symbol, from, start)
			mu.Lock()
			if ok {
				bySymbol[symbol] = s
			} else {
				fetchFails++
			}
			mu.Unlock()
			d.recordFetch(symbol, "series", ok, s.Len())
		}(symbol, from)
	}
	for symbol, name := range quoteJobs {
		wg.Add(1)
		go func(name, symbol string) {
			defer wg.Done()
			snap, ok := d.quotes.Snapshot(ctx, name, symbol)
			mu.Lock()
			if ok {
				snaps[symbol] = snap
			} else {
				fetchFails++
			}
			mu.Unlock()
			d.recordFetch(symbol, "quote", ok, 0)
		}(name, symbol)
	}
	wg.Wait()

	// Everything past the barrier is pure computation over local data.
	in := layout.Inputs{
		Charts: make(map[string]*model.ChartData),
		Scores: make(map[string]*model.Snapshot),
		Ranked: make(map[string]*model.RankedGroup),
	}

	if s, ok := bySymbol[d.cfg.Charts.Broad]; ok {
		ind := indicator.Compute(s)
		in.Charts["broad"] = layout.PriceChart(s, ind)
		in.Charts["broad_rsi"] = layout.RSIChart(s, ind)
		in.Charts["broad_macd"] = layout.MACDChart(s, ind)
	}
	for _, sym := range d.cfg.Charts.Minis {
		if s, ok := bySymbol[sym]; ok {
			in.Charts[layout.MiniSlotID(sym)] = layout.TrendChart(s, indicator.Compute(s))
		}
	}
	if s, ok := bySymbol[d.cfg.Charts.Focus]; ok {
		in.Charts["focus"] = layout.TrendChart(s, indicator.Compute(s))
	}

	for _, inst := range d.cfg.Groups.Indices {
		if snap, ok := snaps[inst.Symbol]; ok {
			sn := snap
			in.Scores[layout.ScoreSlotID("index", inst.Symbol)] = &sn
		}
	}
	for _, inst := range d.cfg.Groups.Watchlist {
		if snap, ok := snaps[inst.Symbol]; ok {
			sn := snap
			in.Scores[layout.ScoreSlotID("watch", inst.Symbol)] = &sn
		}
	}

	sectors := rank.ByPeriodReturn(d.cfg.Groups.Sectors, bySymbol)
	in.Ranked["sectors"] = &sectors
	movers := rank.ByChangePct(d.cfg.Groups.Watchlist, snaps)
	in.Ranked["movers"] = &movers

	rep := &model.Report{
		Title:       d.cfg.Report.Title,
		GeneratedAt: start,
		Rows:        d.catalog.Rows,
		Cols:        d.catalog.Cols,
		Panels:      d.catalog.Compose(in),
	}

	empty := 0
	for _, p := range rep.Panels {
		state := "populated"
		if p.NoData {
			empty++
			state = "placeholder"
		}
		metrics.PanelsEmitted.WithLabelValues(state).Inc()
		if err := d.rec.RecordPanel(&recorder.PanelStatus{PanelID: p.ID, Kind: string(p.Kind), Populated: !p.NoData}); err != nil {
			d.log.Error().Err(err).Str("panel", p.ID).Msg("record panel status")
		}
	}

	if err := d.renderer.Render(rep); err != nil {
		metrics.ReportRuns.WithLabelValues("render_error").Inc()
		return fmt.Errorf("render report: %w", err)
	}

	elapsed := time.Since(start)
	metrics.ReportRuns.WithLabelValues("ok").Inc()
	metrics.ReportDuration.Observe(elapsed.Seconds())
	if err := d.rec.RecordRun(&recorder.RunRecord{
		GeneratedAt: start,
		DurationMS:  elapsed.Milliseconds(),
		PanelsTotal: len(rep.Panels),
		PanelsEmpty: empty,
		FetchFails:  fetchFails,
		OutputPath:  d.cfg.Output.Path,
	}); err != nil {
		d.log.Error().Err(err).Msg("record run")
	}

	d.log.Info().
		Int("panels", len(rep.Panels)).
		Int("placeholders", empty).
		Int("fetch_failures", fetchFails).
		Dur("elapsed", elapsed).
		Str("renderer", d.renderer.Name()).
		Msg("report generated")
	return nil
}

func (d *Driver) recordFetch(symbol, kind string, ok bool, bars int) {
	if !ok {
		metrics.FetchFailures.WithLabelValues(kind).Inc()
	}
	if err := d.rec.RecordFetch(&recorder.FetchEvent{Symbol: symbol, Kind: kind, OK: ok, Bars: bars}); err != nil {
		d.log.Error().Err(err).Str("symbol", symbol).Msg("record fetch event")
	}
}
