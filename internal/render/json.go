package render

import (
	"encoding/json"
	"fmt"

	"MarketBoard/internal/config"
	"MarketBoard/internal/model"
)

// JSONRenderer emits the full panel description set for an external
// plotting frontend. The palette travels with the document so the
// frontend can resolve color roles without extra configuration.
type JSONRenderer struct {
	Path    string
	Palette config.Palette
}

func (r *JSONRenderer) Name() string { return "json" }

type jsonDocument struct {
	*model.Report
	Palette config.Palette `json:"palette"`
}

func (r *JSONRenderer) Render(rep *model.Report) error {
	out, closeFn, err := openTarget(r.Path)
	if err != nil {
		return err
	}
	defer closeFn()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonDocument{Report: rep, Palette: r.Palette}); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
