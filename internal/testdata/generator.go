// Package testdata generates synthetic forecast panels for tests and
// benchmarks.
package testdata

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/okian/foresight/pkg/frame"
)

// Constants for value generation ranges.
const (
	baseLevelMin   = 20.0
	baseLevelRange = 80.0
	trendMax       = 2.0
	seasonalAmp    = 10.0
	seasonalPeriod = 7.0
)

// Config controls the shape of a generated panel.
type Config struct {
	// Series is the number of distinct series.
	Series int

	// Horizons is the number of rows per series (per cutoff when Cutoffs > 0).
	Horizons int

	// Cutoffs is the number of forecast folds; 0 omits the cutoff column.
	Cutoffs int

	// Models names the prediction columns to generate.
	Models []string

	// MissingRate is the per-model probability of a missing prediction.
	MissingRate float64

	// Noise is the amplitude of the forecast error.
	Noise float64

	// Seed makes the generated values reproducible.
	Seed int64
}

// Panel generates a forecast panel with columns unique_id, optional cutoff,
// y, and one prediction column per model. Values are reproducible for a
// fixed seed; series identifiers are fresh UUIDs per call.
func Panel(cfg Config) (*frame.DataFrame, error) {
	if cfg.Series <= 0 || cfg.Horizons <= 0 {
		return nil, fmt.Errorf("panel needs at least one series and one horizon, got %d and %d", cfg.Series, cfg.Horizons)
	}
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic seed for reproducible testing

	folds := cfg.Cutoffs
	if folds == 0 {
		folds = 1
	}
	rows := cfg.Series * folds * cfg.Horizons

	ids := make([]string, 0, rows)
	cutoffs := make([]string, 0, rows)
	target := make([]float64, 0, rows)
	preds := make([][]float64, len(cfg.Models))
	masks := make([][]bool, len(cfg.Models))
	for m := range cfg.Models {
		preds[m] = make([]float64, 0, rows)
		masks[m] = make([]bool, 0, rows)
	}

	origin := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for s := 0; s < cfg.Series; s++ {
		id := uuid.New().String()
		level := baseLevelMin + rng.Float64()*baseLevelRange
		trend := rng.Float64() * trendMax
		for f := 0; f < folds; f++ {
			cutoff := origin.AddDate(0, 0, f*cfg.Horizons).Format("2006-01-02")
			for h := 0; h < cfg.Horizons; h++ {
				t := float64(f*cfg.Horizons + h)
				y := level + trend*t + seasonalAmp*math.Sin(2*math.Pi*t/seasonalPeriod)
				ids = append(ids, id)
				cutoffs = append(cutoffs, cutoff)
				target = append(target, y)
				for m := range cfg.Models {
					if rng.Float64() < cfg.MissingRate {
						preds[m] = append(preds[m], 0)
						masks[m] = append(masks[m], false)
						continue
					}
					preds[m] = append(preds[m], y+cfg.Noise*(rng.Float64()*2-1))
					masks[m] = append(masks[m], true)
				}
			}
		}
	}

	cols := make([]frame.Series, 0, len(cfg.Models)+3)
	cols = append(cols, frame.NewStringSeries("unique_id", ids))
	if cfg.Cutoffs > 0 {
		cols = append(cols, frame.NewStringSeries("cutoff", cutoffs))
	}
	cols = append(cols, frame.NewNumericSeries("y", target, nil))
	for m, name := range cfg.Models {
		cols = append(cols, frame.NewNumericSeries(name, preds[m], masks[m]))
	}
	return frame.New(cols...)
}
