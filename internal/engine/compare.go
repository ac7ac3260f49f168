package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tbakker/roofscope/internal/location"
)

// compareConcurrency caps the workers used by CompareAll. The computation is
// cheap; the cap mostly keeps goroutine count proportional on big catalogs.
const compareConcurrency = 4

// Comparison pairs a roof type with its bundle for the comparison view.
type Comparison struct {
	RoofType string `json:"roof_type"`
	Name     string `json:"name"`
	Bundle   Bundle `json:"bundle"`
}

// CompareAll computes a bundle for every catalog entry using the same area,
// unit, and solar flag from cfg. Results come back in catalog key order
// regardless of completion order, so output is deterministic.
func (e *Engine) CompareAll(ctx context.Context, cfg Configuration, loc *location.Location) ([]Comparison, error) {
	keys := e.catalog.Keys()
	results := make([]Comparison, len(keys))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(compareConcurrency)

	for i, key := range keys {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			entryCfg := cfg
			entryCfg.RoofType = key
			bundle, err := e.Compute(entryCfg, loc)
			if err != nil {
				return fmt.Errorf("comparing %s: %w", key, err)
			}

			rec, err := e.catalog.Lookup(key)
			if err != nil {
				return err
			}

			results[i] = Comparison{RoofType: key, Name: rec.Name, Bundle: bundle}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
