package traffic

import (
	"fmt"
	"math"

	"github.com/zumanm1/ospf-netplan/spf"
	"github.com/zumanm1/ospf-netplan/topology"
)

// Model names a synthetic matrix generation strategy (spec.md §4.6,
// GLOSSARY).
type Model string

const (
	ModelUniform    Model = "uniform"
	ModelPopulation Model = "population"
	ModelDistance   Model = "distance"
	ModelCustom     Model = "custom"
)

// CustomDemandFunc computes a single (src, dst) demand for ModelCustom.
type CustomDemandFunc func(src, dst string) float64

// SyntheticOptions configures SyntheticMatrix. Only the fields relevant
// to the selected Model need to be set.
type SyntheticOptions struct {
	// BaseMbps scales every model's output; defaults to 100 if zero.
	BaseMbps float64
	// Population maps router ID to a population figure, used by
	// ModelPopulation.
	Population map[string]float64
	// Custom computes demand directly, used by ModelCustom.
	Custom CustomDemandFunc
}

// SyntheticMatrix generates a Matrix for every ordered pair of distinct
// routers in snapshot per the named model (spec.md §4.6: "offered but not
// required by C7").
//
//   - uniform: every ordered pair gets BaseMbps.
//   - population: demand ∝ √(pop_src·pop_dst)·BaseMbps/10 (GLOSSARY).
//     Routers missing from opts.Population are treated as population 0,
//     producing zero demand (omitted from the matrix).
//   - distance: demand = BaseMbps / hop_count(src, dst), using
//     shortest_paths' canonical path length as the hop count; unreachable
//     pairs are omitted.
//   - custom: demand = opts.Custom(src, dst).
func SyntheticMatrix(snapshot *topology.Snapshot, model Model, opts SyntheticOptions) (Matrix, error) {
	base := opts.BaseMbps
	if base <= 0 {
		base = 100
	}

	routers := snapshot.Routers()
	m := make(Matrix)

	switch model {
	case ModelUniform:
		for _, src := range routers {
			for _, dst := range routers {
				if src.ID == dst.ID {
					continue
				}
				m.Set(src.ID, dst.ID, base)
			}
		}

	case ModelPopulation:
		for _, src := range routers {
			for _, dst := range routers {
				if src.ID == dst.ID {
					continue
				}
				demand := math.Sqrt(opts.Population[src.ID]*opts.Population[dst.ID]) * base / 10
				m.Set(src.ID, dst.ID, demand)
			}
		}

	case ModelDistance:
		for _, src := range routers {
			table, err := spf.ShortestPaths(snapshot, src.ID)
			if err != nil {
				return nil, fmt.Errorf("traffic: distance model spf from %s: %w", src.ID, err)
			}
			for _, dst := range routers {
				if src.ID == dst.ID {
					continue
				}
				res, ok := table.Reconstruct(dst.ID)
				if !ok {
					continue
				}
				hops := len(res.CanonicalPath) - 1
				if hops < 1 {
					hops = 1
				}
				m.Set(src.ID, dst.ID, base/float64(hops))
			}
		}

	case ModelCustom:
		if opts.Custom == nil {
			return nil, fmt.Errorf("traffic: custom model requires opts.Custom")
		}
		for _, src := range routers {
			for _, dst := range routers {
				if src.ID == dst.ID {
					continue
				}
				m.Set(src.ID, dst.ID, opts.Custom(src.ID, dst.ID))
			}
		}

	default:
		return nil, fmt.Errorf("traffic: unknown synthetic model %q", model)
	}

	return m, nil
}
