package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/filtra/dataset"
	"github.com/katalvlaran/filtra/distance"
	"github.com/katalvlaran/filtra/edges"
	"github.com/katalvlaran/filtra/filtration"
	"github.com/katalvlaran/filtra/grade"
	"github.com/katalvlaran/filtra/internal/config"
	"github.com/katalvlaran/filtra/internal/logging"
	"github.com/katalvlaran/filtra/metrics"
	"github.com/katalvlaran/filtra/rips"
	"github.com/katalvlaran/filtra/simplicial"
)

// ErrBigradedEdges indicates -bigraded together with an edge-list input,
// which carries no distances to derive codensity from.
var ErrBigradedEdges = errors.New("filtrate: bigraded build needs a matrix or dataset")

// Input names optional file sources that replace sampling.
type Input struct {
	EdgesPath  string
	MatrixPath string
}

// Run executes one build and writes its CSV report to w.
func Run(ctx context.Context, cfg *config.Config, in Input, log logging.Logger, w io.Writer) (*Report, error) {
	start := time.Now()
	rep := &Report{
		RunID:     uuid.New().String(),
		Grading:   "real",
		MaxDim:    cfg.Build.MaxDim,
		Threshold: cfg.Build.Threshold,
	}
	if cfg.Build.Bigraded {
		rep.Grading = "bigraded"
	}
	ctx = logging.WithArgs(ctx, "run", rep.RunID)

	reg := prometheus.NewRegistry()
	counters, err := metrics.NewObserver(reg)
	if err != nil {
		return nil, err
	}
	observer := filtration.Observers(counters, logging.NewObserver(ctx, log))

	var stats filtration.Stats
	switch {
	case in.EdgesPath != "":
		if cfg.Build.Bigraded {
			return nil, ErrBigradedEdges
		}
		rep.Source = in.EdgesPath
		list, err := readEdges(in.EdgesPath)
		if err != nil {
			return nil, err
		}
		log.InfoCtx(ctx, "edge list loaded", "path", in.EdgesPath, "vertices", list.NumVertices, "edges", list.Len())
		f, err := rips.Build(list, cfg.Build.MaxDim,
			rips.WithObserver[grade.Real](observer), rips.WithContext[grade.Real](ctx))
		if err != nil {
			return nil, err
		}
		if stats, err = audit(ctx, f, log); err != nil {
			return nil, err
		}

	default:
		m, source, err := loadMatrix(ctx, cfg, in, reg, log)
		if err != nil {
			return nil, err
		}
		rep.Source = source
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if stats, err = buildFromMatrix(ctx, cfg, m, observer, log); err != nil {
			return nil, err
		}
	}
	rep.Stats = stats

	rep.Counters, err = gather(reg)
	if err != nil {
		return nil, err
	}
	rep.Elapsed = time.Since(start)
	log.InfoCtx(ctx, "filtration built",
		"source", rep.Source, "grading", rep.Grading,
		"cells", stats.Cells, "total", stats.Total, "elapsed", rep.Elapsed)

	if err := WriteCSV(w, rep); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	return rep, nil
}

func readEdges(path string) (*edges.List[grade.Real], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return edges.Read(f, grade.ParseReal)
}

// loadMatrix reads -matrix, or samples the configured dataset through the
// cache when one is configured.
func loadMatrix(ctx context.Context, cfg *config.Config, in Input, reg prometheus.Registerer, log logging.Logger) (*distance.Matrix, string, error) {
	if in.MatrixPath != "" {
		f, err := os.Open(in.MatrixPath)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		m, err := distance.Read(f)
		if err != nil {
			return nil, "", err
		}
		log.InfoCtx(ctx, "matrix loaded", "path", in.MatrixPath, "points", m.Size())

		return m, in.MatrixPath, nil
	}

	kind, err := dataset.ParseKind(cfg.Dataset.Kind)
	if err != nil {
		return nil, "", err
	}
	spec := dataset.Spec{Kind: kind, Points: cfg.Dataset.Points, Seed: cfg.Dataset.Seed, Noise: cfg.Dataset.Noise}

	var cache *dataset.Cache
	if cfg.Cache.Dir != "" {
		if cache, err = dataset.Open(cfg.Cache.Dir, cfg.Cache.MemEntries); err != nil {
			return nil, "", err
		}
		defer cache.Close()
		if err := reg.Register(metrics.NewCacheCollector(cache)); err != nil {
			return nil, "", err
		}
	}
	m, err := dataset.Load(spec, cache)
	if err != nil {
		return nil, "", err
	}
	if cache != nil {
		st := cache.Stats()
		log.DebugCtx(ctx, "cache", "dir", cfg.Cache.Dir, "hits", st.MemHits+st.DiskHits, "misses", st.Misses)
	}
	log.InfoCtx(ctx, "dataset ready", "key", spec.Key(), "max_distance", m.Max())

	return m, spec.Key(), nil
}

func buildFromMatrix(ctx context.Context, cfg *config.Config, m *distance.Matrix, observer filtration.Observer, log logging.Logger) (filtration.Stats, error) {
	if !cfg.Build.Bigraded {
		f, err := rips.Build(m.Edges(cfg.Build.Threshold), cfg.Build.MaxDim,
			rips.WithObserver[grade.Real](observer), rips.WithContext[grade.Real](ctx))
		if err != nil {
			return filtration.Stats{}, err
		}

		return audit(ctx, f, log)
	}

	vertexGrades, list, err := m.Bigraded(cfg.Build.K, cfg.Build.Threshold)
	if err != nil {
		return filtration.Stats{}, err
	}
	f, err := rips.Build(list, cfg.Build.MaxDim,
		rips.WithVertexGrades(vertexGrades), rips.WithObserver[grade.Vector](observer),
		rips.WithContext[grade.Vector](ctx))
	if err != nil {
		return filtration.Stats{}, err
	}

	return audit(ctx, f, log)
}

// audit re-checks every invariant, then seals the filtration.
func audit[G grade.Grade[G]](ctx context.Context, f *filtration.Filtration[G, *simplicial.Set], log logging.Logger) (filtration.Stats, error) {
	if err := f.Validate(); err != nil {
		return filtration.Stats{}, fmt.Errorf("audit: %w", err)
	}
	f.Freeze()
	st := f.Stats()
	log.DebugCtx(ctx, "audit passed", "max_dim", st.MaxDimension, "frozen", st.Frozen)

	return st, nil
}

// gather sums every gathered series per metric family.
func gather(g prometheus.Gatherer) (map[string]float64, error) {
	mfs, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(mfs))
	for _, mf := range mfs {
		var sum float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				sum += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				sum += m.GetGauge().GetValue()
			}
		}
		out[mf.GetName()] = sum
	}

	return out, nil
}
