package spk

import (
	"context"
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	Seed      int64
	Restarts  int
	MaxIter   int
	Tolerance float64
}

func WithSeed(seed int64) Option     { return func(c *config) { c.Seed = seed } }
func WithRestarts(n int) Option      { return func(c *config) { c.Restarts = n } }
func WithMaxIterations(n int) Option { return func(c *config) { c.MaxIter = n } }
func WithTolerance(t float64) Option { return func(c *config) { c.Tolerance = t } }

// Engine runs the ranking pipeline. It holds no per-request state and is
// safe for concurrent use.
type Engine struct {
	km KMeans
}

// NewEngine returns an Engine with the default clustering parameters
// (seed 42, 10 restarts, 300 iterations, tolerance 1e-4) adjusted by opts.
func NewEngine(opts ...Option) *Engine {
	cfg := &config{
		Seed:      42,
		Restarts:  10,
		MaxIter:   300,
		Tolerance: 1e-4,
	}
	for _, o := range opts {
		o(cfg)
	}
	return &Engine{km: KMeans{
		K:        NumClusters,
		Seed:     cfg.Seed,
		Restarts: cfg.Restarts,
		MaxIter:  cfg.MaxIter,
		Tol:      cfg.Tolerance,
	}}
}

// Compute resolves the columns of t, scores and ranks every row with w, and
// assigns each student a cluster label. Cancellation of ctx is observed
// between stages.
func (e *Engine) Compute(ctx context.Context, t Table, w Weights) (Result, error) {
	schema, err := ResolveColumns(t.Header)
	if err != nil {
		return Result{}, err
	}
	students := Normalize(t, schema)
	if err := AverageModules(students); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := Score(students, w); err != nil {
		return Result{}, err
	}
	Rank(students)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	c, err := e.Cluster(students)
	if err != nil {
		return Result{}, err
	}
	return Assemble(students, c, schema.ModuleNames()), nil
}

// Cluster labels students in place from their raw criteria.
func (e *Engine) Cluster(students []Student) (Clustering, error) {
	points := make([][]float64, len(students))
	for i, s := range students {
		points[i] = s.features()
	}
	c, err := e.km.Fit(points)
	if err != nil {
		return Clustering{}, err
	}
	for i := range students {
		students[i].Cluster = c.Labels[i]
	}
	return c, nil
}
