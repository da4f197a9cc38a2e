package flake

// Grid resolution bounds along the longer axis of the distance field.
const (
	MinResolution     = 160
	MaxResolution     = 240
	DefaultResolution = 220
)

// DefaultDepthRatio is the total depth of the normalized mesh as a fraction
// of its planar diameter.
const DefaultDepthRatio = 1.0 / 20.0

// Option configures a pipeline run.
//
// Example:
//
//	res := flake.Generate(params,
//	    flake.WithResolution(240),
//	    flake.WithWorkers(1),
//	)
type Option func(*options)

type options struct {
	tuning     Tuning
	resolution int
	workers    int
	depthRatio float64
}

func defaultOptions() options {
	return options{
		tuning:     DefaultTuning(),
		resolution: DefaultResolution,
		workers:    0, // GOMAXPROCS
		depthRatio: DefaultDepthRatio,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.resolution = clampInt(o.resolution, MinResolution, MaxResolution)
	if !(o.depthRatio > 0) || o.depthRatio > 1 {
		o.depthRatio = DefaultDepthRatio
	}
	return o
}

// WithTuning replaces the generator, stroke, refine and relief constants.
// An invalid tuning (see Tuning.Validate) is ignored and the defaults stay in
// effect.
func WithTuning(t Tuning) Option {
	return func(o *options) {
		if err := t.Validate(); err != nil {
			Logger().Warn("flake: ignoring invalid tuning", "err", err)
			return
		}
		o.tuning = t
	}
}

// WithResolution sets the number of distance field cells along the longer
// axis. Values are clamped to [MinResolution, MaxResolution].
func WithResolution(cells int) Option {
	return func(o *options) {
		o.resolution = cells
	}
}

// WithWorkers sets the number of goroutines used for distance field and
// relief evaluation. Zero or negative uses GOMAXPROCS; 1 runs inline.
// Output is identical for every worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithDepthRatio sets the normalized depth as a fraction of the diameter.
// Values outside (0,1] fall back to DefaultDepthRatio.
func WithDepthRatio(r float64) Option {
	return func(o *options) {
		o.depthRatio = r
	}
}
