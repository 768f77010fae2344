package fft

import (
	"github.com/cwbudde/algo-ndfft/dsp/fft/plan"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

type config struct {
	direction    plan.Direction
	hasDirection bool
	placement    plan.Placement
	batch        int
	norm         plan.Normalization
	from, to     any
	bound        bool
}

// Option mutates the transform configuration.
type Option func(*config)

func defaultConfig() config {
	return config{
		placement: plan.OutOfPlace,
		batch:     1,
		norm:      plan.NormalizeAuto,
	}
}

// WithDirection sets the direction of a complex transform. Real-to-complex
// transforms are always forward and complex-to-real ones backward; a
// conflicting direction makes New fail.
func WithDirection(d plan.Direction) Option {
	return func(cfg *config) {
		cfg.direction = d
		cfg.hasDirection = true
	}
}

// WithPlacement selects in-place or out-of-place execution.
func WithPlacement(p plan.Placement) Option {
	return func(cfg *config) {
		cfg.placement = p
	}
}

// WithInPlace is WithPlacement(plan.InPlace).
func WithInPlace() Option {
	return WithPlacement(plan.InPlace)
}

// WithBatch sets the number of back-to-back transforms per call.
func WithBatch(n int) Option {
	return func(cfg *config) {
		cfg.batch = n
	}
}

// WithNormalization sets the backward scale rule.
func WithNormalization(n plan.Normalization) Option {
	return func(cfg *config) {
		cfg.norm = n
	}
}

// WithBuffers binds from and to to the transform so that Transform(nil, nil)
// runs on them. A nil to, or one aliasing from, binds an in-place
// transform; the placement follows the buffers. Only the Directed backend
// holds buffers.
func WithBuffers[I, O scalar.Scalar](from []I, to []O) Option {
	return func(cfg *config) {
		cfg.from, cfg.to = from, to
		cfg.bound = from != nil
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
