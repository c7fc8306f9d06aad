package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-dftmatrix/dsp/core"
)

// Generator creates deterministic frame-length signals from a shared
// configuration. Every generated signal has exactly Config().Size samples.
type Generator struct {
	cfg  core.FrameConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.FrameOption) *Generator {
	return &Generator{
		cfg:  core.ApplyFrameOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(frameOpts []core.FrameOption, opts ...Option) *Generator {
	g := NewGenerator(frameOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator frame configuration.
func (g *Generator) Config() core.FrameConfig {
	return g.cfg
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Cosine generates x[k] = cos(2*pi/N * cycles * k + phase). With an integer
// number of cycles the signal is periodic in the frame and its spectrum has
// exactly two non-zero bins, cycles and N-cycles.
func (g *Generator) Cosine(cycles, phase float64) ([]float64, error) {
	n := g.cfg.Size
	if n <= 0 {
		return nil, fmt.Errorf("cosine frame size must be > 0: %d", n)
	}
	if math.IsNaN(cycles) || math.IsInf(cycles, 0) {
		return nil, fmt.Errorf("cosine cycles must be finite: %v", cycles)
	}

	out := make([]float64, n)
	step := 2 * math.Pi / float64(n) * cycles
	for k := range out {
		out[k] = math.Cos(step*float64(k) + phase)
	}
	return out, nil
}

// ComplexTone generates x[k] = exp(j*2*pi/N * bin * k), whose spectrum is a
// single non-zero bin.
func (g *Generator) ComplexTone(bin int) ([]complex128, error) {
	n := g.cfg.Size
	if n <= 0 {
		return nil, fmt.Errorf("tone frame size must be > 0: %d", n)
	}

	out := make([]complex128, n)
	step := 2 * math.Pi / float64(n)
	for k := range out {
		e := (bin * k) % n
		if e < 0 {
			e += n
		}
		s, c := math.Sincos(step * float64(e))
		out[k] = complex(c, s)
	}
	return out, nil
}

// Impulse generates a unit impulse at pos.
func (g *Generator) Impulse(pos int) ([]complex128, error) {
	n := g.cfg.Size
	if pos < 0 || pos >= n {
		return nil, fmt.Errorf("impulse position must be in [0,%d): %d", n, pos)
	}
	out := make([]complex128, n)
	out[pos] = 1
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64) ([]float64, error) {
	n := g.cfg.Size
	if n <= 0 {
		return nil, fmt.Errorf("noise frame size must be > 0: %d", n)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// ComplexNoise generates deterministic complex white noise whose real and
// imaginary parts are independent and uniform in [-amplitude, amplitude].
func (g *Generator) ComplexNoise(amplitude float64) ([]complex128, error) {
	n := g.cfg.Size
	if n <= 0 {
		return nil, fmt.Errorf("noise frame size must be > 0: %d", n)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]complex128, n)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out, nil
}
