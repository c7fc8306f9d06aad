package core

// FrameConfig defines the transform frame shared by generators and analyzers.
//
// SampleRate is optional. When it is zero, bin frequencies are reported in
// cycles per frame.
type FrameConfig struct {
	Size       int
	SampleRate float64
}

// FrameOption mutates a FrameConfig.
type FrameOption func(*FrameConfig)

// DefaultFrameConfig returns the 8-point frame used throughout the examples.
func DefaultFrameConfig() FrameConfig {
	return FrameConfig{
		Size: 8,
	}
}

// WithSize sets the frame (transform) size.
func WithSize(size int) FrameOption {
	return func(cfg *FrameConfig) {
		if size > 0 {
			cfg.Size = size
		}
	}
}

// WithSampleRate sets the sample rate used to label bin frequencies.
func WithSampleRate(sampleRate float64) FrameOption {
	return func(cfg *FrameConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyFrameOptions applies zero or more options to the default config.
func ApplyFrameOptions(opts ...FrameOption) FrameConfig {
	cfg := DefaultFrameConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// BinFrequency returns the frequency of DFT bin mu. Without a sample rate the
// result is in cycles per frame, so it equals mu.
func (cfg FrameConfig) BinFrequency(mu int) float64 {
	if cfg.SampleRate <= 0 || cfg.Size <= 0 {
		return float64(mu)
	}
	return float64(mu) * cfg.SampleRate / float64(cfg.Size)
}
