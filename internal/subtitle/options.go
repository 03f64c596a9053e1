package subtitle

// SkipFunc receives a diagnostic each time lenient parsing discards a
// malformed block or line.
type SkipFunc func(format Format, reason string)

type parseConfig struct {
	onSkip SkipFunc
}

// ParseOption adjusts parser behavior. Parsing is lenient by default:
// malformed blocks are skipped without any diagnostic.
type ParseOption func(*parseConfig)

// WithSkipFunc surfaces skipped-block diagnostics from the otherwise
// silent lenient parsers.
func WithSkipFunc(fn SkipFunc) ParseOption {
	return func(cfg *parseConfig) {
		cfg.onSkip = fn
	}
}

func newParseConfig(opts []ParseOption) parseConfig {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c parseConfig) skip(format Format, reason string) {
	if c.onSkip != nil {
		c.onSkip(format, reason)
	}
}
