package scanner

import "time"

// Config holds the decoder timings.
type Config struct {
	// InterKeyGapMs is the largest gap between keys of the same read.
	InterKeyGapMs int `mapstructure:"inter_key_gap_ms" default:"100"`
	// FlushTimeoutMs is how long after the last key a read without Enter is flushed.
	FlushTimeoutMs int `mapstructure:"flush_timeout_ms" default:"200"`
	// MinLength is the shortest buffer a timed-out flush will emit.
	MinLength int `mapstructure:"min_length" default:"4"`
}

// DefaultConfig returns the stock scanner timings.
func DefaultConfig() Config {
	return Config{InterKeyGapMs: 100, FlushTimeoutMs: 200, MinLength: 4}
}

// InterKeyGap returns the gap as a duration, falling back to the default.
func (c Config) InterKeyGap() time.Duration {
	if c.InterKeyGapMs <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.InterKeyGapMs) * time.Millisecond
}

// FlushTimeout returns the flush timeout as a duration, falling back to the default.
func (c Config) FlushTimeout() time.Duration {
	if c.FlushTimeoutMs <= 0 {
		return 200 * time.Millisecond
	}
	return time.Duration(c.FlushTimeoutMs) * time.Millisecond
}
