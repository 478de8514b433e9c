package memo

import (
	"fmt"

	"github.com/memokit/memocache/cache"
)

// Config carries the serializable wrapper settings. The zero value does
// not validate; start from DefaultConfig.
type Config struct {
	// MaxSize bounds the number of remembered calls.
	MaxSize int `json:"max_size" yaml:"max_size"`

	// TypedKeys makes argument keys type-sensitive.
	TypedKeys bool `json:"typed_keys" yaml:"typed_keys"`
}

// DefaultConfig returns the canonical defaults: remember the 2 most
// recent distinct calls, key arguments type-insensitively.
func DefaultConfig() Config {
	return Config{MaxSize: 2}
}

// Validate reports whether the configuration can construct a wrapper.
func (c Config) Validate() error {
	if c.MaxSize <= 0 {
		return fmt.Errorf("memo: max_size %d: %w", c.MaxSize, cache.ErrInvalidCapacity)
	}
	return nil
}

// WrapWithConfig is Wrap with the serializable settings supplied as a
// Config, for example parsed from YAML or JSON. Options still apply on
// top for the non-serializable knobs (metrics, callbacks) and may
// override the Config fields.
func WrapWithConfig[V any](fn Func[V], cfg Config, opts ...Option[V]) (*Memoized[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	o := options[V]{cfg: cfg}
	for _, opt := range opts {
		opt(&o)
	}
	return newMemoized(fn, o)
}
