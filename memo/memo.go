// Package memo caches the results of expensive function calls, keyed by
// canonicalized arguments and bounded by a fixed-capacity LRU cache.
//
// Wrap takes a function of the Func shape and returns a Memoized value
// whose Call/CallNamed short-circuit repeated calls: a key hit returns
// the remembered result without running the function, a miss runs it and
// remembers a successful result. Errors propagate to the caller
// unchanged and are never cached. Hit and miss counters are exposed as
// an Info snapshot through Stats.
package memo

import (
	"errors"
	"fmt"

	"github.com/memokit/memocache/cache"
	"github.com/memokit/memocache/internal/argkey"
)

// Func is the call shape a Memoized value wraps: positional arguments,
// named arguments, one result, one error. The function must be
// call-stable for caching to be sound: equal arguments produce an
// equally acceptable result.
type Func[V any] func(args []any, named map[string]any) (V, error)

// ErrNilFunc is returned by Wrap when fn is nil.
var ErrNilFunc = errors.New("memo: fn must not be nil")

// ErrUnhashableArgument reports a call whose arguments cannot form a
// cache key (functions, channels, cyclic structures). The wrapped
// function is never invoked on this path.
var ErrUnhashableArgument = argkey.ErrUnhashable

// Memoized is a memoizing wrapper around one function. At most MaxSize
// distinct calls are remembered at a time; the least recently used entry
// is displaced when a new result lands in a full cache.
//
// Like the cache it owns, a Memoized value expects a single caller at a
// time. Independent wrappers are fully isolated: each owns its cache and
// its counters.
type Memoized[V any] struct {
	fn    Func[V]
	cache *cache.Cache[string, V]
	typed bool

	maxSize int
	hits    int64
	misses  int64
}

// options collects construction-time settings applied by Wrap.
type options[V any] struct {
	cfg     Config
	metrics cache.Metrics
	onEvict cache.EvictCallback[string, V]
}

// Option configures optional wrapper behavior.
type Option[V any] func(*options[V])

// WithMaxSize bounds the number of remembered calls. The default is 2.
func WithMaxSize[V any](n int) Option[V] {
	return func(o *options[V]) { o.cfg.MaxSize = n }
}

// WithTypedKeys makes keys type-sensitive: arguments that compare equal
// across numeric kinds (the integer 1 and the float 1.0) stop sharing a
// cache entry.
func WithTypedKeys[V any]() Option[V] {
	return func(o *options[V]) { o.cfg.TypedKeys = true }
}

// WithMetrics routes the inner cache's Hit/Miss/Evict/Size signals to m.
func WithMetrics[V any](m cache.Metrics) Option[V] {
	return func(o *options[V]) { o.metrics = m }
}

// WithEvictCallback observes cached results displaced by newer calls.
func WithEvictCallback[V any](cb func(key string, v V)) Option[V] {
	return func(o *options[V]) { o.onEvict = cb }
}

// Wrap returns a Memoized wrapper around fn.
// The zero configuration remembers the 2 most recent distinct calls with
// type-insensitive keys; see WithMaxSize and WithTypedKeys. A
// non-positive max size fails with the cache's ErrInvalidCapacity.
func Wrap[V any](fn Func[V], opts ...Option[V]) (*Memoized[V], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	o := options[V]{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	return newMemoized(fn, o)
}

func newMemoized[V any](fn Func[V], o options[V]) (*Memoized[V], error) {
	copts := make([]cache.Option[string, V], 0, 2)
	if o.metrics != nil {
		copts = append(copts, cache.WithMetrics[string, V](o.metrics))
	}
	if o.onEvict != nil {
		copts = append(copts, cache.WithEvictCallback(o.onEvict))
	}
	c, err := cache.New(o.cfg.MaxSize, copts...)
	if err != nil {
		return nil, fmt.Errorf("memo: %w", err)
	}
	return &Memoized[V]{
		fn:      fn,
		cache:   c,
		typed:   o.cfg.TypedKeys,
		maxSize: o.cfg.MaxSize,
	}, nil
}

// Call invokes the wrapper with positional arguments only.
func (m *Memoized[V]) Call(args ...any) (V, error) {
	return m.CallNamed(args, nil)
}

// CallNamed invokes the wrapper with positional and named arguments.
//
// On a key hit the remembered value is returned and fn does not run, so
// side effects of fn are skipped. On a miss fn runs with the original
// arguments: a successful result is cached, an error propagates
// unchanged and nothing is cached, leaving the next identical call to
// invoke fn again. Unkeyable arguments fail with ErrUnhashableArgument
// before fn runs and before any counter moves.
func (m *Memoized[V]) CallNamed(args []any, named map[string]any) (V, error) {
	key, err := argkey.Normalize(args, named, m.typed)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("memo: %w", err)
	}

	if v, ok := m.cache.Get(key); ok {
		m.hits++
		return v, nil
	}
	m.misses++

	v, err := m.fn(args, named)
	if err != nil {
		var zero V
		return zero, err
	}
	m.cache.Put(key, v)
	return v, nil
}

// Stats returns a point-in-time snapshot of the wrapper's accounting.
func (m *Memoized[V]) Stats() Info {
	return Info{
		Hits:    m.hits,
		Misses:  m.misses,
		MaxSize: m.maxSize,
		Size:    m.cache.Len(),
	}
}
