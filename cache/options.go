package cache

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict()
	Size(entries int)
}

// EvictCallback is invoked for every entry removed to satisfy the
// capacity limit. Callbacks run inline inside Put; keep them lightweight.
type EvictCallback[K comparable, V any] func(k K, v V)

// options collects construction-time settings applied by New.
// The zero configuration is valid: NoopMetrics and no eviction callback.
type options[K comparable, V any] struct {
	metrics Metrics
	onEvict EvictCallback[K, V]
}

// Option configures optional cache behavior.
type Option[K comparable, V any] func(*options[K, V])

// WithMetrics routes Hit/Miss/Evict/Size signals to m.
// Passing nil keeps the default NoopMetrics.
func WithMetrics[K comparable, V any](m Metrics) Option[K, V] {
	return func(o *options[K, V]) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithEvictCallback registers cb to observe evicted entries in eviction order.
func WithEvictCallback[K comparable, V any](cb EvictCallback[K, V]) Option[K, V] {
	return func(o *options[K, V]) { o.onEvict = cb }
}

func defaultOptions[K comparable, V any]() options[K, V] {
	return options[K, V]{metrics: NoopMetrics{}}
}
