package memo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/memokit/memocache/cache"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, Config{MaxSize: 2}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default", cfg: DefaultConfig(), wantErr: false},
		{name: "large", cfg: Config{MaxSize: 10_000}, wantErr: false},
		{name: "typed", cfg: Config{MaxSize: 1, TypedKeys: true}, wantErr: false},
		{name: "zero", cfg: Config{}, wantErr: true},
		{name: "negative", cfg: Config{MaxSize: -5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, cache.ErrInvalidCapacity)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_YAML(t *testing.T) {
	t.Parallel()

	var cfg Config
	raw := []byte("max_size: 8\ntyped_keys: true\n")
	require.NoError(t, yaml.Unmarshal(raw, &cfg))
	assert.Equal(t, Config{MaxSize: 8, TypedKeys: true}, cfg)

	var calls int
	m, err := WrapWithConfig(square(&calls), cfg)
	require.NoError(t, err)
	assert.Equal(t, 8, m.Stats().MaxSize)

	// Round-trip: marshal and parse back.
	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, cfg, back)
}

func TestWrapWithConfig(t *testing.T) {
	t.Parallel()

	var calls int

	_, err := WrapWithConfig(square(&calls), Config{MaxSize: 0})
	require.ErrorIs(t, err, cache.ErrInvalidCapacity)

	_, err = WrapWithConfig[int](nil, DefaultConfig())
	require.ErrorIs(t, err, ErrNilFunc)

	// Options apply on top of the Config.
	m, err := WrapWithConfig(square(&calls), DefaultConfig(), WithMaxSize[int](5))
	require.NoError(t, err)
	assert.Equal(t, 5, m.Stats().MaxSize)

	// Typed keys from config are honored.
	mt, err := WrapWithConfig(func(_ []any, _ map[string]any) (int, error) {
		calls++
		return calls, nil
	}, Config{MaxSize: 4, TypedKeys: true})
	require.NoError(t, err)
	calls = 0
	_, _ = mt.Call(1)
	_, err = mt.CallNamed([]any{1.0}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "typed keys must separate 1 and 1.0")
}
