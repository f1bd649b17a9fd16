package engine

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/krisalay/bounded-cache/types"
	"github.com/krisalay/bounded-cache/types/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewCacheEngineDefaults(t *testing.T) {
	e := NewCacheEngine[string, int](nil, nil, nil, nil)
	assert.Equal(t, types.NoopMetrics{}, e.Metrics)
	assert.Nil(t, e.OnDiscard)

	// must not panic without a notifier
	e.OnEvict("k")
	e.OnWrite("k", true)
	e.OnReject("k")
}

func TestOnEvictRecordsMetricAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().Eviction().Times(1)

	var got []string
	e := NewCacheEngine[string, int](nil, func(k string) { got = append(got, k) }, metrics, nil)

	e.OnEvict("A")
	assert.Equal(t, []string{"A"}, got)
}

func TestOnReadOnWriteOnReject(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)
	gomock.InOrder(
		metrics.EXPECT().Hit(),
		metrics.EXPECT().Miss(),
		metrics.EXPECT().Write(),
		metrics.EXPECT().Reject(),
	)

	e := NewCacheEngine[string, int](nil, nil, metrics, nil)
	e.OnRead(true)
	e.OnRead(false)
	e.OnWrite("a", true)
	e.OnReject("b")
}

func TestOnEvictLogsDiscard(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	e := NewCacheEngine[string, int](nil, nil, nil, &logger)
	e.OnEvict("B")

	assert.Contains(t, buf.String(), `"key":"B"`)
	assert.Contains(t, buf.String(), `"message":"discard"`)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	e := NewCacheEngine[string, int](nil, nil, nil, nil)
	_, err := e.Load(ctx, "x")
	assert.True(t, errors.Is(err, ErrNoLoader))

	e.Loader = types.LoaderFunc[string, int](func(_ context.Context, key string) (int, error) {
		return len(key), nil
	})
	v, err := e.Load(ctx, "four")
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestPrintDiscard(t *testing.T) {
	var buf bytes.Buffer
	fn := PrintDiscard[string](&buf)
	fn("A")
	fn("B")
	assert.Equal(t, "DISCARD: A\nDISCARD: B\n", buf.String())
}

func TestChainDiscard(t *testing.T) {
	var a, b []int
	fn := ChainDiscard(
		func(k int) { a = append(a, k) },
		nil,
		func(k int) { b = append(b, k) },
	)
	fn(7)
	assert.Equal(t, []int{7}, a)
	assert.Equal(t, []int{7}, b)
}
