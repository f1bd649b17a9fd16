package eviction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicyType(t *testing.T) {
	tests := []struct {
		in   string
		want PolicyType
	}{
		{"fifo", FIFO},
		{"FIFO", FIFO},
		{" Lifo ", LIFO},
		{"none", None},
		{"basic", None},
		{"", None},
	}
	for _, tt := range tests {
		got, err := ParsePolicyType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParsePolicyType("lru")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
}

func TestPolicyTypeBounded(t *testing.T) {
	assert.True(t, FIFO.Bounded())
	assert.True(t, LIFO.Bounded())
	assert.False(t, None.Bounded())
	assert.False(t, PolicyType("lru").Valid())
}

func TestNewEvictionPolicyPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { NewEvictionPolicy[string]("lfu") })
}

func TestOrderList(t *testing.T) {
	l := newOrderList[string]()
	l.pushBack("a")
	l.pushBack("b")
	l.pushBack("c")
	l.pushBack("a") // already tracked, stays first
	assert.Equal(t, []string{"a", "b", "c"}, l.keys())

	l.moveToBack("a")
	assert.Equal(t, []string{"b", "c", "a"}, l.keys())

	l.moveToBack("a") // already at the tail
	assert.Equal(t, []string{"b", "c", "a"}, l.keys())

	l.remove("c")
	assert.Equal(t, []string{"b", "a"}, l.keys())
	assert.Equal(t, 2, l.len())

	k, ok := l.firstFromFront("b")
	require.True(t, ok)
	assert.Equal(t, "a", k)

	k, ok = l.firstFromBack("a")
	require.True(t, ok)
	assert.Equal(t, "b", k)

	l.remove("a")
	l.remove("b")
	l.remove("missing")
	assert.Empty(t, l.keys())
	_, ok = l.firstFromBack("x")
	assert.False(t, ok)
}

func TestFIFOEvictsOldestFirstInsert(t *testing.T) {
	p := NewEvictionPolicy[string](FIFO)
	p.OnPut("A")
	p.OnPut("B")
	p.OnPut("A") // overwrite keeps A first
	p.OnPut("C")

	victim, ok := p.Evict("C")
	require.True(t, ok)
	assert.Equal(t, "A", victim)
	assert.Equal(t, []string{"B", "C"}, p.Keys())
}

func TestLIFOEvictsNewestBeforeCurrentWrite(t *testing.T) {
	p := NewEvictionPolicy[string](LIFO)
	p.OnPut("A")
	p.OnPut("B")
	p.OnPut("C")

	victim, ok := p.Evict("C")
	require.True(t, ok)
	assert.Equal(t, "B", victim)
	assert.Equal(t, []string{"A", "C"}, p.Keys())
}

func TestLIFOOverwritePromotes(t *testing.T) {
	p := NewEvictionPolicy[string](LIFO)
	p.OnPut("A")
	p.OnPut("B")
	p.OnPut("A")
	assert.Equal(t, []string{"B", "A"}, p.Keys())

	p.OnPut("C")
	victim, ok := p.Evict("C")
	require.True(t, ok)
	assert.Equal(t, "A", victim)
	assert.Equal(t, 2, p.Len())
}

func TestEvictNeverReturnsJustWrittenKey(t *testing.T) {
	for _, pt := range []PolicyType{FIFO, LIFO} {
		p := NewEvictionPolicy[int](pt)
		p.OnPut(1)
		_, ok := p.Evict(1)
		assert.False(t, ok, pt)
		assert.Equal(t, 1, p.Len(), pt)
	}
}

func TestNoneNeverEvicts(t *testing.T) {
	p := NewEvictionPolicy[int](None)
	for i := 0; i < 100; i++ {
		p.OnPut(i)
	}
	_, ok := p.Evict(99)
	assert.False(t, ok)
	assert.Equal(t, 100, p.Len())
	assert.Equal(t, 0, p.Keys()[0])
}
