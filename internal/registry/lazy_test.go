package registry

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func countingFetcher(calls *atomic.Int32, body string) Fetcher {
	return FetcherFunc(func(context.Context) ([]byte, error) {
		calls.Add(1)
		return []byte(body), nil
	})
}

func TestLazy_BuildsOnce(t *testing.T) {
	var calls atomic.Int32

	l := NewLazy(countingFetcher(&calls, glSample))

	first, err := l.Symbol(5121)
	require.NoError(t, err)
	assert.Equal(t, "UNSIGNED_BYTE", first)

	for range 10 {
		name, err := l.Symbol(5121)
		require.NoError(t, err)
		assert.Equal(t, first, name)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestLazy_ConcurrentCallersShareBuild(t *testing.T) {
	var calls atomic.Int32

	l := NewLazy(countingFetcher(&calls, glSample))

	var wg sync.WaitGroup
	results := make([]string, 32)

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			name, err := l.Symbol(5120)
			if err == nil {
				results[i] = name
			}
		}()
	}

	wg.Wait()

	for _, name := range results {
		assert.Equal(t, "BYTE", name)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestLazy_UnknownSymbol(t *testing.T) {
	var calls atomic.Int32

	l := NewLazy(countingFetcher(&calls, glSample))

	_, err := l.Symbol(99999)
	require.ErrorIs(t, err, ErrUnknownSymbol)

	_, ok, err := l.Lookup(99999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLazy_FetchFailureIsUnavailable(t *testing.T) {
	calls := 0
	l := NewLazy(FetcherFunc(func(context.Context) ([]byte, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("network down")
		}

		return []byte(glSample), nil
	}))

	_, err := l.Symbol(5120)
	require.ErrorIs(t, err, ErrUnavailable)

	// the failure is not cached
	name, err := l.Symbol(5120)
	require.NoError(t, err)
	assert.Equal(t, "BYTE", name)
	assert.Equal(t, 2, calls)
}

func TestLazy_ParseFailureIsUnavailable(t *testing.T) {
	var calls atomic.Int32

	l := NewLazy(countingFetcher(&calls, "<registry><enum"))

	_, err := l.Load(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLazy_Prefix(t *testing.T) {
	var calls atomic.Int32

	l := NewLazy(countingFetcher(&calls, glSample), WithPrefix(""))

	name, err := l.Symbol(5120)
	require.NoError(t, err)
	assert.Equal(t, "GL_BYTE", name)
}
