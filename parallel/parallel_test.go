// SPDX-License-Identifier: MIT

package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lvpack/parallel"
	"github.com/stretchr/testify/require"
)

func TestForVisitsEveryIndexOnce(t *testing.T) {
	const n = 10000
	hits := make([]int32, n)
	parallel.For(0, n, func(i int) { atomic.AddInt32(&hits[i], 1) },
		parallel.WithWorkers(4), parallel.WithMinChunk(100))
	for i, h := range hits {
		require.Equalf(t, int32(1), h, "index %d", i)
	}
}

func TestForInlineAndEmpty(t *testing.T) {
	var sum int
	// below the chunk threshold: runs inline, so plain writes are safe
	parallel.For(1, 5, func(i int) { sum += i })
	require.Equal(t, 10, sum)

	called := false
	parallel.For(5, 5, func(int) { called = true })
	parallel.For(7, 3, func(int) { called = true })
	require.False(t, called)
}

func TestChunksPartition(t *testing.T) {
	chunks := parallel.Chunks(3, 20, parallel.WithWorkers(4), parallel.WithMinChunk(2))
	require.Len(t, chunks, 4)
	require.Equal(t, 3, chunks[0][0])
	require.Equal(t, 20, chunks[len(chunks)-1][1])
	for k := 1; k < len(chunks); k++ {
		require.Equal(t, chunks[k-1][1], chunks[k][0]) // contiguous and disjoint
	}
	require.Equal(t, [2]int{3, 8}, chunks[0]) // 17 = 5+4+4+4
	require.Nil(t, parallel.Chunks(2, 2))
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { parallel.WithWorkers(0) })
	require.Panics(t, func() { parallel.WithMinChunk(-1) })
}
