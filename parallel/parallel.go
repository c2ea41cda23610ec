// SPDX-License-Identifier: MIT

// Package parallel runs index-range loops on a bounded set of goroutines.
//
// For partitions [from, to) into contiguous, disjoint chunks and joins
// synchronously: it returns only after every chunk finished. There is no
// cancellation and no timeout. Small ranges run inline on the caller's
// goroutine, so callers never pay scheduling overhead for tiny inputs.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultMinChunk is the smallest range length worth splitting.
const DefaultMinChunk = 4096

const (
	panicWorkersInvalid  = "parallel: WithWorkers: n must be > 0"
	panicMinChunkInvalid = "parallel: WithMinChunk: n must be > 0"
)

// Option configures a For call.
type Option func(*options)

type options struct {
	workers  int
	minChunk int
}

// WithWorkers caps the number of concurrently running chunks.
// Panics when n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithMinChunk sets the minimum chunk length; ranges not longer than it run inline.
// Panics when n <= 0.
func WithMinChunk(n int) Option {
	if n <= 0 {
		panic(panicMinChunkInvalid)
	}

	return func(o *options) { o.minChunk = n }
}

func gather(opts ...Option) options {
	o := options{workers: runtime.GOMAXPROCS(0), minChunk: DefaultMinChunk}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Chunks returns the [lo, hi) bounds For would use for the given range.
// Empty or inverted ranges yield nil.
func Chunks(from, to int, opts ...Option) [][2]int {
	if to <= from {
		return nil
	}
	o := gather(opts...)
	n := to - from
	parts := n / o.minChunk
	if parts < 1 {
		parts = 1
	}
	if parts > o.workers {
		parts = o.workers
	}

	out := make([][2]int, 0, parts)
	size, rem := n/parts, n%parts
	lo := from
	var k, hi int
	for k = 0; k < parts; k++ {
		hi = lo + size
		if k < rem {
			hi++ // spread the remainder over the first chunks
		}
		out = append(out, [2]int{lo, hi})
		lo = hi
	}

	return out
}

// For calls body(i) for every i in [from, to). Distinct indices may run
// concurrently; body must only touch state owned by its index.
// Complexity: O(to-from) calls to body.
func For(from, to int, body func(i int), opts ...Option) {
	chunks := Chunks(from, to, opts...)
	if len(chunks) == 0 {
		return
	}
	if len(chunks) == 1 {
		for i := from; i < to; i++ {
			body(i)
		}

		return
	}

	var g errgroup.Group
	g.SetLimit(len(chunks))
	for _, c := range chunks {
		lo, hi := c[0], c[1]
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				body(i)
			}

			return nil
		})
	}
	_ = g.Wait() // chunks never fail
}
