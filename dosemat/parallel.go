// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dosemat assembles the dose-fluence matrix D[i,j] (dose
// contribution of beamlet j at point i) in dense, sparse-CSC and
// simulated-GPU forms from the same culling predicate and kernel contract.
package dosemat

import (
	"runtime"
	"sync"
)

// parallelRange partitions [0,n) into contiguous chunks, one per worker,
// and runs fn over each chunk concurrently, joining at the end. Workers
// write only to their own disjoint slice of any shared output array, so
// no synchronization primitive is required inside the parallel region;
// the join at the end is the only blocking point.
func parallelRange(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
